package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "cv.pdf", want: "cv.pdf"},
		{in: " padded.pdf ", want: "padded.pdf"},
		{in: "dir/cv.pdf", want: "dir_cv.pdf"},
		{in: `dir\cv.pdf`, want: "dir_cv.pdf"},
		{in: `quoted".pdf`, want: "quoted.pdf"},
		{in: "tab\tname.pdf", want: "tabname.pdf"},
		{in: "line\r\nbreak.pdf", want: "linebreak.pdf"},
		{in: "../cv.pdf", wantErr: true},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "\"\"", wantErr: true},
	}

	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("SanitizeFileName(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("SanitizeFileName(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
