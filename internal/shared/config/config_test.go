package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "CORS_ALLOW_ORIGINS", "DATA_FILE",
		"DATABASE_URL", "PHOTOS_DIR", "DEFAULT_PHOTO", "FONT_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("default port: got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("default env: got %q", cfg.Env)
	}
	if cfg.DataFile != "cv_data.yaml" {
		t.Fatalf("default data file: got %q", cfg.DataFile)
	}
	if cfg.PhotosDir != "photos" {
		t.Fatalf("default photos dir: got %q", cfg.PhotosDir)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("default database url: got %q", cfg.DatabaseURL)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:5000" {
		t.Fatalf("default cors origins: got %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "Production")
	t.Setenv("DATA_FILE", "/srv/cv/cv_data.yaml")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example ,")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port: got %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("env: got %q", cfg.Env)
	}
	if cfg.DataFile != "/srv/cv/cv_data.yaml" {
		t.Fatalf("data file: got %q", cfg.DataFile)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.CORSAllowOrigin) != len(want) {
		t.Fatalf("cors origins: got %v", cfg.CORSAllowOrigin)
	}
	for i, origin := range want {
		if cfg.CORSAllowOrigin[i] != origin {
			t.Fatalf("cors origin %d: got %q, want %q", i, cfg.CORSAllowOrigin[i], origin)
		}
	}
}

func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line    string
		key     string
		val     string
		skipped bool
	}{
		{line: "PORT=8080", key: "PORT", val: "8080"},
		{line: "  PORT = 8080  ", key: "PORT", val: "8080"},
		{line: `DATA_FILE="my cv.yaml"`, key: "DATA_FILE", val: "my cv.yaml"},
		{line: "FONT_FILE='/tmp/font.ttf'", key: "FONT_FILE", val: "/tmp/font.ttf"},
		{line: "export ENV=prod", key: "ENV", val: "prod"},
		{line: "EMPTY=", key: "EMPTY", val: ""},
		{line: "", skipped: true},
		{line: "# comment", skipped: true},
		{line: "no equals sign", skipped: true},
		{line: "=value", skipped: true},
	}

	for _, tc := range cases {
		key, val, ok := parseEnvLine(tc.line)
		if tc.skipped {
			if ok {
				t.Fatalf("parseEnvLine(%q): expected skip, got %q=%q", tc.line, key, val)
			}
			continue
		}
		if !ok {
			t.Fatalf("parseEnvLine(%q): unexpected skip", tc.line)
		}
		if key != tc.key || val != tc.val {
			t.Fatalf("parseEnvLine(%q) = %q=%q, want %q=%q", tc.line, key, val, tc.key, tc.val)
		}
	}
}

func TestLoadEnvFilesSetsProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# local overrides\nCVBUILDER_TEST_KEY=from_file\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("CVBUILDER_TEST_KEY", "")

	loadEnvFiles(path, filepath.Join(t.TempDir(), "missing.env"))

	if got := os.Getenv("CVBUILDER_TEST_KEY"); got != "from_file" {
		t.Fatalf("expected env from file, got %q", got)
	}
}
