package render

import (
	"os"

	"github.com/go-pdf/fpdf"
)

// Core PDF fonts cover the CV body. A DejaVu TTF, when readable, is
// registered for the contact line and the marker glyphs the core fonts
// cannot encode.
const (
	bodyFont    = "Helvetica"
	unicodeFont = "DejaVu"

	defaultFontFile = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
)

// registerUnicodeFont loads the TTF at path into the document. Best effort:
// it reports false when the file is missing or rejected, and the painter
// falls back to core fonts with transliterated markers.
func registerUnicodeFont(pdf *fpdf.Fpdf, path string) bool {
	if path == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	pdf.AddUTF8FontFromBytes(unicodeFont, "", data)
	if pdf.Err() {
		pdf.ClearError()
		return false
	}
	return true
}
