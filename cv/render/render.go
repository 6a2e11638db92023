package render

import (
	"path/filepath"
	"strings"

	"cvbuilder/cv/model"
)

// Options configure how the renderer resolves photos and fonts.
type Options struct {
	// BaseDir anchors relative photo paths from documents. Defaults to the
	// working directory.
	BaseDir string
	// DefaultPhoto is the placeholder portrait used when the document photo
	// is missing or unreadable. Relative paths resolve against BaseDir.
	DefaultPhoto string
	// FontFile is a TTF with unicode glyph coverage. When empty a common
	// system location is probed; when unreadable core fonts are used.
	FontFile string
}

// Renderer turns documents into PDF bytes.
type Renderer struct {
	opts Options
}

// New builds a Renderer with defaults filled in.
func New(opts Options) *Renderer {
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}
	if opts.DefaultPhoto == "" {
		opts.DefaultPhoto = filepath.Join("assets", "default.png")
	}
	if opts.FontFile == "" {
		opts.FontFile = defaultFontFile
	}
	return &Renderer{opts: opts}
}

// Render produces the PDF for doc. It is deterministic for a given document
// and photo: the block sequence and geometry never vary between calls. The
// only I/O is reading the photo (or its default placeholder) and probing the
// unicode font.
func (r *Renderer) Render(doc model.Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	blocks := Compose(doc, r.resolvePhoto(doc.Header.Photo))
	return r.paint(doc, blocks)
}

// resolvePhoto walks the fallback chain: document photo, then the default
// placeholder, then no photo at all. A path that exists but fails to decode
// counts as unreadable and falls through.
func (r *Renderer) resolvePhoto(path string) *Photo {
	for _, candidate := range r.photoCandidates(path) {
		photo, err := LoadPhoto(candidate)
		if err == nil {
			return photo
		}
	}
	return nil
}

func (r *Renderer) photoCandidates(path string) []string {
	var out []string
	if p := strings.TrimSpace(path); p != "" {
		out = append(out, r.resolvePath(p))
	}
	if r.opts.DefaultPhoto != "" {
		out = append(out, r.resolvePath(r.opts.DefaultPhoto))
	}
	return out
}

func (r *Renderer) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.opts.BaseDir, p)
}
