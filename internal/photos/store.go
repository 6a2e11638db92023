package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotImage indicates an upload whose content is not a supported
// image format.
var ErrNotImage = errors.New("file is not an image")

// extensions maps sniffed content types to the extension stored on
// disk. The renderer decodes all four formats.
var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store keeps uploaded photos as files under Dir. Names are random, so
// uploads never collide and never overwrite each other.
type Store struct {
	Dir string
}

// Save sniffs the content, stores it under a random name and returns
// that name. Content that does not sniff as a supported image is
// rejected with ErrNotImage.
func (s *Store) Save(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("read sniff: %w", readErr)
	}

	ext, ok := extensions[http.DetectContentType(sniff[:n])]
	if !ok {
		return "", ErrNotImage
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	name := uuid.NewString() + ext
	f, err := os.OpenFile(filepath.Join(s.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if n > 0 {
		if _, err := f.Write(sniff[:n]); err != nil {
			return "", fmt.Errorf("write sniff: %w", err)
		}
	}
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}
	return name, nil
}

// Open opens a stored photo for reading.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := filepath.Clean(name)
	if clean != name || clean == "." || strings.ContainsAny(clean, `/\`) || strings.HasPrefix(clean, "..") {
		return nil, fmt.Errorf("invalid photo name")
	}

	f, err := os.Open(filepath.Join(s.Dir, clean))
	if err != nil {
		return nil, err
	}
	return f, nil
}
