package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// photoSidePx is the edge length of the processed portrait.
const photoSidePx = 400

// Photo is a processed header portrait, ready to embed: square, resampled
// and masked to a circle with a transparent background.
type Photo struct {
	PNG []byte
}

// LoadPhoto reads an image file (PNG, JPEG, GIF or WebP) and prepares it for
// the header: center-crop to a square, resample to 400px and apply a
// circular alpha mask.
func LoadPhoto(path string) (*Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode photo %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, circularize(src, photoSidePx)); err != nil {
		return nil, fmt.Errorf("encode photo: %w", err)
	}
	return &Photo{PNG: buf.Bytes()}, nil
}

func circularize(src image.Image, side int) *image.RGBA {
	b := src.Bounds()
	crop := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-crop)/2
	y0 := b.Min.Y + (b.Dy()-crop)/2
	square := image.Rect(x0, y0, x0+crop, y0+crop)

	scaled := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, square, xdraw.Src, nil)

	out := image.NewRGBA(scaled.Bounds())
	mask := &circleMask{radius: side / 2}
	draw.DrawMask(out, out.Bounds(), scaled, image.Point{}, mask, image.Point{}, draw.Src)
	return out
}

// circleMask is an alpha mask covering a centered disc.
type circleMask struct {
	radius int
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, 2*m.radius, 2*m.radius)
}

func (m *circleMask) At(x, y int) color.Color {
	dx := float64(x-m.radius) + 0.5
	dy := float64(y-m.radius) + 0.5
	if dx*dx+dy*dy <= float64(m.radius)*float64(m.radius) {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}
