package model

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Path represents a file system path.
type Path string

// ErrOutOfBounds is returned when a fragment or a paste destination does not
// lie fully inside the raster it refers to.
var ErrOutOfBounds = errors.New("rectangle out of bounds")

// flattenBackground is what translucent source pixels are composited over
// when an image is converted to the opaque RGB grid.
var flattenBackground = color.NRGBA{A: 0xff}

// SourceImage is an immutable decoded raster loaded from disk.
// Pixels are stored as an opaque RGB grid anchored at (0, 0).
type SourceImage struct {
	Path   Path
	pixels *image.NRGBA
}

// NewSourceImage converts a decoded image into a SourceImage. Any alpha
// channel is flattened over black so every pixel is a plain RGB value.
func NewSourceImage(path Path, img image.Image) SourceImage {
	size := img.Bounds().Size()
	flat := imaging.New(size.X, size.Y, flattenBackground)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	return SourceImage{Path: path, pixels: flat}
}

// Width returns the image width in pixels.
func (s SourceImage) Width() int {
	if s.pixels == nil {
		return 0
	}

	return s.pixels.Rect.Dx()
}

// Height returns the image height in pixels.
func (s SourceImage) Height() int {
	if s.pixels == nil {
		return 0
	}

	return s.pixels.Rect.Dy()
}

// At returns the pixel at x, y.
func (s SourceImage) At(x, y int) color.NRGBA {
	return s.pixels.NRGBAAt(x, y)
}

// Fragment returns a size×size view whose top-left corner is at x, y.
// The view must lie fully inside the image.
func (s SourceImage) Fragment(x, y, size int) (Fragment, error) {
	rect := image.Rect(x, y, x+size, y+size)
	if s.pixels == nil || size <= 0 || !rect.In(s.pixels.Rect) {
		return Fragment{}, fmt.Errorf("%w: fragment %v in image %dx%d", ErrOutOfBounds, rect, s.Width(), s.Height())
	}

	return Fragment{source: s.pixels, rect: rect}, nil
}

// Fragment is a read-only square view into a SourceImage. It is only valid
// for the paste it was cut for.
type Fragment struct {
	source *image.NRGBA
	rect   image.Rectangle
}

// Bounds returns the fragment rectangle in source image coordinates.
func (f Fragment) Bounds() image.Rectangle {
	return f.rect
}

// Size returns the edge length of the fragment.
func (f Fragment) Size() int {
	return f.rect.Dx()
}

// ImagePool is the ordered, read-only collection of loaded source images.
type ImagePool struct {
	images []SourceImage
}

// NewImagePool builds a pool preserving the order of images.
func NewImagePool(images ...SourceImage) ImagePool {
	return ImagePool{images: append([]SourceImage(nil), images...)}
}

// Len returns the number of images in the pool.
func (p ImagePool) Len() int {
	return len(p.images)
}

// At returns the i-th image.
func (p ImagePool) At(i int) SourceImage {
	return p.images[i]
}

// Images returns a copy of the pooled images in pool order.
func (p ImagePool) Images() []SourceImage {
	return append([]SourceImage(nil), p.images...)
}
