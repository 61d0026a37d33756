package model

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Canvas is the mutable output raster. Pixels are always opaque.
type Canvas struct {
	pixels *image.NRGBA
}

// NewCanvas allocates a width×height canvas filled with background.
// The background alpha is ignored.
func NewCanvas(width, height int, background color.Color) *Canvas {
	fill := color.NRGBAModel.Convert(background).(color.NRGBA)
	fill.A = 0xff

	return &Canvas{pixels: imaging.New(width, height, fill)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.pixels.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.pixels.Rect.Dy()
}

// At returns the pixel at x, y.
func (c *Canvas) At(x, y int) color.NRGBA {
	return c.pixels.NRGBAAt(x, y)
}

// Paste copies fragment onto the canvas with its top-left corner at dst,
// overwriting whatever was there. The destination must lie fully inside
// the canvas.
func (c *Canvas) Paste(fragment Fragment, dst image.Point) error {
	target := image.Rectangle{Min: dst, Max: dst.Add(fragment.rect.Size())}
	if fragment.source == nil || target.Empty() || !target.In(c.pixels.Rect) {
		return fmt.Errorf("%w: destination %v on canvas %dx%d", ErrOutOfBounds, target, c.Width(), c.Height())
	}

	draw.Draw(c.pixels, target, fragment.source, fragment.rect.Min, draw.Src)

	return nil
}

// Image exposes the canvas as a read-only image for encoding.
func (c *Canvas) Image() image.Image {
	return c.pixels
}
