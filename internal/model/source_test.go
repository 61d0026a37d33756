package model

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	return img
}

func TestNewSourceImage(t *testing.T) {
	t.Run("keeps dimensions and opaque pixels", func(t *testing.T) {
		red := color.NRGBA{R: 0xff, A: 0xff}
		src := NewSourceImage("red.png", solidImage(40, 20, red))

		assert.Equal(t, 40, src.Width())
		assert.Equal(t, 20, src.Height())
		assert.Equal(t, red, src.At(0, 0))
		assert.Equal(t, red, src.At(39, 19))
		assert.Equal(t, Path("red.png"), src.Path)
	})

	t.Run("flattens transparent pixels over black", func(t *testing.T) {
		src := NewSourceImage("clear.png", solidImage(4, 4, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0}))

		assert.Equal(t, color.NRGBA{A: 0xff}, src.At(2, 2))
	})

	t.Run("rebases images whose bounds do not start at the origin", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(10, 10, 14, 16))
		img.Set(10, 10, color.NRGBA{G: 0xff, A: 0xff})

		src := NewSourceImage("offset.png", img)

		assert.Equal(t, 4, src.Width())
		assert.Equal(t, 6, src.Height())
		assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, src.At(0, 0))
	})
}

func TestSourceImage_Fragment(t *testing.T) {
	src := NewSourceImage("a.png", solidImage(64, 48, color.White))

	tests := []struct {
		name    string
		x, y    int
		size    int
		wantErr bool
	}{
		{name: "origin", x: 0, y: 0, size: 32},
		{name: "touches bottom right corner", x: 32, y: 16, size: 32},
		{name: "exact fit", x: 0, y: 0, size: 48},
		{name: "past right edge", x: 33, y: 0, size: 32, wantErr: true},
		{name: "past bottom edge", x: 0, y: 17, size: 32, wantErr: true},
		{name: "negative offset", x: -1, y: 0, size: 32, wantErr: true},
		{name: "zero size", x: 0, y: 0, size: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragment, err := src.Fragment(tt.x, tt.y, tt.size)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrOutOfBounds)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, image.Rect(tt.x, tt.y, tt.x+tt.size, tt.y+tt.size), fragment.Bounds())
			assert.Equal(t, tt.size, fragment.Size())
		})
	}

	t.Run("zero value image has no fragments", func(t *testing.T) {
		_, err := SourceImage{}.Fragment(0, 0, 1)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestImagePool(t *testing.T) {
	a := NewSourceImage("a.png", solidImage(1, 1, color.White))
	b := NewSourceImage("b.png", solidImage(2, 2, color.White))

	images := []SourceImage{a, b}
	pool := NewImagePool(images...)
	images[0] = b

	require.Equal(t, 2, pool.Len())
	assert.Equal(t, Path("a.png"), pool.At(0).Path)
	assert.Equal(t, Path("b.png"), pool.At(1).Path)

	copied := pool.Images()
	copied[0] = b
	assert.Equal(t, Path("a.png"), pool.At(0).Path)

	assert.Equal(t, 0, NewImagePool().Len())
}
