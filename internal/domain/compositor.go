package domain

import (
	"fmt"
	"image"

	"github.com/mouse-blink/glitchcollage/internal/adapter"
	m "github.com/mouse-blink/glitchcollage/internal/model"
)

// Compositor scatters random square fragments of pooled images onto a canvas.
type Compositor interface {
	Compose(pool m.ImagePool, cfg m.CollageConfig) (*m.Canvas, m.ComposeStats, error)
}

type compositor struct {
	rng adapter.RandomSource
}

// NewCompositor creates a Compositor drawing all of its randomness from rng.
func NewCompositor(rng adapter.RandomSource) Compositor {
	return &compositor{rng: rng}
}

// Compose runs cfg.FragmentCount scatter iterations. Each iteration draws, in
// order, the image index, the crop x and y, and the destination x and y.
// Iterations that pick an image smaller than the fragment are skipped
// without a retry, so fewer than FragmentCount fragments may be drawn.
func (c *compositor) Compose(pool m.ImagePool, cfg m.CollageConfig) (*m.Canvas, m.ComposeStats, error) {
	if pool.Len() == 0 {
		return nil, m.ComposeStats{}, ErrEmptyPool
	}

	if err := cfg.Validate(); err != nil {
		return nil, m.ComposeStats{}, err
	}

	size := cfg.FragmentSize
	canvas := m.NewCanvas(cfg.CanvasWidth, cfg.CanvasHeight, cfg.Background)
	stats := m.ComposeStats{}

	for i := 0; i < cfg.FragmentCount; i++ {
		stats.Attempted++

		src := pool.At(c.rng.Intn(pool.Len()))
		if src.Width() < size || src.Height() < size {
			stats.Skipped++
			continue
		}

		fragment, err := src.Fragment(c.offset(src.Width()-size), c.offset(src.Height()-size), size)
		if err != nil {
			return nil, stats, fmt.Errorf("iteration %d: %w", i, err)
		}

		dst := image.Pt(c.offset(canvas.Width()-size), c.offset(canvas.Height()-size))
		if err := canvas.Paste(fragment, dst); err != nil {
			return nil, stats, fmt.Errorf("iteration %d: %w", i, err)
		}

		stats.Drawn++
	}

	return canvas, stats, nil
}

// offset returns a uniform value in [0, span). A zero span means the
// fragment fits exactly, so the only valid offset is 0 and nothing is drawn
// from the generator.
func (c *compositor) offset(span int) int {
	if span <= 0 {
		return 0
	}

	return c.rng.Intn(span)
}
