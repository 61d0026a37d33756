package domain

import (
	"fmt"

	"github.com/mouse-blink/glitchcollage/internal/adapter"
	"github.com/mouse-blink/glitchcollage/internal/controller"
	m "github.com/mouse-blink/glitchcollage/internal/model"
)

// Workflow runs a complete collage generation.
type Workflow interface {
	Run(cfg m.CollageConfig) error
}

type workflow struct {
	fsAdapter  adapter.ImageFSAdapter
	ui         controller.UI
	loader     Loader
	compositor Compositor
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.ImageFSAdapter,
	ui controller.UI,
	loader Loader,
	compositor Compositor,
) Workflow {
	return &workflow{
		fsAdapter:  fsAdapter,
		ui:         ui,
		loader:     loader,
		compositor: compositor,
	}
}

// Run loads the input directory, composes the collage and writes it to
// cfg.OutputPath. Nothing is written when the pool is empty or composing
// fails.
func (w *workflow) Run(cfg m.CollageConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	w.ui.DisplayRunInfo(cfg)

	pool, report := w.loader.Load(cfg.InputDir)
	w.ui.DisplayLoadSummary(report)

	if pool.Len() == 0 {
		return fmt.Errorf("%w in %s", ErrEmptyPool, cfg.InputDir)
	}

	canvas, stats, err := w.compositor.Compose(pool, cfg)
	if err != nil {
		return fmt.Errorf("failed to compose collage: %w", err)
	}

	w.ui.DisplayComposeSummary(stats)

	if err := w.fsAdapter.EncodePNG(cfg.OutputPath, canvas.Image()); err != nil {
		return fmt.Errorf("failed to write collage %s: %w", cfg.OutputPath, err)
	}

	abs, err := w.fsAdapter.AbsPath(cfg.OutputPath)
	if err != nil {
		abs = cfg.OutputPath
	}

	w.ui.DisplaySaved(abs)

	return nil
}
