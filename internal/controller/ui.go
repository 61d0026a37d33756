// Package controller provides output adapters for reporting collage runs.
package controller

import (
	m "github.com/mouse-blink/glitchcollage/internal/model"
)

// UI defines how a collage run reports progress and diagnostics.
// Implementations can use different output methods (simple text, styled terminal output).
type UI interface {
	DisplayRunInfo(cfg m.CollageConfig)
	// DisplayLoadError reports a file or directory that could not be loaded.
	// It must write to the error stream.
	DisplayLoadError(path m.Path, err error)
	DisplayLoadSummary(report m.LoadReport)
	DisplayComposeSummary(stats m.ComposeStats)
	DisplaySaved(path m.Path)
}
