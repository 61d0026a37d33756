package domain

import (
	"path/filepath"
	"strings"

	"github.com/mouse-blink/glitchcollage/internal/adapter"
	"github.com/mouse-blink/glitchcollage/internal/controller"
	m "github.com/mouse-blink/glitchcollage/internal/model"
)

const pngExt = ".png"

// Loader reads every eligible image in a directory into an ImagePool.
type Loader interface {
	// Load never fails as a whole: unreadable directories and files are
	// reported through the UI and left out of the pool.
	Load(dir m.Path) (m.ImagePool, m.LoadReport)
}

type loader struct {
	fsAdapter adapter.ImageFSAdapter
	ui        controller.UI
}

// NewLoader creates a Loader reading through fsAdapter and reporting
// diagnostics to ui.
func NewLoader(fsAdapter adapter.ImageFSAdapter, ui controller.UI) Loader {
	return &loader{
		fsAdapter: fsAdapter,
		ui:        ui,
	}
}

func (l *loader) Load(dir m.Path) (m.ImagePool, m.LoadReport) {
	report := m.LoadReport{Dir: dir}

	files, err := l.fsAdapter.ListFiles(dir)
	if err != nil {
		l.ui.DisplayLoadError(dir, err)
		return m.NewImagePool(), report
	}

	images := make([]m.SourceImage, 0, len(files))

	for _, file := range files {
		if !isPNG(file) {
			report.Skipped++
			continue
		}

		report.Candidates++

		img, err := l.fsAdapter.DecodeImage(file)
		if err != nil {
			report.Failed++
			l.ui.DisplayLoadError(file, err)

			continue
		}

		images = append(images, m.NewSourceImage(file, img))
		report.Loaded++
	}

	return m.NewImagePool(images...), report
}

func isPNG(path m.Path) bool {
	return strings.EqualFold(filepath.Ext(string(path)), pngExt)
}
