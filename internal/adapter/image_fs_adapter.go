// Package adapter contains infrastructure adapters for the glitchcollage CLI.
package adapter

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	m "github.com/mouse-blink/glitchcollage/internal/model"
)

// ImageFSAdapter abstracts the filesystem and codec operations the domain
// layer relies on, so loading and saving can be tested without touching the
// disk.
type ImageFSAdapter interface {
	// ListFiles returns the regular files directly inside dir, in
	// listing order. Subdirectories are not descended into.
	ListFiles(dir m.Path) ([]m.Path, error)

	// DecodeImage reads and decodes the raster stored at path.
	DecodeImage(path m.Path) (image.Image, error)

	// EncodePNG writes img to path as PNG. A failed write leaves any
	// previous file at path untouched.
	EncodePNG(path m.Path, img image.Image) error

	// AbsPath resolves path against the working directory.
	AbsPath(path m.Path) (m.Path, error)
}

// LocalImageFSAdapter implements ImageFSAdapter on top of the local disk.
type LocalImageFSAdapter struct{}

// NewLocalImageFSAdapter constructs a LocalImageFSAdapter instance ready to
// be wired into the workflow.
func NewLocalImageFSAdapter() *LocalImageFSAdapter {
	return &LocalImageFSAdapter{}
}

// ListFiles lists regular files in dir. Symlinks are followed.
func (a *LocalImageFSAdapter) ListFiles(dir m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	files := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		path := filepath.Join(string(dir), entry.Name())

		mode := entry.Type()
		if mode&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				continue // dangling link
			}

			mode = info.Mode()
		}

		if !mode.IsRegular() {
			continue
		}

		files = append(files, m.Path(path))
	}

	return files, nil
}

// DecodeImage opens the file at path and decodes it.
func (a *LocalImageFSAdapter) DecodeImage(path m.Path) (image.Image, error) {
	// #nosec G304 - path comes from listing the input directory
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return img, nil
}

// EncodePNG encodes img into a temporary file next to path and renames it
// into place once the data is fully written.
func (a *LocalImageFSAdapter) EncodePNG(path m.Path, img image.Image) error {
	target := string(path)

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+"-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := imaging.Encode(tmp, img, imaging.PNG); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmpName, target); err != nil {
		return err
	}

	committed = true

	return nil
}

// AbsPath returns the absolute form of path.
func (a *LocalImageFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
