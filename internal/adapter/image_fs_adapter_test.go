package adapter

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/glitchcollage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageFSAdapter_ListFiles(t *testing.T) {
	t.Run("lists regular files without descending", func(t *testing.T) {
		adapter := NewLocalImageFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.png"), []byte("b"))
		writeTestFile(t, filepath.Join(root, "a.PNG"), []byte("a"))
		writeTestFile(t, filepath.Join(root, "notes.txt"), []byte("n"))
		mustMkdir(t, filepath.Join(root, "nested.png"))
		writeTestFile(t, filepath.Join(root, "nested.png", "child.png"), []byte("c"))

		files, err := adapter.ListFiles(m.Path(root))
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "a.PNG")),
			m.Path(filepath.Join(root, "b.png")),
			m.Path(filepath.Join(root, "notes.txt")),
		}, files)
	})

	t.Run("follows symlinks to files and drops dangling ones", func(t *testing.T) {
		adapter := NewLocalImageFSAdapter()

		root := t.TempDir()
		target := filepath.Join(t.TempDir(), "real.png")
		writeTestFile(t, target, []byte("x"))

		if err := os.Symlink(target, filepath.Join(root, "link.png")); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		require.NoError(t, os.Symlink(filepath.Join(root, "missing.png"), filepath.Join(root, "dangling.png")))

		files, err := adapter.ListFiles(m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "link.png"))}, files)
	})

	t.Run("missing directory returns error", func(t *testing.T) {
		adapter := NewLocalImageFSAdapter()

		_, err := adapter.ListFiles(m.Path(filepath.Join(t.TempDir(), "nope")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLocalImageFSAdapter_DecodeImage(t *testing.T) {
	adapter := NewLocalImageFSAdapter()
	root := t.TempDir()

	t.Run("decodes png", func(t *testing.T) {
		path := filepath.Join(root, "red.png")
		writeTestPNG(t, path, 6, 4, color.NRGBA{R: 0xff, A: 0xff})

		img, err := adapter.DecodeImage(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())

		r, g, b, a := img.At(3, 2).RGBA()
		assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
	})

	t.Run("corrupt file returns error", func(t *testing.T) {
		path := filepath.Join(root, "broken.png")
		writeTestFile(t, path, []byte("definitely not a png"))

		_, err := adapter.DecodeImage(m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := adapter.DecodeImage(m.Path(filepath.Join(root, "missing.png")))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLocalImageFSAdapter_EncodePNG(t *testing.T) {
	t.Run("writes an RGB png", func(t *testing.T) {
		adapter := NewLocalImageFSAdapter()

		root := t.TempDir()
		path := filepath.Join(root, "out.png")

		canvas := m.NewCanvas(8, 8, color.Black)
		require.NoError(t, adapter.EncodePNG(m.Path(path), canvas.Image()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Greater(t, len(data), 26)
		assert.Equal(t, byte(8), data[24], "bit depth")
		assert.Equal(t, byte(2), data[25], "color type should be truecolor without alpha")

		decoded, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 8, 8), decoded.Bounds())

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file should be renamed into place")
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		adapter := NewLocalImageFSAdapter()

		path := filepath.Join(t.TempDir(), "out.png")
		writeTestFile(t, path, []byte("old"))

		require.NoError(t, adapter.EncodePNG(m.Path(path), m.NewCanvas(2, 2, color.White).Image()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEqual(t, []byte("old"), data)
	})

	t.Run("failed encode keeps previous output and leaves no temp files", func(t *testing.T) {
		adapter := NewLocalImageFSAdapter()

		root := t.TempDir()
		path := filepath.Join(root, "out.png")
		writeTestFile(t, path, []byte("old"))

		err := adapter.EncodePNG(m.Path(path), &image.NRGBA{})
		require.Error(t, err)

		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, []byte("old"), data)

		entries, readErr := os.ReadDir(root)
		require.NoError(t, readErr)
		assert.Len(t, entries, 1)
	})

	t.Run("missing directory returns error", func(t *testing.T) {
		adapter := NewLocalImageFSAdapter()

		path := filepath.Join(t.TempDir(), "missing", "out.png")
		err := adapter.EncodePNG(m.Path(path), m.NewCanvas(2, 2, color.White).Image())
		require.Error(t, err)

		_, statErr := os.Stat(path)
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})
}

func TestLocalImageFSAdapter_AbsPath(t *testing.T) {
	adapter := NewLocalImageFSAdapter()

	wd, err := os.Getwd()
	require.NoError(t, err)

	abs, err := adapter.AbsPath("glitch_collage.png")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(wd, "glitch_collage.png")), abs)
}

func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func writeTestPNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}

	writeTestFile(t, path, buf.Bytes())
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
