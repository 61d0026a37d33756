package model

import (
	"errors"
	"fmt"
	"image/color"
)

// Fixed run parameters.
const (
	DefaultInputDir      Path = "small-images-data"
	DefaultOutputPath    Path = "glitch_collage.png"
	DefaultCanvasWidth        = 1024
	DefaultCanvasHeight       = 1024
	DefaultFragmentSize       = 32
	DefaultFragmentCount      = 2000
)

// ErrInvalidConfig is returned by CollageConfig.Validate.
var ErrInvalidConfig = errors.New("invalid collage config")

// CollageConfig holds everything a collage run needs to know.
type CollageConfig struct {
	InputDir      Path
	OutputPath    Path
	CanvasWidth   int
	CanvasHeight  int
	FragmentSize  int
	FragmentCount int
	Background    color.Color
}

// DefaultCollageConfig returns the configuration used by the CLI.
func DefaultCollageConfig() CollageConfig {
	return CollageConfig{
		InputDir:      DefaultInputDir,
		OutputPath:    DefaultOutputPath,
		CanvasWidth:   DefaultCanvasWidth,
		CanvasHeight:  DefaultCanvasHeight,
		FragmentSize:  DefaultFragmentSize,
		FragmentCount: DefaultFragmentCount,
		Background:    color.Black,
	}
}

// Validate checks that a canvas can hold at least one fragment.
func (c CollageConfig) Validate() error {
	switch {
	case c.InputDir == "":
		return fmt.Errorf("%w: input directory is empty", ErrInvalidConfig)
	case c.OutputPath == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	case c.FragmentSize <= 0:
		return fmt.Errorf("%w: fragment size %d must be positive", ErrInvalidConfig, c.FragmentSize)
	case c.FragmentCount < 0:
		return fmt.Errorf("%w: fragment count %d must not be negative", ErrInvalidConfig, c.FragmentCount)
	case c.CanvasWidth < c.FragmentSize || c.CanvasHeight < c.FragmentSize:
		return fmt.Errorf("%w: canvas %dx%d is smaller than fragment size %d",
			ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight, c.FragmentSize)
	case c.Background == nil:
		return fmt.Errorf("%w: background color is not set", ErrInvalidConfig)
	}

	return nil
}
