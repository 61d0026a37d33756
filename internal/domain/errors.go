package domain

import "errors"

// ErrEmptyPool is returned when no source image could be loaded.
var ErrEmptyPool = errors.New("no images found")
