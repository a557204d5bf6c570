package core

import "errors"

var (
	// ErrInvalidDimensions reports a zero or negative extent, an odd margin, or
	// a board too small to host a padding ring.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrOutOfBounds reports an accessor called outside a board's extent.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)
