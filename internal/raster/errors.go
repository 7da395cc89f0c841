package raster

import "errors"

var (
	// ErrNoSymbols indicates Composite was called with no symbols; the
	// union bounding box is undefined for an empty set.
	ErrNoSymbols = errors.New("raster: cannot composite an empty symbol set")

	// ErrMargin indicates a negative canvas margin.
	ErrMargin = errors.New("raster: margin must be non-negative")

	// ErrBadSize indicates a requested bitmap size with a zero or negative
	// dimension.
	ErrBadSize = errors.New("raster: rows and cols must be positive")
)
