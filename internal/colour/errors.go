package colour

import "errors"

var (
	// ErrInvalidParameter is returned when an argument is out of range or malformed.
	// It is checked before any pixel is processed.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyInput is returned when no pixel survives the saturation/brightness filter.
	ErrEmptyInput = errors.New("no pixels passed the saturation/brightness filter")
)
