package poisson

import "errors"

var (
	// ErrInvalidDimensions indicates a width or height that is not a
	// positive finite number.
	ErrInvalidDimensions = errors.New("poisson: width and height must be positive and finite")
	// ErrInvalidRadius indicates a radius that is not a positive finite number.
	ErrInvalidRadius = errors.New("poisson: radius must be positive and finite")
	// ErrGridTooLarge indicates that the background grid would exceed MaxCells.
	ErrGridTooLarge = errors.New("poisson: background grid too large")
)
