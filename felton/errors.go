package felton

import "errors"

var (
	// ErrTooFewRecords indicates that fewer than two records were given.
	ErrTooFewRecords = errors.New("felton: at least two records are required")
	// ErrNilFunc indicates a missing accessor or scale function.
	ErrNilFunc = errors.New("felton: accessor and scale functions must not be nil")
	// ErrNonFinite indicates that a scale produced NaN or an infinite coordinate.
	ErrNonFinite = errors.New("felton: non-finite coordinate")
)
