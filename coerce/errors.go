package coerce

import "errors"

// ErrInvalidInput indicates a value which cannot be converted to the
// requested type.
var ErrInvalidInput = errors.New("coerce: invalid input")
