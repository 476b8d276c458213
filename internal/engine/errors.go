package engine

import "errors"

// ErrInvalidWeight is returned when a submitted weight value cannot be
// parsed as a decimal number.
var ErrInvalidWeight = errors.New("invalid weight value")
