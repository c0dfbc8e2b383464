package layout

import "errors"

// Layout table errors.
var (
	ErrOddSize      = errors.New("structure size is not a multiple of a word")
	ErrInvalidField = errors.New("invalid field")
	ErrGap          = errors.New("layout has a gap")
	ErrOverlap      = errors.New("layout has overlapping fields")
)
