package source

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a word address is beyond the end of the source.
var ErrOutOfRange = errors.New("address out of range")

// ReadError is returned when a word could not be read from a source.
type ReadError struct {
	Address uint32 // word address that failed
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading word at 0x%04X: %s", e.Address, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
