package eepmap

import (
	"errors"
	"fmt"
)

// Sentinel errors of the validation protocol and the chip registry.
var (
	ErrInvalidMagic         = errors.New("invalid EEPROM magic, endianness mismatch")
	ErrBadChecksumOrVersion = errors.New("bad EEPROM checksum or revision")
	ErrNotFilled            = errors.New("EEPROM image has not been filled")
	ErrNotValidated         = errors.New("EEPROM image has not been validated")
	ErrUnknownChip          = errors.New("unknown chip")
	ErrDuplicateChip        = errors.New("chip already registered")
)

// FillError is returned when the EEPROM structure could not be read from the source.
type FillError struct {
	Chip string
	Err  error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("unable to read %s eeprom region: %s", e.Chip, e.Err)
}

func (e *FillError) Unwrap() error {
	return e.Err
}

// InvalidMagicError is returned when the magic word matches in neither byte order.
type InvalidMagicError struct {
	Magic uint16 // magic word as read from the source
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("%s: read 0x%04X", ErrInvalidMagic, e.Magic)
}

func (e *InvalidMagicError) Unwrap() error {
	return ErrInvalidMagic
}

// ChecksumVersionError is returned when the checksum fold or the version of
// an image with a valid magic is not accepted.
type ChecksumVersionError struct {
	Checksum uint32
	Version  uint16
}

func (e *ChecksumVersionError) Error() string {
	return fmt.Sprintf("bad EEPROM checksum 0x%x or revision 0x%04x", e.Checksum, e.Version)
}

func (e *ChecksumVersionError) Unwrap() error {
	return ErrBadChecksumOrVersion
}
