// Package eepmap contains the chip layout descriptor contract and the
// validation engine shared by all supported chip families.
// It acts as a bridge between the dump pipeline and the chip specific code.
package eepmap

import (
	"io"
)

// Map describes the EEPROM map of one chip family.
type Map interface {
	// Name returns the model name the map is selected by.
	Name() string
	// Description returns a human readable description of the map.
	Description() string
	// ImageSize returns the size in bytes of the chip's EEPROM structure.
	ImageSize() int

	// Fill reads the EEPROM structure from the session source into the session image.
	Fill(s *Session) error
	// Validate checks magic, checksum and version of the filled image and
	// normalizes its byte order in place.
	Validate(s *Session) error

	// DumpBaseHeader writes the base header fields of a validated image.
	DumpBaseHeader(s *Session, w io.Writer) error
	// DumpModalHeader writes the modal header fields of a validated image.
	DumpModalHeader(s *Session, w io.Writer) error
	// DumpPowerInfo writes the calibration and power tables of a validated image.
	DumpPowerInfo(s *Session, w io.Writer) error

	// Decode returns the typed structure of a validated image.
	Decode(s *Session) (any, error)
}
