// Package ar9285 implements the EEPROM map of the AR9285 chip.
package ar9285

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/retroenv/eepdump/internal/eepmap"
	"github.com/retroenv/eepdump/internal/eepmap/ar5416"
)

// Name is the model name the map is registered under.
const Name = "9285"

var _ eepmap.Map = (*AR9285)(nil)

// AR9285 is the EEPROM map of the AR9285 chip.
type AR9285 struct {
	checker eepmap.Checker
}

// New returns a new AR9285 EEPROM map.
func New() *AR9285 {
	return &AR9285{
		checker: eepmap.Checker{
			Layout:          Layout,
			Magic:           ar5416.Magic,
			MagicAddress:    ar5416.MagicOffset,
			LengthOffset:    0,
			VersionOffset:   4,
			MajorVersion:    ar5416.EepVer,
			MinMinorVersion: ar5416.EepNoBackVer,
		},
	}
}

// Name returns the model name of the map.
func (a *AR9285) Name() string {
	return Name
}

// Description returns the description of the map.
func (a *AR9285) Description() string {
	return "AR9285 chip EEPROM map"
}

// ImageSize returns the size of the EEPROM structure in bytes.
func (a *AR9285) ImageSize() int {
	return Size
}

// Fill reads the EEPROM structure starting at word address StartLoc.
func (a *AR9285) Fill(s *eepmap.Session) error {
	return s.Fill(Name, StartLoc, Size)
}

// Validate checks the filled image and normalizes its byte order.
func (a *AR9285) Validate(s *eepmap.Session) error {
	_, err := a.checker.Validate(s)
	return err
}

// Decode returns the validated image as *EEPROM.
func (a *AR9285) Decode(s *eepmap.Session) (any, error) {
	return decode(s)
}

func decode(s *eepmap.Session) (*EEPROM, error) {
	img, err := s.ValidatedImage()
	if err != nil {
		return nil, err
	}

	eep := &EEPROM{}
	if err := binary.Read(bytes.NewReader(img.Bytes()), binary.NativeEndian, eep); err != nil {
		return nil, fmt.Errorf("decoding eeprom structure: %w", err)
	}
	return eep, nil
}
