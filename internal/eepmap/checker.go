package eepmap

import (
	"fmt"

	"github.com/retroenv/eepdump/internal/layout"
	"github.com/retroenv/retrogolib/log"
)

// checksumValid is the XOR fold of a correctly checksummed region.
const checksumValid = 0xFFFF

// Checker implements the validation protocol for one chip layout.
type Checker struct {
	Layout layout.Layout

	Magic        uint16 // host native magic constant
	MagicAddress uint32 // word address of the magic in the source

	LengthOffset  int // byte offset of the checksum region length field
	VersionOffset int // byte offset of the version field

	MajorVersion    uint16 // required major version
	MinMinorVersion uint16 // lowest accepted minor version
}

// Result contains the values computed while validating an image.
type Result struct {
	Swapped  bool
	Length   int // checksum region length in words
	Checksum uint32
	Version  uint16
}

// MajorVersion returns the major version encoded in the high nibble.
func MajorVersion(version uint16) uint16 {
	return (version >> 12) & 0xF
}

// MinorVersion returns the minor version encoded in the low 12 bits.
func MinorVersion(version uint16) uint16 {
	return version & 0xFFF
}

// Validate checks the filled session image: magic and byte order detection,
// byte order normalization, checksum fold and version. An image of the
// opposite byte order has every word swapped before the checksum is folded,
// the words of its 32-bit fields are exchanged afterwards. The image is
// normalized in place and the session is marked validated on success.
func (c Checker) Validate(s *Session) (Result, error) {
	var result Result
	switch {
	case s.state == stateValidated:
		return s.result, nil
	case s.image == nil || s.state != stateFilled:
		return result, ErrNotFilled
	}
	s.state = stateFailed

	magic, err := s.source.ReadWord(c.MagicAddress)
	if err != nil {
		return result, fmt.Errorf("reading magic: %w", err)
	}

	if magic != c.Magic {
		if layout.Swap16(magic) != c.Magic {
			return result, &InvalidMagicError{Magic: magic}
		}

		s.logger.Info("EEPROM endianness is not native, changing",
			log.String("layout", c.Layout.Name),
			log.Hex("magic", magic))
		layout.SwapWords(s.image.Bytes())
		s.swapped = true
	}

	result = c.result(s)
	if s.swapped {
		c.Layout.SwapWide(s.image.Bytes())
	}

	s.logger.Debug("Computed EEPROM checksum",
		log.Int("words", result.Length),
		log.Hex("checksum", result.Checksum),
		log.Hex("version", result.Version))

	if result.Checksum != checksumValid ||
		MajorVersion(result.Version) != c.MajorVersion ||
		MinorVersion(result.Version) < c.MinMinorVersion {
		return result, &ChecksumVersionError{
			Checksum: result.Checksum,
			Version:  result.Version,
		}
	}

	s.result = result
	s.state = stateValidated
	return result, nil
}

// result computes the checksum and version values of an image whose words
// are in host byte order.
func (c Checker) result(s *Session) Result {
	img := s.image

	length := int(img.Uint16(c.LengthOffset))
	if length > img.Size() {
		length = img.Size()
	}
	words := length / 2

	return Result{
		Swapped:  s.swapped,
		Length:   words,
		Checksum: img.Checksum(words),
		Version:  img.Uint16(c.VersionOffset),
	}
}
