// Package source provides the word oriented byte sources an EEPROM image is read from.
package source

import (
	"encoding/binary"
)

// WordReader reads 16-bit words from a word addressed EEPROM space.
type WordReader interface {
	// ReadWord returns the word at the given word address.
	ReadWord(address uint32) (uint16, error)
}

// Buffer is a WordReader backed by a raw memory dump of the EEPROM space.
// Words are the host native view of two consecutive bytes, matching what a
// memory mapped register window returns.
type Buffer struct {
	data []byte
}

// Compile-time check to ensure Buffer implements WordReader.
var _ WordReader = (*Buffer)(nil)

// NewBuffer returns a new buffer source for the given raw dump.
// A trailing odd byte can not form a word and is not addressable.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{
		data: data,
	}
}

// ReadWord returns the word at the given word address.
func (b *Buffer) ReadWord(address uint32) (uint16, error) {
	offset := uint64(address) * 2
	if offset+2 > uint64(len(b.data)) {
		return 0, &ReadError{
			Address: address,
			Err:     ErrOutOfRange,
		}
	}
	return binary.NativeEndian.Uint16(b.data[offset:]), nil
}

// Words returns the number of addressable words.
func (b *Buffer) Words() int {
	return len(b.data) / 2
}
