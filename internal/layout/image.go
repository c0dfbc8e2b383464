package layout

import (
	"encoding/binary"
	"fmt"
)

// Image is the in-memory copy of a packed EEPROM structure. It is addressed
// as host native 16-bit words for transport and as bytes for field access.
type Image struct {
	data []byte
}

// NewImage returns a zeroed image of the given size in bytes.
func NewImage(size int) (*Image, error) {
	if size <= 0 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddSize, size)
	}
	return &Image{
		data: make([]byte, size),
	}, nil
}

// Size returns the image size in bytes.
func (i *Image) Size() int {
	return len(i.data)
}

// Words returns the image size in words.
func (i *Image) Words() int {
	return len(i.data) / 2
}

// Word returns the word at the given word index.
func (i *Image) Word(index int) uint16 {
	return binary.NativeEndian.Uint16(i.data[index*2:])
}

// SetWord sets the word at the given word index.
func (i *Image) SetWord(index int, value uint16) {
	binary.NativeEndian.PutUint16(i.data[index*2:], value)
}

// Uint16 returns the 16-bit field at the given byte offset.
func (i *Image) Uint16(offset int) uint16 {
	return binary.NativeEndian.Uint16(i.data[offset:])
}

// Bytes returns the underlying buffer. Changes to it are reflected in the image.
func (i *Image) Bytes() []byte {
	return i.data
}

// Checksum returns the XOR fold of the first words of the image.
// The word count is capped to the image size.
func (i *Image) Checksum(words int) uint32 {
	if words > i.Words() {
		words = i.Words()
	}

	var sum uint32
	for index := 0; index < words; index++ {
		sum ^= uint32(i.Word(index))
	}
	return sum
}
