package eepmap

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"testing"

	"github.com/retroenv/eepdump/internal/layout"
	"github.com/retroenv/eepdump/internal/source"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const (
	testBase = 4
	testSize = 16
)

var testMagic = binary.NativeEndian.Uint16([]byte{0x5A, 0xA5})

// testHeader is a small packed structure exercising every field width.
type testHeader struct {
	Length   uint16
	Checksum uint16
	Version  uint16
	Flags    uint8
	Misc     uint8
	Ant      uint32
	Spur     uint16
	Low      uint8
	High     uint8
}

var testLayout = layout.Layout{
	Name: "test",
	Size: testSize,
	Fields: []layout.Field{
		{Name: "length", Offset: 0, Width: 2},
		{Name: "checksum", Offset: 2, Width: 2},
		{Name: "version", Offset: 4, Width: 2},
		{Name: "flags", Offset: 6, Width: 1},
		{Name: "misc", Offset: 7, Width: 1},
		{Name: "ant", Offset: 8, Width: 4},
		{Name: "spur", Offset: 12, Width: 2},
		{Name: "low", Offset: 14, Width: 1},
		{Name: "high", Offset: 15, Width: 1},
	},
}

var testChecker = Checker{
	Layout:          testLayout,
	Magic:           testMagic,
	MagicAddress:    0,
	LengthOffset:    0,
	VersionOffset:   4,
	MajorVersion:    1,
	MinMinorVersion: 0xE,
}

// testMap is a minimal chip map backed by testLayout.
type testMap struct {
	name string
}

func (m testMap) Name() string        { return m.name }
func (m testMap) Description() string { return "test chip EEPROM map" }
func (m testMap) ImageSize() int      { return testSize }

func (m testMap) Fill(s *Session) error {
	return s.Fill(m.name, testBase, testSize)
}

func (m testMap) Validate(s *Session) error {
	_, err := testChecker.Validate(s)
	return err
}

func (m testMap) DumpBaseHeader(s *Session, w io.Writer) error {
	img, err := s.ValidatedImage()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Length : 0x%04X\n", img.Uint16(0))
	return err
}

func (m testMap) DumpModalHeader(s *Session, w io.Writer) error { return nil }
func (m testMap) DumpPowerInfo(s *Session, w io.Writer) error   { return nil }

func (m testMap) Decode(s *Session) (any, error) {
	img, err := s.ValidatedImage()
	if err != nil {
		return nil, err
	}
	var h testHeader
	err = binary.Read(bytes.NewReader(img.Bytes()), binary.NativeEndian, &h)
	return h, err
}

func newTestHeader() testHeader {
	return testHeader{
		Length:  testSize,
		Version: 0x100E,
		Flags:   0x03,
		Misc:    0x01,
		Ant:     0x11223344,
		Spur:    0xABCD,
		Low:     0x10,
		High:    0x20,
	}
}

func oppositeOrder() binary.ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func encodeHeader(t *testing.T, h testHeader, order binary.ByteOrder) []byte {
	t.Helper()
	var buf bytes.Buffer
	assert.NoError(t, binary.Write(&buf, order, h))
	return buf.Bytes()
}

// withChecksum sets the checksum so that the native word fold equals 0xFFFF.
func withChecksum(t *testing.T, h testHeader) testHeader {
	t.Helper()
	return withOrderChecksum(t, h, binary.NativeEndian)
}

// withOrderChecksum sets the checksum so that the fold of the words of the
// structure encoded in the given byte order equals 0xFFFF.
func withOrderChecksum(t *testing.T, h testHeader, order binary.ByteOrder) testHeader {
	t.Helper()
	h.Checksum = 0
	data := encodeHeader(t, h, order)

	var sum uint16
	for i := 0; i < int(h.Length)/2 && i*2 < len(data); i++ {
		sum ^= order.Uint16(data[i*2:])
	}
	h.Checksum = sum ^ 0xFFFF
	return h
}

// buildDump returns a device dump with the magic at word 0 and the
// structure at testBase, both written in the given byte order.
func buildDump(t *testing.T, h testHeader, order binary.ByteOrder) []byte {
	t.Helper()
	dump := make([]byte, testBase*2)
	order.PutUint16(dump, testMagic)
	return append(dump, encodeHeader(t, h, order)...)
}

// foreignDump returns the native dump as written through a word interface
// of the opposite byte order: every word is byte swapped and 32-bit fields
// are stored high word first.
func foreignDump(t *testing.T, h testHeader) []byte {
	t.Helper()
	dump := buildDump(t, h, binary.NativeEndian)
	testLayout.SwapWide(dump[testBase*2:])
	layout.SwapWords(dump)
	return dump
}

func newFilledSession(t *testing.T, dump []byte) *Session {
	t.Helper()
	s := NewSession(log.NewTestLogger(t), source.NewBuffer(dump))
	assert.NoError(t, testMap{name: "test"}.Fill(s))
	return s
}
