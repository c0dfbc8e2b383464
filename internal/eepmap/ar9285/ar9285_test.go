package ar9285_test

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"reflect"
	"testing"

	"github.com/retroenv/eepdump/internal/eepmap"
	"github.com/retroenv/eepdump/internal/eepmap/ar9285"
	"github.com/retroenv/eepdump/internal/eepmap/ar9285/testimage"
	"github.com/retroenv/eepdump/internal/layout"
	"github.com/retroenv/eepdump/internal/source"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type leaf struct {
	offset int
	width  int
}

// leaves returns the offsets of all multi-byte values of the packed type.
func leaves(t reflect.Type, offset int, out *[]leaf) int {
	switch t.Kind() {
	case reflect.Struct:
		size := 0
		for i := 0; i < t.NumField(); i++ {
			size += leaves(t.Field(i).Type, offset+size, out)
		}
		return size
	case reflect.Array:
		size := 0
		for i := 0; i < t.Len(); i++ {
			size += leaves(t.Elem(), offset+size, out)
		}
		return size
	default:
		width := int(t.Size())
		if width > 1 {
			*out = append(*out, leaf{offset: offset, width: width})
		}
		return width
	}
}

func TestLayout(t *testing.T) {
	assert.NoError(t, ar9285.Layout.Check())
	assert.Equal(t, ar9285.Size, binary.Size(ar9285.EEPROM{}))
	assert.Equal(t, ar9285.Size, ar9285.New().ImageSize())

	var expected []leaf
	assert.Equal(t, ar9285.Size, leaves(reflect.TypeOf(ar9285.EEPROM{}), 0, &expected))

	var got []leaf
	for _, f := range ar9285.Layout.Fields {
		if f.Width == 1 {
			continue
		}
		for _, offset := range f.Elements() {
			got = append(got, leaf{offset: offset, width: f.Width})
		}
	}

	assert.Len(t, got, len(expected))
	index := map[int]int{}
	for _, l := range got {
		index[l.offset] = l.width
	}
	for _, l := range expected {
		assert.Equal(t, l.width, index[l.offset], fmt.Sprintf("field width at offset %d", l.offset))
	}
}

func TestLayout_FieldOffsets(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		width  int
	}{
		{"length", 0, 2},
		{"version", 4, 2},
		{"regDmn", 8, 2},
		{"binBuildNumber", 26, 4},
		{"antCtrlChain", 52, 4},
		{"antCtrlCommon", 56, 4},
		{"spurChan", 100, 2},
		{"padding", 375, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := ar9285.Layout.Field(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.offset, f.Offset)
			assert.Equal(t, tt.width, f.Width)
		})
	}
}

func newSession(t *testing.T, dump []byte) *eepmap.Session {
	t.Helper()
	return eepmap.NewSession(log.NewTestLogger(t), source.NewBuffer(dump))
}

func decode(t *testing.T, m *ar9285.AR9285, s *eepmap.Session) *ar9285.EEPROM {
	t.Helper()
	v, err := m.Decode(s)
	assert.NoError(t, err)
	eep, ok := v.(*ar9285.EEPROM)
	assert.True(t, ok)
	return eep
}

func TestValidate_Native(t *testing.T) {
	m := ar9285.New()
	dump := testimage.Dump(testimage.Sample(), binary.NativeEndian)
	s := newSession(t, dump)

	assert.NoError(t, m.Fill(s))
	assert.NoError(t, m.Validate(s))
	assert.True(t, s.Validated())
	assert.False(t, s.Swapped())
	assert.Equal(t, dump[ar9285.StartLoc*2:], s.Image().Bytes())

	eep := decode(t, m, s)
	expected := testimage.Sample()
	assert.Equal(t, expected.BaseEepHeader.Version, eep.BaseEepHeader.Version)
	assert.Equal(t, expected.BaseEepHeader.MacAddr, eep.BaseEepHeader.MacAddr)
	assert.Equal(t, expected.ModalHeader.AntCtrlCommon, eep.ModalHeader.AntCtrlCommon)
}

func TestValidate_OppositeOrder(t *testing.T) {
	m := ar9285.New()

	native := newSession(t, testimage.Dump(testimage.Sample(), binary.NativeEndian))
	assert.NoError(t, m.Fill(native))
	assert.NoError(t, m.Validate(native))

	swapped := newSession(t, testimage.Foreign(testimage.Sample()))
	assert.NoError(t, m.Fill(swapped))
	assert.NoError(t, m.Validate(swapped))
	assert.True(t, swapped.Swapped())

	assert.Equal(t, native.Image().Bytes(), swapped.Image().Bytes())

	eep := decode(t, m, swapped)
	expected := testimage.Sample()
	assert.Equal(t, expected.BaseEepHeader.BinBuildNumber, eep.BaseEepHeader.BinBuildNumber)
	assert.Equal(t, expected.BaseEepHeader.RegDmn, eep.BaseEepHeader.RegDmn)
	assert.Equal(t, expected.ModalHeader.AntCtrlChain, eep.ModalHeader.AntCtrlChain)
	assert.Equal(t, expected.ModalHeader.SpurChans, eep.ModalHeader.SpurChans)
	assert.Equal(t, expected.CustData, eep.CustData)
}

func TestValidate_WordSwappedDump(t *testing.T) {
	m := ar9285.New()
	dump := testimage.Dump(testimage.Sample(), binary.NativeEndian)
	layout.SwapWords(dump)
	s := newSession(t, dump)

	assert.NoError(t, m.Fill(s))
	assert.NoError(t, m.Validate(s))
	assert.True(t, s.Swapped())

	eep := decode(t, m, s)
	expected := testimage.Sample()
	assert.Equal(t, expected.BaseEepHeader.Version, eep.BaseEepHeader.Version)
	assert.Equal(t, expected.BaseEepHeader.RegDmn, eep.BaseEepHeader.RegDmn)
	assert.Equal(t, expected.BaseEepHeader.MacAddr, eep.BaseEepHeader.MacAddr)
	assert.Equal(t, expected.CustData, eep.CustData)
	// 32-bit fields of this dump were not stored high word first
	assert.Equal(t, bits.RotateLeft32(expected.BaseEepHeader.BinBuildNumber, 16), eep.BaseEepHeader.BinBuildNumber)
}

func TestValidate_OppositeOrderProducer(t *testing.T) {
	m := ar9285.New()
	s := newSession(t, testimage.Dump(testimage.Sample(), testimage.Opposite()))

	assert.NoError(t, m.Fill(s))
	assert.NoError(t, m.Validate(s))
	assert.True(t, s.Swapped())

	eep := decode(t, m, s)
	expected := testimage.Sample()
	assert.Equal(t, expected.BaseEepHeader.Length, eep.BaseEepHeader.Length)
	assert.Equal(t, expected.BaseEepHeader.Version, eep.BaseEepHeader.Version)
	assert.Equal(t, expected.BaseEepHeader.RegDmn, eep.BaseEepHeader.RegDmn)
	assert.Equal(t, expected.BaseEepHeader.DeviceCap, eep.BaseEepHeader.DeviceCap)
	assert.Equal(t, expected.BaseEepHeader.BinBuildNumber, eep.BaseEepHeader.BinBuildNumber)
	assert.Equal(t, expected.ModalHeader.AntCtrlChain, eep.ModalHeader.AntCtrlChain)
	assert.Equal(t, expected.ModalHeader.AntCtrlCommon, eep.ModalHeader.AntCtrlCommon)
	for i, spur := range expected.ModalHeader.SpurChans {
		assert.Equal(t, spur.SpurChan, eep.ModalHeader.SpurChans[i].SpurChan)
	}
	// byte fields are read as words, each pair moves with its word
	assert.Equal(t, [6]uint8{0x03, 0x00, 0x11, 0x7F, 0x33, 0x22}, eep.BaseEepHeader.MacAddr)
}

func TestValidate_InvalidMagic(t *testing.T) {
	m := ar9285.New()
	dump := testimage.Dump(testimage.Sample(), binary.NativeEndian)
	dump[0], dump[1] = 0x12, 0x34
	s := newSession(t, dump)

	assert.NoError(t, m.Fill(s))
	err := m.Validate(s)
	assert.True(t, errors.Is(err, eepmap.ErrInvalidMagic))
	assert.False(t, s.Validated())

	_, err = m.Decode(s)
	assert.True(t, errors.Is(err, eepmap.ErrNotValidated))
}

func TestValidate_BadChecksum(t *testing.T) {
	m := ar9285.New()
	dump := testimage.Dump(testimage.Sample(), binary.NativeEndian)
	// customer data is covered by the checksum
	dump[ar9285.StartLoc*2+40] ^= 0x01
	s := newSession(t, dump)

	assert.NoError(t, m.Fill(s))
	err := m.Validate(s)
	assert.True(t, errors.Is(err, eepmap.ErrBadChecksumOrVersion))

	var checksumErr *eepmap.ChecksumVersionError
	assert.True(t, errors.As(err, &checksumErr))
	flipped := uint32(binary.NativeEndian.Uint16([]byte{0x01, 0x00}))
	assert.Equal(t, 0xFFFF^flipped, checksumErr.Checksum)
}

func TestValidate_LengthClamped(t *testing.T) {
	m := ar9285.New()
	eep := testimage.Sample()
	eep.BaseEepHeader.Length = 0xFFFF
	s := newSession(t, testimage.Dump(eep, binary.NativeEndian))

	assert.NoError(t, m.Fill(s))
	assert.NoError(t, m.Validate(s))
}

func TestValidate_Versions(t *testing.T) {
	tests := []struct {
		name    string
		version uint16
		valid   bool
	}{
		{"minimum minor", 0xE001, true},
		{"minor 19", 0xE013, true},
		{"minor below minimum", 0xE000, false},
		{"wrong major", 0xD003, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ar9285.New()
			eep := testimage.Sample()
			eep.BaseEepHeader.Version = tt.version
			s := newSession(t, testimage.Dump(eep, binary.NativeEndian))

			assert.NoError(t, m.Fill(s))
			err := m.Validate(s)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, eepmap.ErrBadChecksumOrVersion))
		})
	}
}

func TestFill_ShortSource(t *testing.T) {
	m := ar9285.New()
	dump := testimage.Dump(testimage.Sample(), binary.NativeEndian)
	s := newSession(t, dump[:len(dump)-2])

	err := m.Fill(s)
	var fillErr *eepmap.FillError
	assert.True(t, errors.As(err, &fillErr))
	assert.Equal(t, ar9285.Name, fillErr.Chip)

	var readErr *source.ReadError
	assert.True(t, errors.As(err, &readErr))
	assert.Equal(t, uint32(ar9285.StartLoc+ar9285.Size/2-1), readErr.Address)
}
