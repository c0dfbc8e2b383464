package ar5416

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMagic(t *testing.T) {
	data := make([]byte, 2)
	binary.NativeEndian.PutUint16(data, Magic)
	assert.Equal(t, []byte{0x5A, 0xA5}, data)

	// a swapped magic can never be mistaken for the native one
	assert.True(t, Magic != (Magic>>8|Magic<<8))
}

func TestFrequencyBins(t *testing.T) {
	assert.Equal(t, 2412, Fbin2Freq(112, true))
	assert.Equal(t, 112, Freq2Fbin(2412, true))
	assert.Equal(t, 5180, Fbin2Freq(76, false))
	assert.Equal(t, 76, Freq2Fbin(5180, false))
}

func TestFlag(t *testing.T) {
	assert.Equal(t, 1, Flag(uint8(0x03), uint8(OpFlags11G)))
	assert.Equal(t, 0, Flag(uint8(0x03), uint8(OpFlagsN5GHT40)))
	assert.Equal(t, 1, Flag(uint16(0x0001), uint16(RFSilentEnabled)))
}

func TestRFSilent(t *testing.T) {
	const rfSilent = 0x000F // enabled, polarity 1, gpio 3
	assert.Equal(t, uint16(3), RFSilentGpio(rfSilent))
	assert.Equal(t, uint16(1), RFSilentPolarityValue(rfSilent))
}

func TestCalCtlEdges(t *testing.T) {
	edge := CalCtlEdges{BChannel: 112, Ctl: 0x7C}
	assert.Equal(t, uint8(0x3C), edge.Power())
	assert.Equal(t, uint8(1), edge.Flags())
}

func TestDeviceType(t *testing.T) {
	name, err := DeviceTypeOf(0x05).Name()
	assert.NoError(t, err)
	assert.Equal(t, "PCIExpress", name)

	// the masked device type field always has a name
	for field := 0; field < 256; field++ {
		_, err := DeviceTypeOf(uint8(field)).Name()
		assert.NoError(t, err)
	}

	_, err = DeviceType(8).Name()
	assert.True(t, errors.Is(err, ErrUnknownValue))
	assert.Equal(t, "Unknown (8)", DeviceType(8).String())
}

func TestCtlIndex(t *testing.T) {
	domain, mode := SplitCtlIndex(0x11)
	assert.Equal(t, CtlDomainFCC, domain)
	assert.Equal(t, Ctl11B, mode)
	assert.Equal(t, "FCC", domain.String())
	assert.Equal(t, "2GHz CCK", mode.String())
	assert.True(t, mode.Is2G())
	assert.False(t, Ctl5GHT40.Is2G())

	_, err := CtlMode(0xC).Name()
	assert.True(t, errors.Is(err, ErrUnknownValue))
	assert.Equal(t, "Unknown (12)", CtlMode(0xC).String())

	_, err = CtlDomain(0x2).Name()
	assert.True(t, errors.Is(err, ErrUnknownValue))
}
