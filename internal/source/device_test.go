package source

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseDevice(t *testing.T) {
	tests := []struct {
		input string
		want  SerialEEPROM
	}{
		{"0:0x50", SerialEEPROM{BusIndex: 0, BusAddress: 0x50}},
		{"2:80", SerialEEPROM{BusIndex: 2, BusAddress: 0x50}},
		{" 1 : 0x57 ", SerialEEPROM{BusIndex: 1, BusAddress: 0x57}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDevice(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDevice_Invalid(t *testing.T) {
	for _, input := range []string{"", "0x50", "a:0x50", "0:zz", "0:0x80", "-1:0x50"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDevice(input)
			assert.True(t, errors.Is(err, ErrInvalidDevice))
		})
	}
}

func TestSerialEEPROM_String(t *testing.T) {
	assert.Equal(t, "i2c-1:0x50", SerialEEPROM{BusIndex: 1, BusAddress: 0x50}.String())
}

func TestSerialEEPROM_ReadAtOutOfRange(t *testing.T) {
	dev := SerialEEPROM{BusIndex: 0, BusAddress: 0x50}
	buf := make([]byte, 4)

	_, err := dev.ReadAt(buf, MaxDeviceSize-2)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = dev.ReadAt(buf, -1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}
