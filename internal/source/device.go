package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxDeviceSize is the size of the byte address space of a serial EEPROM
// with two byte addressing.
const MaxDeviceSize = 1 << 16

// ErrInvalidDevice is returned for a malformed device specification.
var ErrInvalidDevice = errors.New("invalid device")

// SerialEEPROM is a serial EEPROM with two byte addressing attached to an
// I2C bus, for example an AT24C32 at address 0x50.
type SerialEEPROM struct {
	BusIndex   int
	BusAddress int
}

// ParseDevice parses a device given as bus:address, both numbers accept a
// 0x prefix for hexadecimal values.
func ParseDevice(s string) (SerialEEPROM, error) {
	bus, addr, ok := strings.Cut(s, ":")
	if !ok {
		return SerialEEPROM{}, fmt.Errorf("%w '%s': expected bus:address", ErrInvalidDevice, s)
	}

	busIndex, err := strconv.ParseUint(strings.TrimSpace(bus), 0, 8)
	if err != nil {
		return SerialEEPROM{}, fmt.Errorf("%w '%s': parsing bus: %w", ErrInvalidDevice, s, err)
	}
	busAddress, err := strconv.ParseUint(strings.TrimSpace(addr), 0, 7)
	if err != nil {
		return SerialEEPROM{}, fmt.Errorf("%w '%s': parsing address: %w", ErrInvalidDevice, s, err)
	}

	return SerialEEPROM{
		BusIndex:   int(busIndex),
		BusAddress: int(busAddress),
	}, nil
}

func (e SerialEEPROM) String() string {
	return fmt.Sprintf("i2c-%d:0x%02x", e.BusIndex, e.BusAddress)
}

// checkRange returns an error if the byte range is outside of the address space.
func checkRange(length int, off int64) error {
	if off < 0 || off+int64(length) > MaxDeviceSize {
		return &ReadError{
			Address: uint32(off / 2),
			Err:     ErrOutOfRange,
		}
	}
	return nil
}
