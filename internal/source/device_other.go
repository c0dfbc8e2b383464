//go:build !linux

package source

import "errors"

// ErrUnsupportedPlatform is returned when reading a device on a platform
// without I2C device support.
var ErrUnsupportedPlatform = errors.New("i2c devices are only supported on linux")

// ReadAt is not supported on this platform.
func (e SerialEEPROM) ReadAt(p []byte, off int64) (int, error) {
	if err := checkRange(len(p), off); err != nil {
		return 0, err
	}
	return 0, ErrUnsupportedPlatform
}
