//go:build linux

package source

import (
	"github.com/platinasystems/i2c"
)

// ReadAt reads len(p) bytes starting at byte offset off. The address pointer
// of the EEPROM is set once and the bytes are read sequentially.
func (e SerialEEPROM) ReadAt(p []byte, off int64) (int, error) {
	if err := checkRange(len(p), off); err != nil {
		return 0, err
	}

	n := 0
	err := i2c.Do(e.BusIndex, e.BusAddress, func(bus *i2c.Bus) error {
		// high address byte as command, low address byte as data
		var data i2c.SMBusData
		data[0] = uint8(off & 0xff)
		if err := bus.Do(i2c.Write, uint8(off>>8), i2c.ByteData, &data); err != nil {
			return &ReadError{Address: uint32(off / 2), Err: err}
		}

		for ; n < len(p); n++ {
			if err := bus.Do(i2c.Read, 0, i2c.Byte, &data); err != nil {
				return &ReadError{Address: uint32((off + int64(n)) / 2), Err: err}
			}
			p[n] = data[0]
		}
		return nil
	})
	return n, err
}
