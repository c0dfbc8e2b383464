// Package ar5416 contains the definitions shared by the EEPROM maps of the
// AR5416 family of chips.
package ar5416

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Magic is the EEPROM magic as seen by this host. The image stores the
// bytes 5A A5, the resulting word value depends on the host byte order.
var Magic = binary.NativeEndian.Uint16([]byte{0x5A, 0xA5})

// EEPROM layout constants.
const (
	MagicOffset  = 0x0 // word address of the magic
	EepNoBackVer = 0x1 // lowest accepted minor version
	EepVer       = 0xE // required major version
	EepMinorVer3 = 0x3

	EepromModalSpurs = 5
	NumPdGains       = 4
	PdGainIcepts     = 5
	BChanUnused      = 0xFF

	NumTargetPowerRatesLeg = 4
	NumTargetPowerRatesHT  = 8
)

// Operating capability flags.
const (
	OpFlags11A       = 0x01
	OpFlags11G       = 0x02
	OpFlagsN5GHT40   = 0x04
	OpFlagsN2GHT40   = 0x08
	OpFlagsN5GHT20   = 0x10
	OpFlagsN2GHT20   = 0x20
	EepMiscBigEndian = 0x01
)

// RF silent configuration bits.
const (
	RFSilentEnabled   = 0x0001
	RFSilentPolarity  = 0x0002
	RFSilentPolarityS = 1
	RFSilentGpioSel   = 0x001C
	RFSilentGpioSelS  = 2
)

// SpurChan is an entry of the modal header spur channel table.
type SpurChan struct {
	SpurChan      uint16 `json:"spurChan"`
	SpurRangeLow  uint8  `json:"spurRangeLow"`
	SpurRangeHigh uint8  `json:"spurRangeHigh"`
}

// CalCtlEdges is a conformance test limit band edge.
type CalCtlEdges struct {
	BChannel uint8 `json:"bChannel"`
	Ctl      uint8 `json:"ctl"`
}

// Power returns the edge power in half dBm.
func (e CalCtlEdges) Power() uint8 {
	return e.Ctl & 0x3F
}

// Flags returns the edge flags.
func (e CalCtlEdges) Flags() uint8 {
	return (e.Ctl & 0xC0) >> 6
}

// CalTargetPowerLeg contains the legacy rate target powers of a channel.
type CalTargetPowerLeg struct {
	BChannel uint8                        `json:"bChannel"`
	TPow2x   [NumTargetPowerRatesLeg]uint8 `json:"tPow2x"`
}

// Channel returns the binned channel.
func (c CalTargetPowerLeg) Channel() uint8 { return c.BChannel }

// Power returns the target power of a rate in half dBm.
func (c CalTargetPowerLeg) Power(rate int) uint8 { return c.TPow2x[rate] }

// CalTargetPowerHT contains the HT rate target powers of a channel.
type CalTargetPowerHT struct {
	BChannel uint8                       `json:"bChannel"`
	TPow2x   [NumTargetPowerRatesHT]uint8 `json:"tPow2x"`
}

// Channel returns the binned channel.
func (c CalTargetPowerHT) Channel() uint8 { return c.BChannel }

// Power returns the target power of a rate in half dBm.
func (c CalTargetPowerHT) Power(rate int) uint8 { return c.TPow2x[rate] }

// Freq2Fbin converts a frequency in MHz to its binned channel value.
func Freq2Fbin(freq int, is2G bool) int {
	if is2G {
		return freq - 2300
	}
	return (freq - 4800) / 5
}

// Fbin2Freq converts a binned channel value to its frequency in MHz.
func Fbin2Freq(bin int, is2G bool) int {
	if is2G {
		return bin + 2300
	}
	return bin*5 + 4800
}

// Flag returns 1 if any bit of flag is set in value, 0 otherwise.
func Flag[T constraints.Unsigned](value, flag T) int {
	if value&flag != 0 {
		return 1
	}
	return 0
}

// RFSilentGpio returns the GPIO selected for RF silent.
func RFSilentGpio(rfSilent uint16) uint16 {
	return (rfSilent & RFSilentGpioSel) >> RFSilentGpioSelS
}

// RFSilentPolarityValue returns the RF silent GPIO polarity.
func RFSilentPolarityValue(rfSilent uint16) uint16 {
	return (rfSilent & RFSilentPolarity) >> RFSilentPolarityS
}
