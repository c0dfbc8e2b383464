package ar5416

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is returned for enumeration values without a display name.
var ErrUnknownValue = errors.New("unknown value")

// DeviceType is the bus type of the device, stored in the low 3 bits of
// the base header device type field.
type DeviceType uint8

// Device types.
const (
	DeviceUnknown DeviceType = iota
	DeviceCardbus
	DevicePCI
	DeviceMiniPCI
	DeviceAccessPoint
	DevicePCIExpress
	DeviceUnknown6
	DeviceUnknown7
)

var deviceTypeNames = map[DeviceType]string{
	DeviceUnknown:     "UNKNOWN [0]",
	DeviceCardbus:     "Cardbus",
	DevicePCI:         "PCI",
	DeviceMiniPCI:     "MiniPCI",
	DeviceAccessPoint: "Access Point",
	DevicePCIExpress:  "PCIExpress",
	DeviceUnknown6:    "UNKNOWN [6]",
	DeviceUnknown7:    "UNKNOWN [7]",
}

// DeviceTypeOf returns the device type encoded in a device type field.
func DeviceTypeOf(field uint8) DeviceType {
	return DeviceType(field & 0x7)
}

// Name returns the display name of the device type.
func (d DeviceType) Name() (string, error) {
	return lookupName(deviceTypeNames, d)
}

func (d DeviceType) String() string {
	return stringOf(deviceTypeNames, d)
}

// CtlMode is the band and mode a conformance test limit applies to,
// stored in the low nibble of a CTL index.
type CtlMode uint8

// CTL modes.
const (
	Ctl11A    CtlMode = 0
	Ctl11B    CtlMode = 1
	Ctl11G    CtlMode = 2
	CtlTurbo  CtlMode = 3
	Ctl108G   CtlMode = 4
	Ctl2GHT20 CtlMode = 5
	Ctl5GHT20 CtlMode = 6
	Ctl2GHT40 CtlMode = 7
	Ctl5GHT40 CtlMode = 8
)

var ctlModeNames = map[CtlMode]string{
	Ctl11A:    "5GHz OFDM",
	Ctl11B:    "2GHz CCK",
	Ctl11G:    "2GHz OFDM",
	CtlTurbo:  "5GHz Turbo",
	Ctl108G:   "2GHz Turbo",
	Ctl2GHT20: "2GHz HT20",
	Ctl5GHT20: "5GHz HT20",
	Ctl2GHT40: "2GHz HT40",
	Ctl5GHT40: "5GHz HT40",
}

// Name returns the display name of the CTL mode.
func (m CtlMode) Name() (string, error) {
	return lookupName(ctlModeNames, m)
}

func (m CtlMode) String() string {
	return stringOf(ctlModeNames, m)
}

// Is2G returns whether the mode applies to the 2GHz band.
func (m CtlMode) Is2G() bool {
	switch m {
	case Ctl11B, Ctl11G, Ctl108G, Ctl2GHT20, Ctl2GHT40:
		return true
	default:
		return false
	}
}

// CtlDomain is the regulatory domain of a conformance test limit, stored in
// the high nibble of a CTL index.
type CtlDomain uint8

// CTL domains.
const (
	CtlDomainFCC     CtlDomain = 0x1
	CtlDomainETSI    CtlDomain = 0x3
	CtlDomainMKK     CtlDomain = 0x4
	CtlDomainSDNoCtl CtlDomain = 0xE
	CtlDomainNoCtl   CtlDomain = 0xF
)

var ctlDomainNames = map[CtlDomain]string{
	CtlDomainFCC:     "FCC",
	CtlDomainETSI:    "ETSI",
	CtlDomainMKK:     "MKK",
	CtlDomainSDNoCtl: "SD no ctl",
	CtlDomainNoCtl:   "No ctl",
}

// Name returns the display name of the CTL domain.
func (d CtlDomain) Name() (string, error) {
	return lookupName(ctlDomainNames, d)
}

func (d CtlDomain) String() string {
	return stringOf(ctlDomainNames, d)
}

// SplitCtlIndex returns the domain and mode of a CTL index byte.
func SplitCtlIndex(index uint8) (CtlDomain, CtlMode) {
	return CtlDomain(index >> 4), CtlMode(index & 0xF)
}

// Rate names of the target power tables.
var (
	RatesCCK  = []string{"1L-5L", "5S", "11L", "11S"}
	RatesOFDM = []string{"6-24", "36", "48", "54"}
	RatesHT   = []string{"MCS0/8", "MCS1/9", "MCS2/10", "MCS3/11", "MCS4/12", "MCS5/13", "MCS6/14", "MCS7/15"}
)

func lookupName[T ~uint8](names map[T]string, value T) (string, error) {
	name, ok := names[value]
	if !ok {
		return "", fmt.Errorf("%w %d", ErrUnknownValue, value)
	}
	return name, nil
}

func stringOf[T ~uint8](names map[T]string, value T) string {
	name, err := lookupName(names, value)
	if err != nil {
		return fmt.Sprintf("Unknown (%d)", value)
	}
	return name
}
