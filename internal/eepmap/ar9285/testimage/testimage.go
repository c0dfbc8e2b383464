// Package testimage builds AR9285 EEPROM device dumps for tests.
package testimage

import (
	"bytes"
	"encoding/binary"

	"github.com/retroenv/eepdump/internal/eepmap/ar5416"
	"github.com/retroenv/eepdump/internal/eepmap/ar9285"
	"github.com/retroenv/eepdump/internal/layout"
)

// Sample returns a populated EEPROM structure with an accepted version.
func Sample() ar9285.EEPROM {
	var eep ar9285.EEPROM

	base := &eep.BaseEepHeader
	base.Length = ar9285.Size
	base.Version = 0xE003
	base.OpCapFlags = ar5416.OpFlags11G | ar5416.OpFlagsN2GHT40
	base.RegDmn = [2]uint16{0x0060, 0x001F}
	base.MacAddr = [6]uint8{0x00, 0x03, 0x7F, 0x11, 0x22, 0x33}
	base.RxMask = 0x1
	base.TxMask = 0x1
	base.RFSilent = 0x0005
	base.DeviceCap = 0x0102
	base.BinBuildNumber = 0x0E030100
	base.DeviceType = 5
	copy(eep.CustData[:], "eepdump sample data")

	m := &eep.ModalHeader
	m.AntCtrlChain = [1]uint32{0x00000110}
	m.AntCtrlCommon = 0x00000910
	m.SwitchSettling = 44
	m.TxRxAttenCh = [1]uint8{35}
	m.RxTxMarginCh = [1]uint8{10}
	m.AdcDesiredSize = 0xE2
	m.PgaDesiredSize = 0xF0
	m.TxEndToRxOn = 2
	m.TxFrameToXpaOn = 14
	m.Thresh62 = 28
	m.NoiseFloorThreshCh = [1]uint8{0xC4}
	m.XpdGain = 2
	m.Ob01 = 0x21
	m.Db1x01 = 0x43
	m.Db2x01 = 0x65
	m.Version = 3
	m.Ob23 = 0x87
	m.Ob4Antdiv1 = 0x19
	m.Db1x23 = 0xBA
	m.Db1x4Antdiv2 = 0x2C
	m.Db2x23 = 0xED
	m.Db2x4 = 0x0F
	for i := range m.SpurChans {
		m.SpurChans[i].SpurChan = 0x8000
	}

	piers := []int{2412, 2437, 2472}
	for i, freq := range piers {
		eep.CalFreqPier2G[i] = uint8(ar5416.Freq2Fbin(freq, true))
		data := &eep.CalPierData2G[0][i]
		for gain := range data.PwrPdg {
			for icept := range data.PwrPdg[gain] {
				data.PwrPdg[gain][icept] = uint8(10*gain + icept)
				data.VpdPdg[gain][icept] = uint8(100 + 10*gain + icept)
			}
		}
	}

	eep.CalTargetPowerCck = [3]ar5416.CalTargetPowerLeg{
		{BChannel: 112, TPow2x: [4]uint8{36, 36, 34, 34}},
		{BChannel: 172, TPow2x: [4]uint8{32, 32, 32, 32}},
		{BChannel: ar5416.BChanUnused},
	}
	eep.CalTargetPower2G = [3]ar5416.CalTargetPowerLeg{
		{BChannel: 112, TPow2x: [4]uint8{34, 32, 30, 28}},
		{BChannel: 137, TPow2x: [4]uint8{34, 32, 30, 28}},
		{BChannel: 172, TPow2x: [4]uint8{32, 30, 28, 26}},
	}
	eep.CalTargetPower2GHT20 = [3]ar5416.CalTargetPowerHT{
		{BChannel: 112, TPow2x: [8]uint8{34, 32, 32, 30, 28, 26, 24, 22}},
		{BChannel: ar5416.BChanUnused},
		{BChannel: ar5416.BChanUnused},
	}
	eep.CalTargetPower2GHT40 = [3]ar5416.CalTargetPowerHT{
		{BChannel: ar5416.BChanUnused},
		{BChannel: ar5416.BChanUnused},
		{BChannel: ar5416.BChanUnused},
	}

	eep.CtlIndex[0] = 0x11
	eep.CtlData[0].CtlEdges[0] = [4]ar5416.CalCtlEdges{
		{BChannel: 112, Ctl: 0x7C},
		{BChannel: 172, Ctl: 0x3C},
		{BChannel: ar5416.BChanUnused},
		{BChannel: ar5416.BChanUnused},
	}

	return eep
}

// Opposite returns the byte order that is not the host byte order.
func Opposite() binary.ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Dump returns a device dump with the magic at word 0 and eep at word
// ar9285.StartLoc, as written by a producer running in the given byte
// order. The checksum field is set to make the fold of the producer's
// words valid.
func Dump(eep ar9285.EEPROM, order binary.ByteOrder) []byte {
	eep.BaseEepHeader.Checksum = 0
	eep.BaseEepHeader.Checksum = uint16(Fold(eep, order) ^ 0xFFFF)

	dump := make([]byte, ar9285.StartLoc*2, ar9285.StartLoc*2+ar9285.Size)
	order.PutUint16(dump, ar5416.Magic)
	return append(dump, Encode(eep, order)...)
}

// Foreign returns the native device dump of eep as written through a word
// interface of the opposite byte order: every word is byte swapped and the
// 32-bit fields are stored high word first. It normalizes to exactly the
// native image.
func Foreign(eep ar9285.EEPROM) []byte {
	dump := Dump(eep, binary.NativeEndian)
	ar9285.Layout.SwapWide(dump[ar9285.StartLoc*2:])
	layout.SwapWords(dump)
	return dump
}

// Encode returns the packed structure in the given byte order.
func Encode(eep ar9285.EEPROM, order binary.ByteOrder) []byte {
	var buf bytes.Buffer
	// writes to a bytes.Buffer of a fixed size structure can not fail
	_ = binary.Write(&buf, order, &eep)
	return buf.Bytes()
}

// Fold returns the XOR fold of the checksum region of the structure encoded
// in the given byte order, read as words of that byte order.
func Fold(eep ar9285.EEPROM, order binary.ByteOrder) uint32 {
	data := Encode(eep, order)
	length := int(eep.BaseEepHeader.Length)
	if length > len(data) {
		length = len(data)
	}

	var sum uint32
	for i := 0; i+1 < length; i += 2 {
		sum ^= uint32(order.Uint16(data[i:]))
	}
	return sum
}
