package ar9285

import "github.com/retroenv/eepdump/internal/layout"

// Size is the size in bytes of the packed EEPROM structure.
const Size = 376

// Layout is the field table of the packed EEPROM structure. Byte sized
// fields are listed for completeness, the 32-bit fields need their words
// exchanged on byte order normalization.
var Layout = layout.Layout{
	Name: "ar9285",
	Size: Size,
	Fields: []layout.Field{
		// base header
		{Name: "length", Offset: 0, Width: 2},
		{Name: "checksum", Offset: 2, Width: 2},
		{Name: "version", Offset: 4, Width: 2},
		{Name: "opCapFlags", Offset: 6, Width: 1},
		{Name: "eepMisc", Offset: 7, Width: 1},
		{Name: "regDmn", Offset: 8, Width: 2, Count: 2},
		{Name: "macAddr", Offset: 12, Width: 1, Count: 6},
		{Name: "rxMask", Offset: 18, Width: 1},
		{Name: "txMask", Offset: 19, Width: 1},
		{Name: "rfSilent", Offset: 20, Width: 2},
		{Name: "blueToothOptions", Offset: 22, Width: 2},
		{Name: "deviceCap", Offset: 24, Width: 2},
		{Name: "binBuildNumber", Offset: 26, Width: 4},
		{Name: "deviceType", Offset: 30, Width: 1},
		{Name: "txGainType", Offset: 31, Width: 1},

		{Name: "custData", Offset: 32, Width: 1, Count: CustDataSize},

		// modal header
		{Name: "antCtrlChain", Offset: 52, Width: 4, Count: MaxChains},
		{Name: "antCtrlCommon", Offset: 56, Width: 4},
		{Name: "antennaGainCh", Offset: 60, Width: 1, Count: MaxChains},
		{Name: "switchSettling", Offset: 61, Width: 1},
		{Name: "txRxAttenCh", Offset: 62, Width: 1, Count: MaxChains},
		{Name: "rxTxMarginCh", Offset: 63, Width: 1, Count: MaxChains},
		{Name: "adcDesiredSize", Offset: 64, Width: 1},
		{Name: "pgaDesiredSize", Offset: 65, Width: 1},
		{Name: "xlnaGainCh", Offset: 66, Width: 1, Count: MaxChains},
		{Name: "txEndToXpaOff", Offset: 67, Width: 1},
		{Name: "txEndToRxOn", Offset: 68, Width: 1},
		{Name: "txFrameToXpaOn", Offset: 69, Width: 1},
		{Name: "thresh62", Offset: 70, Width: 1},
		{Name: "noiseFloorThreshCh", Offset: 71, Width: 1, Count: MaxChains},
		{Name: "xpdGain", Offset: 72, Width: 1},
		{Name: "xpd", Offset: 73, Width: 1},
		{Name: "iqCalICh", Offset: 74, Width: 1, Count: MaxChains},
		{Name: "iqCalQCh", Offset: 75, Width: 1, Count: MaxChains},
		{Name: "pdGainOverlap", Offset: 76, Width: 1},
		{Name: "ob01", Offset: 77, Width: 1},
		{Name: "db1_01", Offset: 78, Width: 1},
		{Name: "xpaBiasLvl", Offset: 79, Width: 1},
		{Name: "txFrameToDataStart", Offset: 80, Width: 1},
		{Name: "txFrameToPaOn", Offset: 81, Width: 1},
		{Name: "ht40PowerIncForPdadc", Offset: 82, Width: 1},
		{Name: "bswAtten", Offset: 83, Width: 1, Count: MaxChains},
		{Name: "bswMargin", Offset: 84, Width: 1, Count: MaxChains},
		{Name: "swSettleHt40", Offset: 85, Width: 1},
		{Name: "xatten2Db", Offset: 86, Width: 1, Count: MaxChains},
		{Name: "xatten2Margin", Offset: 87, Width: 1, Count: MaxChains},
		{Name: "db2_01", Offset: 88, Width: 1},
		{Name: "modalVersion", Offset: 89, Width: 1},
		{Name: "ob23", Offset: 90, Width: 1},
		{Name: "ob4AntdivCtl1", Offset: 91, Width: 1},
		{Name: "db1_23", Offset: 92, Width: 1},
		{Name: "db1_4AntdivCtl2", Offset: 93, Width: 1},
		{Name: "db2_23", Offset: 94, Width: 1},
		{Name: "db2_4", Offset: 95, Width: 1},
		{Name: "txDiversity", Offset: 96, Width: 1},
		{Name: "flcPwrThresh", Offset: 97, Width: 1},
		{Name: "bbScaleSmrtAntenna", Offset: 98, Width: 1},
		{Name: "futureModal", Offset: 99, Width: 1},
		{Name: "spurChan", Offset: 100, Width: 2, Count: 5, Stride: 4},
		{Name: "spurRangeLow", Offset: 102, Width: 1, Count: 5, Stride: 4},
		{Name: "spurRangeHigh", Offset: 103, Width: 1, Count: 5, Stride: 4},

		// calibration data
		{Name: "calFreqPier2G", Offset: 120, Width: 1, Count: Num2GCalPiers},
		{Name: "calPierData2G", Offset: 123, Width: 1, Count: 60},
		{Name: "calTargetPowerCck", Offset: 183, Width: 1, Count: 15},
		{Name: "calTargetPower2G", Offset: 198, Width: 1, Count: 15},
		{Name: "calTargetPower2GHT20", Offset: 213, Width: 1, Count: 27},
		{Name: "calTargetPower2GHT40", Offset: 240, Width: 1, Count: 27},
		{Name: "ctlIndex", Offset: 267, Width: 1, Count: NumCtls},
		{Name: "ctlData", Offset: 279, Width: 1, Count: 96},
		{Name: "padding", Offset: 375, Width: 1},
	},
}
