package ar9285

import (
	"github.com/retroenv/eepdump/internal/eepmap/ar5416"
)

// AR9285 EEPROM dimensions.
const (
	StartLoc = 64 // word address of the EEPROM structure

	MaxChains            = 1
	NumPdGains           = 2
	Num2GCalPiers        = 3
	Num2GCckTargetPowers = 3
	Num2G20TargetPowers  = 3
	Num2G40TargetPowers  = 3
	NumCtls              = 12
	NumBandEdges         = 4
	CustDataSize         = 20
)

// BaseHeader is the base EEPROM header.
type BaseHeader struct {
	Length           uint16    `json:"length"`
	Checksum         uint16    `json:"checksum"`
	Version          uint16    `json:"version"`
	OpCapFlags       uint8     `json:"opCapFlags"`
	EepMisc          uint8     `json:"eepMisc"`
	RegDmn           [2]uint16 `json:"regDmn"`
	MacAddr          [6]uint8  `json:"macAddr"`
	RxMask           uint8     `json:"rxMask"`
	TxMask           uint8     `json:"txMask"`
	RFSilent         uint16    `json:"rfSilent"`
	BlueToothOptions uint16    `json:"blueToothOptions"`
	DeviceCap        uint16    `json:"deviceCap"`
	BinBuildNumber   uint32    `json:"binBuildNumber"`
	DeviceType       uint8     `json:"deviceType"`
	TxGainType       uint8     `json:"txGainType"`
}

// ModalHeader contains the 2GHz chip tuning values. Several fields pack
// two 4-bit values, the low nibble holding the first one.
type ModalHeader struct {
	AntCtrlChain         [MaxChains]uint32                        `json:"antCtrlChain"`
	AntCtrlCommon        uint32                                   `json:"antCtrlCommon"`
	AntennaGainCh        [MaxChains]uint8                         `json:"antennaGainCh"`
	SwitchSettling       uint8                                    `json:"switchSettling"`
	TxRxAttenCh          [MaxChains]uint8                         `json:"txRxAttenCh"`
	RxTxMarginCh         [MaxChains]uint8                         `json:"rxTxMarginCh"`
	AdcDesiredSize       uint8                                    `json:"adcDesiredSize"`
	PgaDesiredSize       uint8                                    `json:"pgaDesiredSize"`
	XlnaGainCh           [MaxChains]uint8                         `json:"xlnaGainCh"`
	TxEndToXpaOff        uint8                                    `json:"txEndToXpaOff"`
	TxEndToRxOn          uint8                                    `json:"txEndToRxOn"`
	TxFrameToXpaOn       uint8                                    `json:"txFrameToXpaOn"`
	Thresh62             uint8                                    `json:"thresh62"`
	NoiseFloorThreshCh   [MaxChains]uint8                         `json:"noiseFloorThreshCh"`
	XpdGain              uint8                                    `json:"xpdGain"`
	Xpd                  uint8                                    `json:"xpd"`
	IqCalICh             [MaxChains]uint8                         `json:"iqCalICh"`
	IqCalQCh             [MaxChains]uint8                         `json:"iqCalQCh"`
	PdGainOverlap        uint8                                    `json:"pdGainOverlap"`
	Ob01                 uint8                                    `json:"ob01"`
	Db1x01               uint8                                    `json:"db1_01"`
	XpaBiasLvl           uint8                                    `json:"xpaBiasLvl"`
	TxFrameToDataStart   uint8                                    `json:"txFrameToDataStart"`
	TxFrameToPaOn        uint8                                    `json:"txFrameToPaOn"`
	Ht40PowerIncForPdadc uint8                                    `json:"ht40PowerIncForPdadc"`
	BswAtten             [MaxChains]uint8                         `json:"bswAtten"`
	BswMargin            [MaxChains]uint8                         `json:"bswMargin"`
	SwSettleHt40         uint8                                    `json:"swSettleHt40"`
	Xatten2Db            [MaxChains]uint8                         `json:"xatten2Db"`
	Xatten2Margin        [MaxChains]uint8                         `json:"xatten2Margin"`
	Db2x01               uint8                                    `json:"db2_01"`
	Version              uint8                                    `json:"version"`
	Ob23                 uint8                                    `json:"ob23"`
	Ob4Antdiv1           uint8                                    `json:"ob4AntdivCtl1"`
	Db1x23               uint8                                    `json:"db1_23"`
	Db1x4Antdiv2         uint8                                    `json:"db1_4AntdivCtl2"`
	Db2x23               uint8                                    `json:"db2_23"`
	Db2x4                uint8                                    `json:"db2_4"`
	TxDiversity          uint8                                    `json:"txDiversity"`
	FlcPwrThresh         uint8                                    `json:"flcPwrThresh"`
	BbScaleSmrtAntenna   uint8                                    `json:"bbScaleSmrtAntenna"`
	FutureModal          [1]uint8                                 `json:"futureModal"`
	SpurChans            [ar5416.EepromModalSpurs]ar5416.SpurChan `json:"spurChans"`
}

// CalDataPerFreq contains the power detector calibration of one pier.
type CalDataPerFreq struct {
	PwrPdg [NumPdGains][ar5416.PdGainIcepts]uint8 `json:"pwrPdg"`
	VpdPdg [NumPdGains][ar5416.PdGainIcepts]uint8 `json:"vpdPdg"`
}

// CalCtlData contains the band edges of one conformance test limit.
type CalCtlData struct {
	CtlEdges [MaxChains][NumBandEdges]ar5416.CalCtlEdges `json:"ctlEdges"`
}

// EEPROM is the packed AR9285 EEPROM structure.
type EEPROM struct {
	BaseEepHeader        BaseHeader                                     `json:"baseEepHeader"`
	CustData             [CustDataSize]uint8                            `json:"custData"`
	ModalHeader          ModalHeader                                    `json:"modalHeader"`
	CalFreqPier2G        [Num2GCalPiers]uint8                           `json:"calFreqPier2G"`
	CalPierData2G        [MaxChains][Num2GCalPiers]CalDataPerFreq       `json:"calPierData2G"`
	CalTargetPowerCck    [Num2GCckTargetPowers]ar5416.CalTargetPowerLeg `json:"calTargetPowerCck"`
	CalTargetPower2G     [Num2G20TargetPowers]ar5416.CalTargetPowerLeg  `json:"calTargetPower2G"`
	CalTargetPower2GHT20 [Num2G20TargetPowers]ar5416.CalTargetPowerHT   `json:"calTargetPower2GHT20"`
	CalTargetPower2GHT40 [Num2G40TargetPowers]ar5416.CalTargetPowerHT   `json:"calTargetPower2GHT40"`
	CtlIndex             [NumCtls]uint8                                 `json:"ctlIndex"`
	CtlData              [NumCtls]CalCtlData                            `json:"ctlData"`
	Padding              uint8                                          `json:"padding"`
}

// MajorVersion returns the major EEPROM version.
func (b BaseHeader) MajorVersion() uint16 {
	return (b.Version >> 12) & 0xF
}

// MinorVersion returns the minor EEPROM version.
func (b BaseHeader) MinorVersion() uint16 {
	return b.Version & 0xFFF
}

// OutputBias returns the 5 output bias values ob_0 to ob_4.
func (m ModalHeader) OutputBias() [5]uint8 {
	return [5]uint8{low(m.Ob01), high(m.Ob01), low(m.Ob23), high(m.Ob23), low(m.Ob4Antdiv1)}
}

// Driver1Bias returns the 5 driver 1 bias values db1_0 to db1_4.
func (m ModalHeader) Driver1Bias() [5]uint8 {
	return [5]uint8{low(m.Db1x01), high(m.Db1x01), low(m.Db1x23), high(m.Db1x23), low(m.Db1x4Antdiv2)}
}

// Driver2Bias returns the 5 driver 2 bias values db2_0 to db2_4.
func (m ModalHeader) Driver2Bias() [5]uint8 {
	return [5]uint8{low(m.Db2x01), high(m.Db2x01), low(m.Db2x23), high(m.Db2x23), low(m.Db2x4)}
}

// AntdivCtl1 returns the first antenna diversity control value.
func (m ModalHeader) AntdivCtl1() uint8 {
	return high(m.Ob4Antdiv1)
}

// AntdivCtl2 returns the second antenna diversity control value.
func (m ModalHeader) AntdivCtl2() uint8 {
	return high(m.Db1x4Antdiv2)
}

func low(v uint8) uint8  { return v & 0xF }
func high(v uint8) uint8 { return v >> 4 }
