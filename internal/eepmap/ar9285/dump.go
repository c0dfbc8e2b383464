package ar9285

import (
	"fmt"
	"io"

	"github.com/retroenv/eepdump/internal/eepmap"
	"github.com/retroenv/eepdump/internal/eepmap/ar5416"
)

const custDataPerLine = 16

// DumpBaseHeader writes the base header fields and the customer data.
func (a *AR9285) DumpBaseHeader(s *eepmap.Session, w io.Writer) error {
	eep, err := decode(s)
	if err != nil {
		return err
	}
	base := &eep.BaseEepHeader
	p := ar5416.NewPrinter(w)

	p.Section("EEPROM Base Header")

	p.Field("Major Version", "%2d", base.Version>>12)
	p.Field("Minor Version", "%2d", base.MinorVersion())
	p.Field("Checksum", "0x%04X", base.Checksum)
	p.Field("Length", "0x%04X", base.Length)
	p.Field("RegDomain1", "0x%04X", base.RegDmn[0])
	p.Field("RegDomain2", "0x%04X", base.RegDmn[1])
	p.Field("MacAddress", "%s", macAddress(base.MacAddr))
	p.Field("TX Mask", "0x%04X", base.TxMask)
	p.Field("RX Mask", "0x%04X", base.RxMask)
	p.Field("OpFlags(5GHz)", "%d", ar5416.Flag(base.OpCapFlags, ar5416.OpFlags11A))
	p.Field("OpFlags(2GHz)", "%d", ar5416.Flag(base.OpCapFlags, ar5416.OpFlags11G))
	p.Field("OpFlags(Disable 2GHz HT20)", "%d", ar5416.Flag(base.OpCapFlags, ar5416.OpFlagsN2GHT20))
	p.Field("OpFlags(Disable 2GHz HT40)", "%d", ar5416.Flag(base.OpCapFlags, ar5416.OpFlagsN2GHT40))
	p.Field("OpFlags(Disable 5Ghz HT20)", "%d", ar5416.Flag(base.OpCapFlags, ar5416.OpFlagsN5GHT20))
	p.Field("OpFlags(Disable 5Ghz HT40)", "%d", ar5416.Flag(base.OpCapFlags, ar5416.OpFlagsN5GHT40))
	p.Field("Big Endian", "%d", ar5416.Flag(base.EepMisc, ar5416.EepMiscBigEndian))
	p.Field("RF Silent", "%d", ar5416.Flag(base.RFSilent, ar5416.RFSilentEnabled))
	p.Field("RF Silent GPIO", "%d", ar5416.RFSilentGpio(base.RFSilent))
	p.Field("RF Silent Polarity", "%d", ar5416.RFSilentPolarityValue(base.RFSilent))
	p.Field("Cal Bin Major Ver", "%d", (base.BinBuildNumber>>24)&0xFF)
	p.Field("Cal Bin Minor Ver", "%d", (base.BinBuildNumber>>16)&0xFF)
	p.Field("Cal Bin Build", "%d", (base.BinBuildNumber>>8)&0xFF)

	if base.MinorVersion() >= ar5416.EepMinorVer3 {
		p.Field("Device Type", "%s", ar5416.DeviceTypeOf(base.DeviceType))
	}

	p.Printf("\nCustomer Data in hex:\n")
	for i, b := range eep.CustData {
		p.Printf("%02X ", b)
		if i%custDataPerLine == custDataPerLine-1 {
			p.Printf("\n")
		}
	}
	if len(eep.CustData)%custDataPerLine != 0 {
		p.Printf("\n")
	}

	return p.Err()
}

// DumpModalHeader writes the modal header fields.
func (a *AR9285) DumpModalHeader(s *eepmap.Session, w io.Writer) error {
	eep, err := decode(s)
	if err != nil {
		return err
	}
	m := &eep.ModalHeader
	ob := m.OutputBias()
	db1 := m.Driver1Bias()
	db2 := m.Driver2Bias()
	p := ar5416.NewPrinter(w)

	p.Printf("\n")
	p.Section("EEPROM Modal Header")

	p.Modal("Ant Chain 0", "0x%X", m.AntCtrlChain[0])
	p.Modal("Antenna Common", "0x%X", m.AntCtrlCommon)
	p.Modal("Antenna Gain Chain 0", "%d", m.AntennaGainCh[0])
	p.Modal("Switch Settling", "%d", m.SwitchSettling)
	p.Modal("TxRxAttenation Chain 0", "%d", m.TxRxAttenCh[0])
	p.Modal("RxTxMargin Chain 0", "%d", m.RxTxMarginCh[0])
	p.Modal("ADC Desired Size", "%d", m.AdcDesiredSize)
	p.Modal("PGA Desired Size", "%d", m.PgaDesiredSize)
	p.Modal("XLNA Gain Chain 0", "%d", m.XlnaGainCh[0])
	p.Modal("TxEndToXpaOff", "%d", m.TxEndToXpaOff)
	p.Modal("TxEndToRxOn", "%d", m.TxEndToRxOn)
	p.Modal("TxFrameToXpaOn", "%d", m.TxFrameToXpaOn)
	p.Modal("Thresh 62", "%d", m.Thresh62)
	p.Modal("NF Thresh Chain 0", "%d", m.NoiseFloorThreshCh[0])
	p.Modal("XPD Gain", "%d", m.XpdGain)
	p.Modal("XPD", "%d", m.Xpd)
	p.Modal("IQ Cal I Chain 0", "%d", m.IqCalICh[0])
	p.Modal("IQ Cal Q Chain 0", "%d", m.IqCalQCh[0])
	p.Modal("PD Gain Overlap", "%d", m.PdGainOverlap)
	p.Modal("Output Bias CCK", "%d", ob[0])
	p.Modal("Output Bias BPSK", "%d", ob[1])
	p.Modal("Driver 1 Bias CCK", "%d", db1[0])
	p.Modal("Driver 1 Bias BPSK", "%d", db1[1])
	p.Modal("XPA Bias Level", "%d", m.XpaBiasLvl)
	p.Modal("TX Frame to Data Start", "%d", m.TxFrameToDataStart)
	p.Modal("TX Frame to PA On", "%d", m.TxFrameToPaOn)
	p.Modal("HT40PowerIncForPDADC", "%d", m.Ht40PowerIncForPdadc)
	p.Modal("bsw_atten Chain 0", "%d", m.BswAtten[0])
	p.Modal("bsw_margin Chain 0", "%d", m.BswMargin[0])
	p.Modal("Switch Settling [HT40]", "%d", m.SwSettleHt40)
	p.Modal("xatten2DB Chain 0", "%d", m.Xatten2Db[0])
	p.Modal("xatten2margin Chain 0", "%d", m.Xatten2Margin[0])
	p.Modal("Driver 2 Bias CCK", "%d", db2[0])
	p.Modal("Driver 2 Bias BPSK", "%d", db2[1])
	p.Modal("ob_db Version", "%d", m.Version)
	p.Modal("Output Bias QPSK", "%d", ob[2])
	p.Modal("Output Bias 16QAM", "%d", ob[3])
	p.Modal("Output Bias 64QAM", "%d", ob[4])
	p.Modal("Ant diversity ctrl 1", "%d", m.AntdivCtl1())
	p.Modal("Driver 1 Bias QPSK", "%d", db1[2])
	p.Modal("Driver 1 Bias 16QAM", "%d", db1[3])
	p.Modal("Driver 1 Bias 64QAM", "%d", db1[4])
	p.Modal("Ant diversity ctrl 2", "%d", m.AntdivCtl2())
	p.Modal("Driver 2 Bias QPSK", "%d", db2[2])
	p.Modal("Driver 2 Bias 16QAM", "%d", db2[3])
	p.Modal("Driver 2 Bias 64QAM", "%d", db2[4])

	return p.Err()
}

// DumpPowerInfo writes the calibration piers, the power detector gain
// tables, the target power tables and the conformance test limits.
func (a *AR9285) DumpPowerInfo(s *eepmap.Session, w io.Writer) error {
	eep, err := decode(s)
	if err != nil {
		return err
	}
	p := ar5416.NewPrinter(w)

	p.Printf("\n")
	p.Section("EEPROM Power Info")

	p.Subsection("2GHz Calibration Piers")
	piers := 0
	for _, pier := range eep.CalFreqPier2G {
		if pier == ar5416.BChanUnused {
			break
		}
		p.Printf("    Pier %d: %4d MHz\n", piers, ar5416.Fbin2Freq(int(pier), true))
		piers++
	}
	p.Printf("\n")

	p.Subsection("2GHz Power Calibration Data")
	for chain := range eep.CalPierData2G {
		for i, data := range eep.CalPierData2G[chain][:piers] {
			freq := ar5416.Fbin2Freq(int(eep.CalFreqPier2G[i]), true)
			p.Printf("    Chain %d, %d MHz:\n", chain, freq)
			for gain := range data.PwrPdg {
				dumpIntercepts(p, fmt.Sprintf("pdGain %d pwr", gain), data.PwrPdg[gain][:])
				dumpIntercepts(p, fmt.Sprintf("pdGain %d vpd", gain), data.VpdPdg[gain][:])
			}
			p.Printf("\n")
		}
	}

	p.Subsection("2GHz CCK Target Powers")
	ar5416.DumpTargetPower(p, eep.CalTargetPowerCck[:], ar5416.RatesCCK, true)
	p.Subsection("2GHz OFDM Target Powers")
	ar5416.DumpTargetPower(p, eep.CalTargetPower2G[:], ar5416.RatesOFDM, true)
	p.Subsection("2GHz HT20 Target Powers")
	ar5416.DumpTargetPower(p, eep.CalTargetPower2GHT20[:], ar5416.RatesHT, true)
	p.Subsection("2GHz HT40 Target Powers")
	ar5416.DumpTargetPower(p, eep.CalTargetPower2GHT40[:], ar5416.RatesHT, true)

	p.Subsection("CTL data")
	ar5416.DumpCtl(p, eep.CtlIndex[:], ctlEdges(eep))

	return p.Err()
}

func dumpIntercepts(p *ar5416.Printer, name string, values []uint8) {
	p.Printf("        %-14s:", name)
	for _, v := range values {
		p.Printf("  %3d", v)
	}
	p.Printf("\n")
}

// ctlEdges returns the band edges indexed by CTL, chain and edge.
func ctlEdges(eep *EEPROM) [][][]ar5416.CalCtlEdges {
	data := make([][][]ar5416.CalCtlEdges, len(eep.CtlData))
	for i := range eep.CtlData {
		chains := make([][]ar5416.CalCtlEdges, MaxChains)
		for chain := range chains {
			chains[chain] = eep.CtlData[i].CtlEdges[chain][:]
		}
		data[i] = chains
	}
	return data
}

func macAddress(mac [6]uint8) string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", mac[0], mac[1], mac[2], mac[3], mac[4], mac[5])
}
