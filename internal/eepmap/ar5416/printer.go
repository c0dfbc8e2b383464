package ar5416

import (
	"fmt"
	"io"
	"strings"
)

const margin = "    "

// Printer writes formatted dump output and keeps the first write error,
// later writes are skipped after a failure.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Err returns the first write error.
func (p *Printer) Err() error {
	return p.err
}

// Printf writes a formatted string.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Section writes a boxed section name.
func (p *Printer) Section(name string) {
	line := strings.Repeat("-", len(name)+4)
	p.Printf("\n%s\n| %s |\n%s\n\n", line, name, line)
}

// Subsection writes a subsection name.
func (p *Printer) Subsection(name string) {
	p.Printf("[%s]\n\n", name)
}

// Field writes a base header style name and value line.
func (p *Printer) Field(name, format string, value any) {
	p.Printf("%-30s : "+format+"\n", name, value)
}

// Modal writes a modal header style name and value line.
func (p *Printer) Modal(name, format string, value any) {
	p.Printf("%-23s %-2s"+format+"\n", name, ":", value)
}

// TargetPower is a channel entry of a target power table.
type TargetPower interface {
	Channel() uint8
	Power(rate int) uint8
}

// DumpTargetPower writes a target power table. The table ends at the first
// unused channel entry.
func DumpTargetPower[T TargetPower](p *Printer, powers []T, rates []string, is2G bool) {
	channels := 0
	p.Printf(margin+"%10s, MHz:", "Freq")
	for _, tp := range powers {
		if tp.Channel() == BChanUnused {
			break
		}
		p.Printf("  %4d", Fbin2Freq(int(tp.Channel()), is2G))
		channels++
	}
	p.Printf("\n")

	p.Printf(margin + " ----------")
	for i := 0; i < channels; i++ {
		p.Printf("  ----")
	}
	p.Printf("\n")

	for rate, name := range rates {
		p.Printf(margin+"%10s, dBm:", name)
		for _, tp := range powers[:channels] {
			p.Printf("  %4.1f", float64(tp.Power(rate))/2)
		}
		p.Printf("\n")
	}
	p.Printf("\n")
}

// DumpCtl writes the conformance test limit tables. data is indexed by
// CTL, chain and band edge. The tables end at the first zero index.
func DumpCtl(p *Printer, index []uint8, data [][][]CalCtlEdges) {
	for i, ctl := range index {
		if ctl == 0 || i >= len(data) {
			break
		}

		domain, mode := SplitCtlIndex(ctl)
		p.Printf(margin+"%s: %s:\n", domain, mode)

		for chain, edges := range data[i] {
			p.Printf(margin+margin+"chain %d:\n", chain)
			dumpCtlEdges(p, edges, mode.Is2G())
		}
		p.Printf("\n")
	}
}

func dumpCtlEdges(p *Printer, edges []CalCtlEdges, is2G bool) {
	used := edges
	for i, edge := range edges {
		if edge.BChannel == BChanUnused {
			used = edges[:i]
			break
		}
	}

	p.Printf(margin+margin+"%10s:", "Edges, MHz")
	for _, edge := range used {
		p.Printf("  %4d", Fbin2Freq(int(edge.BChannel), is2G))
	}
	p.Printf("\n")

	p.Printf(margin+margin+"%10s:", "MaxTxPower, dBm")
	for _, edge := range used {
		p.Printf("  %4.1f", float64(edge.Power())/2)
	}
	p.Printf("\n")

	p.Printf(margin+margin+"%10s:", "Flags")
	for _, edge := range used {
		p.Printf("  0x%02X", edge.Flags())
	}
	p.Printf("\n")
}
