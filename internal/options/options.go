// Package options contains the program options.
package options

import "strings"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists all supported output formats.
var Formats = []string{FormatText, FormatYAML, FormatJSON}

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input EEPROM dump file"`
	Output string `flag:"o" usage:"output file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.bin)"`
	Device string `flag:"d" usage:"read a serial EEPROM on an i2c bus given as bus:address"`
}

// Flags contains behavior options.
type Flags struct {
	Chip   string `flag:"c" usage:"chip model of the EEPROM map (default: auto-detect)"`
	Format string `flag:"f" usage:"output format: text, yaml, json" default:"text"`
	List   bool   `flag:"l" usage:"list supported chip models"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// DumpFlags selects the sections of the text output.
type DumpFlags struct {
	BaseHeader  bool `flag:"b" usage:"dump the base header"`
	ModalHeader bool `flag:"m" usage:"dump the modal header"`
	PowerInfo   bool `flag:"p" usage:"dump the power info"`
	All         bool `flag:"a" usage:"dump all sections"`
}

// Program options of the EEPROM dumper.
type Program struct {
	Parameters
	Flags
	DumpFlags
}

// Sections returns the dump flags with every section enabled when all
// sections or no section at all were requested.
func (d DumpFlags) Sections() DumpFlags {
	if d.All || (!d.BaseHeader && !d.ModalHeader && !d.PowerInfo) {
		return DumpFlags{BaseHeader: true, ModalHeader: true, PowerInfo: true, All: true}
	}
	return d
}

// Extension returns the output file extension of a format.
func Extension(format string) string {
	switch strings.ToLower(format) {
	case FormatYAML:
		return ".yaml"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}
