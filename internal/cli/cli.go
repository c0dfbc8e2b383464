// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/eepdump/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	readDumpFlags(flags, &opts.DumpFlags)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil {
		return opts, &UsageError{flags: flags}
	}
	if opts.List {
		return opts, nil
	}
	if len(args) == 0 && opts.Input == "" && opts.Batch == "" && opts.Device == "" {
		return opts, &UsageError{flags: flags}
	}
	if opts.Device != "" && (opts.Batch != "" || opts.Input != "" || len(args) > 0) {
		return opts, errors.New("a device can not be combined with input files")
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Batch == "" && opts.Input == "" && opts.Device == "" {
		opts.Input = args[0]
	}
	opts.DumpFlags = opts.DumpFlags.Sections()

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: eepdump [options] <EEPROM dump file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after EEPROM dump file, please pass the file to dump as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Chip = strings.ToLower(strings.TrimSpace(opts.Chip))
	// accept the model with its vendor prefix, for example ar9285
	opts.Chip = strings.TrimPrefix(opts.Chip, "ar")

	opts.Format = strings.ToLower(opts.Format)
	for _, valid := range options.Formats {
		if opts.Format == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported output format: %s. Valid options: %s",
		opts.Format, strings.Join(options.Formats, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input EEPROM dump file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically output file naming, for example *.bin")
	flags.StringVar(&opts.Device, "d", "", "read a serial EEPROM on an i2c bus instead of a file, given as bus:address, for example 0:0x50")
	flags.StringVar(&opts.Chip, "c", "", "chip model of the EEPROM map to use, auto-detected if not given")
	flags.StringVar(&opts.Format, "f", options.FormatText, "output format (text/yaml/json)")
	flags.BoolVar(&opts.List, "l", false, "list the supported chip models")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readDumpFlags(flags *flag.FlagSet, opts *options.DumpFlags) {
	flags.BoolVar(&opts.BaseHeader, "b", false, "dump the EEPROM base header")
	flags.BoolVar(&opts.ModalHeader, "m", false, "dump the EEPROM modal header")
	flags.BoolVar(&opts.PowerInfo, "p", false, "dump the EEPROM power info")
	flags.BoolVar(&opts.All, "a", false, "dump all EEPROM sections, default if no section is selected")
}
