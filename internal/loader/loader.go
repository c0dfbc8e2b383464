// Package loader handles EEPROM dump file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/eepdump/internal/options"
	"github.com/retroenv/eepdump/internal/source"
)

// ErrEmptyDump is returned for dumps that do not contain a single word.
var ErrEmptyDump = errors.New("EEPROM dump contains no data")

// Loader handles loading EEPROM dump files from disk.
type Loader struct{}

// New creates a new EEPROM dump loader.
func New() *Loader {
	return &Loader{}
}

// DeviceReadSize is the number of bytes read from a serial EEPROM device,
// enough for the EEPROM maps of all supported chips.
const DeviceReadSize = 1024

// Load reads the dump file named by the input option, or the serial EEPROM
// device if one is given. The dump covers the EEPROM word space starting at
// word address 0.
func (l *Loader) Load(opts options.Program) (*source.Buffer, error) {
	if opts.Device != "" {
		dev, err := source.ParseDevice(opts.Device)
		if err != nil {
			return nil, err
		}
		return l.LoadFromReaderAt(dev, DeviceReadSize)
	}

	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromReaderAt reads size bytes starting at offset 0 of the reader.
func (l *Loader) LoadFromReaderAt(r io.ReaderAt, size int64) (*source.Buffer, error) {
	data := make([]byte, size)
	n, err := r.ReadAt(data, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading device %v: %w", r, err)
	}
	return l.LoadFromBytes(data[:n])
}

// LoadFromBytes returns a source for an in memory dump.
func (l *Loader) LoadFromBytes(data []byte) (*source.Buffer, error) {
	if len(data) < 2 {
		return nil, ErrEmptyDump
	}
	return source.NewBuffer(data), nil
}
