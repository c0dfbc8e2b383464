// Package export writes decoded EEPROM structures in structured formats.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/retroenv/eepdump/internal/options"
)

// ErrUnsupportedFormat is returned for formats without a structured encoding.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Write encodes v in the given format to w. Field names are taken from the
// json struct tags for both formats.
func Write(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(format) {
	case options.FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case options.FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("%w '%s'", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	return nil
}
