// Package detector handles EEPROM map detection.
package detector

import (
	"errors"
	"fmt"

	"github.com/retroenv/eepdump/internal/eepmap"
	"github.com/retroenv/eepdump/internal/options"
	"github.com/retroenv/eepdump/internal/source"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoMatchingChip is returned when no registered map accepts the dump.
var ErrNoMatchingChip = errors.New("no supported chip EEPROM map matches the dump")

// Detector selects the EEPROM map of a dump from options or by trying all
// registered maps.
type Detector struct {
	logger   *log.Logger
	registry *eepmap.Registry
}

// New creates a new EEPROM map detector.
func New(logger *log.Logger, registry *eepmap.Registry) *Detector {
	return &Detector{
		logger:   logger,
		registry: registry,
	}
}

// Detect returns the EEPROM map for the dump together with a validated
// session. If a chip model is specified in the options only that map is
// used, otherwise every registered map is tried on a fresh session and the
// first one that validates is returned.
func (d *Detector) Detect(opts options.Program, src source.WordReader) (eepmap.Map, *eepmap.Session, error) {
	if opts.Chip != "" {
		m, err := d.registry.Lookup(opts.Chip)
		if err != nil {
			return nil, nil, fmt.Errorf("looking up chip: %w", err)
		}
		s, err := d.open(m, src)
		if err != nil {
			return nil, nil, err
		}
		return m, s, nil
	}

	var lastErr error
	for _, m := range d.registry.Maps() {
		s, err := d.open(m, src)
		if err != nil {
			d.logger.Debug("EEPROM map does not match",
				log.String("chip", m.Name()),
				log.Err(err))
			lastErr = err
			continue
		}

		d.logger.Debug("Auto-detected chip",
			log.String("chip", m.Name()),
			log.String("file", opts.Input))
		return m, s, nil
	}

	if lastErr == nil {
		return nil, nil, ErrNoMatchingChip
	}
	return nil, nil, fmt.Errorf("%w: %w", ErrNoMatchingChip, lastErr)
}

// open fills and validates a new session for the map.
func (d *Detector) open(m eepmap.Map, src source.WordReader) (*eepmap.Session, error) {
	s := eepmap.NewSession(d.logger, src)
	if err := m.Fill(s); err != nil {
		return nil, fmt.Errorf("filling eeprom: %w", err)
	}
	if err := m.Validate(s); err != nil {
		return nil, fmt.Errorf("validating eeprom: %w", err)
	}
	return s, nil
}
