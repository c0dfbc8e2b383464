// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/eepdump/internal/eepmap"
	"github.com/retroenv/eepdump/internal/eepmap/ar9285"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateRegistry creates the registry of all supported EEPROM maps.
// The field table of every map is checked before it is registered.
func CreateRegistry() (*eepmap.Registry, error) {
	maps := []struct {
		m     eepmap.Map
		check func() error
	}{
		{ar9285.New(), ar9285.Layout.Check},
	}

	registry, err := eepmap.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("creating registry: %w", err)
	}
	for _, entry := range maps {
		if err := entry.check(); err != nil {
			return nil, fmt.Errorf("checking layout of chip %s: %w", entry.m.Name(), err)
		}
		if err := registry.Register(entry.m); err != nil {
			return nil, fmt.Errorf("registering chip %s: %w", entry.m.Name(), err)
		}
	}
	return registry, nil
}
