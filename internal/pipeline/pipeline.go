// Package pipeline orchestrates the EEPROM dump workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/eepdump/internal/detector"
	"github.com/retroenv/eepdump/internal/eepmap"
	"github.com/retroenv/eepdump/internal/export"
	"github.com/retroenv/eepdump/internal/loader"
	"github.com/retroenv/eepdump/internal/options"
	"github.com/retroenv/eepdump/internal/source"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete dump workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new dump pipeline using the maps of the given registry.
func New(logger *log.Logger, registry *eepmap.Registry) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger, registry),
		loader:   loader.New(),
	}
}

// Execute runs the complete dump pipeline for the input file.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) error {
	src, err := p.loader.Load(opts)
	if err != nil {
		return fmt.Errorf("loading dump: %w", err)
	}

	return p.ExecuteWithSource(ctx, src, opts, writer)
}

// ExecuteWithSource runs the dump pipeline with an already opened source.
func (p *Pipeline) ExecuteWithSource(ctx context.Context, src source.WordReader, opts options.Program, writer io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, session, err := p.detector.Detect(opts, src)
	if err != nil {
		return fmt.Errorf("detecting EEPROM map: %w", err)
	}

	p.printInfo(opts, m, session)

	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.Format == "" || opts.Format == options.FormatText {
		return p.dumpText(m, session, opts.DumpFlags.Sections(), writer)
	}

	v, err := m.Decode(session)
	if err != nil {
		return fmt.Errorf("decoding eeprom: %w", err)
	}
	if err := export.Write(writer, opts.Format, v); err != nil {
		return fmt.Errorf("exporting eeprom: %w", err)
	}
	return nil
}

// dumpText writes the selected text sections.
func (p *Pipeline) dumpText(m eepmap.Map, s *eepmap.Session, sections options.DumpFlags, writer io.Writer) error {
	steps := []struct {
		enabled bool
		name    string
		dump    func(*eepmap.Session, io.Writer) error
	}{
		{sections.BaseHeader, "base header", m.DumpBaseHeader},
		{sections.ModalHeader, "modal header", m.DumpModalHeader},
		{sections.PowerInfo, "power info", m.DumpPowerInfo},
	}

	for _, step := range steps {
		if !step.enabled {
			continue
		}
		if err := step.dump(s, writer); err != nil {
			return fmt.Errorf("dumping %s: %w", step.name, err)
		}
	}
	return nil
}

// printInfo prints information about the dump being processed.
func (p *Pipeline) printInfo(opts options.Program, m eepmap.Map, s *eepmap.Session) {
	if opts.Quiet {
		return
	}

	input := log.String("file", opts.Input)
	if opts.Device != "" {
		input = log.String("device", opts.Device)
	}
	p.logger.Info("Processing EEPROM dump",
		input,
		log.String("chip", m.Name()),
		log.String("map", m.Description()),
	)
	if s.Swapped() {
		p.logger.Warn("EEPROM was written with non native byte order")
	}
}
