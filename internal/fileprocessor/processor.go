// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/retroenv/eepdump/internal/eepmap"
	"github.com/retroenv/eepdump/internal/options"
	"github.com/retroenv/eepdump/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// ErrNoFiles is returned when a batch pattern matches no files.
var ErrNoFiles = errors.New("no files to process")

// ProcessFile handles the complete file processing workflow. The output is
// only written after the dump was processed successfully.
func ProcessFile(ctx context.Context, logger *log.Logger, registry *eepmap.Registry, opts options.Program) error {
	var buf bytes.Buffer
	pipe := pipeline.New(logger, registry)
	if err := pipe.Execute(ctx, opts, &buf); err != nil {
		return err
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	if _, err := buf.WriteTo(writer); err != nil {
		_ = writer.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// ProcessFiles processes all files concurrently, every file in its own
// session. Failures of single files are logged and reported in the
// returned error once all files were processed.
func ProcessFiles(ctx context.Context, logger *log.Logger, registry *eepmap.Registry,
	opts options.Program, files []string) error {

	if len(files) == 0 {
		return ErrNoFiles
	}

	g, ctx := errgroup.WithContext(ctx)
	limit := make(chan struct{}, runtime.NumCPU())
	var failed atomic.Int32

	for _, file := range files {
		fileOpts := opts
		if opts.Device == "" {
			fileOpts.Input = file
		}
		if len(files) > 1 || opts.Batch != "" {
			fileOpts.Output = GenerateOutputFilename(file, opts.Format)
		}

		g.Go(func() error {
			select {
			case limit <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-limit }()

			err := ProcessFile(ctx, logger, registry, fileOpts)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, context.Canceled):
				return err
			default:
				failed.Add(1)
				logger.Error("Dumping EEPROM failed",
					log.String("file", fileOpts.Input),
					log.Err(err))
				return nil
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(files))
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: pattern %s", ErrNoFiles, opts.Batch)
		}
		return matches, nil
	}
	if opts.Input == "" && opts.Device != "" {
		return []string{opts.Device}, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
// and output format.
func GenerateOutputFilename(inputFile, format string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + options.Extension(format)
}

func createWriter(opts options.Program) (io.WriteCloser, error) {
	if opts.Output == "" {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("eepdump", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintChips writes the list of supported chip models.
func PrintChips(w io.Writer, registry *eepmap.Registry) error {
	if _, err := fmt.Fprintln(w, "Supported chip models:"); err != nil {
		return err
	}
	for _, m := range registry.Maps() {
		if _, err := fmt.Fprintf(w, "  %-10s %s\n", m.Name(), m.Description()); err != nil {
			return err
		}
	}
	return nil
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
