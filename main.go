// Package main implements the main entry point for the Atheros EEPROM dump decoder
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/eepdump/internal/cli"
	"github.com/retroenv/eepdump/internal/config"
	"github.com/retroenv/eepdump/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	registry, err := config.CreateRegistry()
	if err != nil {
		logger.Fatal("Creating chip registry failed", log.Err(err))
	}

	if opts.List {
		if err := fileprocessor.PrintChips(os.Stdout, registry); err != nil {
			logger.Fatal("Listing chips failed", log.Err(err))
		}
		return
	}

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if err := fileprocessor.ProcessFiles(ctx, logger, registry, opts, files); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Dumping EEPROM failed", log.Err(err))
		os.Exit(1)
	}
}
