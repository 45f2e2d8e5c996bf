// Command ledgermatch is the entrypoint for the partnership overlap
// detection CLI. It parses flags, validates config, and either runs data
// diagnostics (--check) or the cross-reference pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/backmassage/ledgermatch/internal/check"
	"github.com/backmassage/ledgermatch/internal/config"
	"github.com/backmassage/ledgermatch/internal/display"
	"github.com/backmassage/ledgermatch/internal/logging"
	"github.com/backmassage/ledgermatch/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	// 1. Load config from defaults, run-config file, and CLI flags; exit on
	// parse or validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ledgermatch: %v\n", err)
		os.Exit(1)
	}

	// The engine never reads a clock; the current year enters only here, as
	// the default for an unset --as-of.
	if cfg.AsOfYear == 0 {
		cfg.AsOfYear = time.Now().Year()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ledgermatch: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ledgermatch: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	display.PrintBanner()

	// 2. If user asked for data diagnostics, run them and exit successfully.
	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		os.Exit(0)
	}

	if _, err := os.Stat(cfg.RecordsDir); err != nil {
		log.Error("Records directory not found: %s", cfg.RecordsDir)
		os.Exit(1)
	}

	log.Info("=== Ledgermatch v%s ===", version)
	log.Info("Records: %s", cfg.RecordsDir)
	log.Info("Output:  %s", cfg.OutputPath)
	log.Info("")

	// 3. Run the pipeline; SIGINT stops between files.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats := pipeline.Run(ctx, &cfg, log)
	if stats.Failed > 0 {
		os.Exit(1)
	}
}
