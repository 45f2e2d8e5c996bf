// Package pipeline orchestrates record-file discovery, per-file processing,
// and batch summary reporting.
package pipeline

import (
	"context"
	"fmt"

	"github.com/backmassage/ledgermatch/internal/config"
	"github.com/backmassage/ledgermatch/internal/display"
	"github.com/backmassage/ledgermatch/internal/ledger"
	"github.com/backmassage/ledgermatch/internal/logging"
	"github.com/backmassage/ledgermatch/internal/overlap"
	"github.com/backmassage/ledgermatch/internal/record"
	"github.com/backmassage/ledgermatch/internal/season"
)

// Run is the top-level batch entry point. It loads and freezes the reference
// tables, discovers record files, cross-references each file's records, and
// writes the result document plus aggregate stats. A reference-table fault
// is fatal (the run produces nothing); a bad record file only fails that
// file.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	led, err := ledger.LoadLedger(cfg.LedgerPath)
	if err != nil {
		log.Error("Ledger load failed: %v", err)
		return stats
	}
	aliases, err := ledger.LoadAliases(cfg.AliasPath)
	if err != nil {
		log.Error("Alias load failed: %v", err)
		return stats
	}

	files, err := Discover(cfg.RecordsDir)
	if err != nil {
		log.Error("Record discovery failed: %v", err)
		return stats
	}
	stats.Files = len(files)

	logBatchHeader(cfg, log, led, aliases, &stats)

	matcher := overlap.NewMatcher(led, aliases, cfg, log)
	var results []overlap.PersonResult

	for i, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		log.Info("[%d/%d] %s", i+1, stats.Files, path)
		processFile(cfg, log, matcher, path, &stats, &results)
	}

	if err := WriteResults(cfg.OutputPath, cfg.AsOfYear, results); err != nil {
		log.Error("%v", err)
		return stats
	}

	logDiagnostics(log, matcher.Diagnostics())
	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one record file: load -> validate -> cross-reference.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	matcher *overlap.Matcher,
	path string,
	stats *RunStats,
	results *[]overlap.PersonResult,
) {
	records, err := record.LoadFile(path)
	if err != nil {
		log.Error("Cannot load record file: %v", err)
		stats.Failed++
		fmt.Println()
		return
	}
	stats.Records += len(records)

	// Validate first; records with schema errors are skipped so one bad
	// document never suppresses matches elsewhere in the same file.
	valid := records[:0:0]
	for i := range records {
		errs, warns := record.Validate(&records[i])
		for _, w := range warns {
			log.Debug(cfg.Verbose, "  %s: %s", records[i].Name, w)
		}
		if len(errs) > 0 {
			for _, e := range errs {
				log.Warn("  skipping %q: %s", records[i].Name, e)
			}
			stats.Skipped++
			continue
		}
		valid = append(valid, records[i])
	}

	for i, res := range matcher.CrossReference(valid) {
		stats.Processed++
		if res.HasOverlap {
			stats.WithOverlap++
			stats.Overlaps += res.OverlapCount
			log.Success("  %s: %s", res.Name, display.FormatOverlapSummary(res.Overlaps))
		} else {
			log.Debug(cfg.Verbose, "  %s: no overlap; history: %s",
				res.Name, display.FormatCareerHistory(valid[i].CareerHistory, cfg.SeasonFloor))
		}
		*results = append(*results, res)
	}
	fmt.Println()
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, led *ledger.Ledger, aliases *ledger.AliasTable, stats *RunStats) {
	log.Info("Ledger: %d organizations (%s)", led.Len(), cfg.LedgerPath)
	log.Info("Aliases: %d entries (%s)", aliases.Len(), cfg.AliasPath)
	log.Info("Found %d record files", stats.Files)
	log.Info("As-of year: %d", cfg.AsOfYear)

	if cfg.DisableFuzzy {
		log.Info("Matching: exact and alias only (approximate matching disabled)")
	} else {
		log.Info("Matching: alias > canonical > approximate (%s, threshold %.2f)",
			cfg.Similarity, cfg.FuzzyThreshold)
	}
	if cfg.SeasonFloor > 0 {
		log.Info("Season floor: ignoring seasons before %d", cfg.SeasonFloor)
	}
	fmt.Println()
}

// logDiagnostics echoes the audit channel at the end of the run so fuzzy
// pairings and parse failures are reviewable in one place.
func logDiagnostics(log *logging.Logger, diag *overlap.Diagnostics) {
	if len(diag.FuzzyUses) > 0 {
		log.Fuzzy("%d approximate matches used this run:", len(diag.FuzzyUses))
		for _, f := range diag.FuzzyUses {
			log.Fuzzy("  %q -> %q (score %.3f)", f.Raw, f.Canonical, f.Score)
		}
	}
	if len(diag.ParseFailures) > 0 {
		log.Warn("%d year ranges could not be (fully) parsed:", len(diag.ParseFailures))
		for _, p := range diag.ParseFailures {
			if p.Kind == season.KindFutureYear {
				log.Warn("  %s at %q: %q (%s, clamped)", p.Person, p.Organization, p.RangeText, p.Kind)
			} else {
				log.Warn("  %s at %q: %q (%s, stint skipped)", p.Person, p.Organization, p.RangeText, p.Kind)
			}
		}
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d records processed, %d skipped, %d files failed", stats.Processed, stats.Skipped, stats.Failed)
	log.Info("Summary report:")
	log.Info("  Persons with overlap: %d of %d", stats.WithOverlap, stats.Processed)
	log.Info("  Total overlap matches: %d", stats.Overlaps)
	log.Success("  Results written to %s", cfg.OutputPath)
}
