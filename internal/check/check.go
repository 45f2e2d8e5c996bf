// Package check provides data-file diagnostics (--check mode): it loads the
// ledger, alias table, and record files, and reports integrity and coverage
// findings without running the cross-reference.
package check

import (
	"errors"
	"sort"

	"github.com/backmassage/ledgermatch/internal/config"
	"github.com/backmassage/ledgermatch/internal/ledger"
	"github.com/backmassage/ledgermatch/internal/normalize"
	"github.com/backmassage/ledgermatch/internal/pipeline"
	"github.com/backmassage/ledgermatch/internal/record"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the --check flow: ledger and alias integrity, alias coverage
// of ledger keys, and (when a records directory was given) record schema and
// name-resolution findings. This is informational only; it reports problems
// but does not stop on them.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== Data Check ===")

	led := checkLedger(cfg, log)
	aliases := checkAliases(cfg, log)
	if led != nil && aliases != nil {
		checkCoverage(led, aliases, log)
		if cfg.RecordsDir != "" {
			checkRecords(cfg, led, aliases, log)
		}
	}
}

// checkLedger loads the ledger and reports its size and year span.
func checkLedger(cfg *config.Config, log Logger) *ledger.Ledger {
	led, err := ledger.LoadLedger(cfg.LedgerPath)
	if err != nil {
		log.Error("Ledger: %v", err)
		return nil
	}

	total := 0
	for _, canonical := range led.Canonicals() {
		total += len(led.Years(canonical))
	}
	log.Success("Ledger: %d organizations, %d partnership years (%s)", led.Len(), total, cfg.LedgerPath)
	return led
}

// checkAliases loads the alias table, surfacing collisions prominently.
func checkAliases(cfg *config.Config, log Logger) *ledger.AliasTable {
	aliases, err := ledger.LoadAliases(cfg.AliasPath)
	if err != nil {
		var collision *ledger.AliasCollisionError
		if errors.As(err, &collision) {
			log.Error("Aliases: collision: %v", collision)
		} else {
			log.Error("Aliases: %v", err)
		}
		return nil
	}
	log.Success("Aliases: %d entries (%s)", aliases.Len(), cfg.AliasPath)
	return aliases
}

// checkCoverage reports ledger keys no alias points at. Those organizations
// only match on their exact canonical spelling, which is usually an
// oversight in the alias file.
func checkCoverage(led *ledger.Ledger, aliases *ledger.AliasTable, log Logger) {
	var uncovered []string
	for _, canonical := range led.Canonicals() {
		if !aliases.HasCanonical(canonical) {
			uncovered = append(uncovered, canonical)
		}
	}
	if len(uncovered) == 0 {
		log.Success("Coverage: every ledger organization has at least one alias")
		return
	}
	sort.Strings(uncovered)
	log.Warn("Coverage: %d ledger organizations have no alias:", len(uncovered))
	for _, name := range uncovered {
		log.Warn("  %s", name)
	}
}

// checkRecords loads every record file, validates schemas, and lists
// organizations that resolve nowhere (excluding pro-league employers, which
// are expected misses).
func checkRecords(cfg *config.Config, led *ledger.Ledger, aliases *ledger.AliasTable, log Logger) {
	files, err := pipeline.Discover(cfg.RecordsDir)
	if err != nil {
		log.Error("Records: %v", err)
		return
	}
	log.Info("Records: %d files in %s", len(files), cfg.RecordsDir)

	norm := normalize.NewNormalizer(led, aliases, cfg)
	unresolved := make(map[string]bool)
	invalid := 0

	for _, path := range files {
		records, err := record.LoadFile(path)
		if err != nil {
			log.Error("  %v", err)
			invalid++
			continue
		}
		for i := range records {
			errs, _ := record.Validate(&records[i])
			for _, e := range errs {
				log.Warn("  %s: %s: %s", path, records[i].Name, e)
			}
			if len(errs) > 0 {
				invalid++
			}
			for _, stint := range records[i].CareerHistory {
				res := norm.Resolve(stint.Organization)
				if res.Kind == normalize.MatchNone && res.Reason == normalize.ReasonNoMatch {
					unresolved[ledger.CleanName(stint.Organization)] = true
				}
			}
		}
	}

	if invalid > 0 {
		log.Warn("Records: %d with schema problems", invalid)
	} else {
		log.Success("Records: all files pass schema validation")
	}

	if len(unresolved) > 0 {
		names := make([]string, 0, len(unresolved))
		for name := range unresolved {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Warn("Unresolved organizations (no alias, no canonical, no approximate match):")
		for _, name := range names {
			log.Warn("  %s", name)
		}
	}
}
