// Package config holds runtime configuration: defaults, an optional YAML
// run-config file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// SimilarityMetric selects the string-similarity algorithm used by the
// approximate name-matching step. The algorithm is a tunable policy, not a
// fixed law, so it is exposed here rather than hard-coded.
type SimilarityMetric string

const (
	SimilaritySorensenDice SimilarityMetric = "sorensen-dice" // Bigram Sorensen-Dice coefficient (default).
	SimilarityLevenshtein  SimilarityMetric = "levenshtein"   // Normalized Levenshtein edit distance.
	SimilarityJaroWinkler  SimilarityMetric = "jaro-winkler"  // Jaro-Winkler with prefix boost.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a YAML run-config file, and then mutated by
// [ParseFlags] before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths (records dir and results file are positional args).
	RecordsDir string // Directory of career-record files.
	OutputPath string // Results JSON file.
	LedgerPath string // Default: "data/ledger.yaml".
	AliasPath  string // Default: "data/aliases.yaml".
	ConfigFile string // Optional YAML run-config file.

	// Matching policy.
	AsOfYear       int              // Expansion bound for "present" ranges. 0 means the caller must fill it in.
	FuzzyThreshold float64          // Default: 0.90. Minimum similarity for an approximate match.
	Similarity     SimilarityMetric // Default: "sorensen-dice".
	DisableFuzzy   bool             // Exact and alias matching only.
	SeasonFloor    int              // Ignore seasons before this calendar year. 0 disables the filter.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check data diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the run-config file and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		LedgerPath:     "data/ledger.yaml",
		AliasPath:      "data/aliases.yaml",
		FuzzyThreshold: 0.90,
		Similarity:     SimilaritySorensenDice,
		DisableFuzzy:   false,
		SeasonFloor:    0,
		Verbose:        false,
		ColorMode:      ColorAuto,
		CheckOnly:      false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields and numeric policy fields hold valid
// values. When not in CheckOnly mode, it also requires the records directory
// and output path.
func (c *Config) Validate() error {
	switch c.Similarity {
	case SimilaritySorensenDice, SimilarityLevenshtein, SimilarityJaroWinkler:
		// valid
	default:
		return errors.New("invalid similarity metric (use 'sorensen-dice', 'levenshtein' or 'jaro-winkler')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.FuzzyThreshold <= 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("invalid fuzzy threshold %.2f (must be in (0, 1])", c.FuzzyThreshold)
	}

	if c.AsOfYear != 0 && (c.AsOfYear < 1900 || c.AsOfYear > 2200) {
		return fmt.Errorf("invalid as-of year %d", c.AsOfYear)
	}

	if c.SeasonFloor != 0 && (c.SeasonFloor < 1900 || c.SeasonFloor > 2200) {
		return fmt.Errorf("invalid season floor %d", c.SeasonFloor)
	}

	if c.LedgerPath == "" || c.AliasPath == "" {
		return errors.New("ledger and alias paths must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.RecordsDir == "" || c.OutputPath == "" {
		return errors.New("need exactly records_dir and output_file")
	}
	return nil
}
