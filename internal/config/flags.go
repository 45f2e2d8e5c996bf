package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into data paths, matching policy, and display/utility.
// The run-config file is applied after Parse, skipping flags the user set
// explicitly, so precedence is: defaults < config file < command line.

import (
	"flag"
	"fmt"
	"os"
)

// version is shown in --version and help; override at build time with -ldflags "-X main.version=...".
var version = "1.0.0-dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, missing positional args).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("ledgermatch", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var showHelp, showVersion bool

	definePathFlags(fs, cfg)
	definePolicyFlags(fs, cfg)
	defineDisplayFlags(fs, cfg)
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showHelp, "help", false, "Show this help")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "ledgermatch v"+version)
		os.Exit(0)
	}

	// Record which flags were explicitly set so the config file cannot
	// override them.
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if err := LoadFileConfig(cfg, explicit); err != nil {
		return err
	}
	return parsePositionalArgs(fs, cfg)
}

// definePathFlags registers --ledger, --aliases, --config.
func definePathFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.LedgerPath, "ledger", cfg.LedgerPath, "Partnership ledger file (YAML/JSON)")
	fs.StringVar(&cfg.AliasPath, "aliases", cfg.AliasPath, "Organization alias file (YAML/JSON)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Optional run-config YAML file")
}

// definePolicyFlags registers --as-of, --threshold, --similarity, --no-fuzzy, --season-floor.
func definePolicyFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.AsOfYear, "as-of", cfg.AsOfYear, "Year used to expand 'present' ranges (default: current year)")
	fs.Float64Var(&cfg.FuzzyThreshold, "threshold", cfg.FuzzyThreshold, "Minimum similarity for an approximate name match (0-1]")
	fs.Var(&similarityValue{&cfg.Similarity}, "similarity", "Similarity metric: sorensen-dice | levenshtein | jaro-winkler")
	fs.BoolVar(&cfg.DisableFuzzy, "no-fuzzy", false, "Disable approximate name matching (exact and alias only)")
	fs.IntVar(&cfg.SeasonFloor, "season-floor", cfg.SeasonFloor, "Ignore seasons before this calendar year (0 = no floor)")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "Color output: auto | always | never")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run data-file diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// parsePositionalArgs fills RecordsDir and OutputPath from the remaining args.
// In check-only mode positional args are optional.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly && len(args) == 0 {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("need exactly records_dir and output_file, got %d args (see --help)", len(args))
	}
	cfg.RecordsDir = NormalizeDirArg(args[0])
	cfg.OutputPath = args[1]
	return nil
}

// --- flag.Value adapters for enum-typed fields ---

type similarityValue struct{ m *SimilarityMetric }

func (v *similarityValue) String() string {
	if v.m == nil {
		return ""
	}
	return string(*v.m)
}

func (v *similarityValue) Set(s string) error {
	switch SimilarityMetric(s) {
	case SimilaritySorensenDice, SimilarityLevenshtein, SimilarityJaroWinkler:
		*v.m = SimilarityMetric(s)
		return nil
	}
	return fmt.Errorf("invalid similarity metric %q", s)
}

type colorModeValue struct{ m *ColorMode }

func (v *colorModeValue) String() string {
	if v.m == nil {
		return ""
	}
	return string(*v.m)
}

func (v *colorModeValue) Set(s string) error {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		*v.m = ColorMode(s)
		return nil
	}
	return fmt.Errorf("invalid color mode %q", s)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `ledgermatch v%s - partnership overlap detection

Usage:
  ledgermatch [options] <records_dir> <output_file>
  ledgermatch --check [options]

Cross-references career-record files against a partnership ledger and
writes the per-person overlap results to <output_file> as JSON.

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  ledgermatch data/records results.json
  ledgermatch --ledger data/ledger.yaml --aliases data/aliases.yaml data/records out.json
  ledgermatch --as-of 2026 --threshold 0.92 data/records out.json
  ledgermatch --check --ledger data/ledger.yaml --aliases data/aliases.yaml
`)
}
