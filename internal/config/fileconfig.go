package config

// This file implements the optional YAML run-config file. File values sit
// between DefaultConfig and CLI flags: a field set explicitly on the command
// line always wins over the file.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig models the run-config file. All fields are optional; zero
// values mean "not set" and leave the corresponding Config field alone.
type fileConfig struct {
	Ledger         string  `yaml:"ledger"`
	Aliases        string  `yaml:"aliases"`
	AsOfYear       int     `yaml:"as_of_year"`
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`
	Similarity     string  `yaml:"similarity"`
	SeasonFloor    int     `yaml:"season_floor"`
	LogFile        string  `yaml:"log_file"`
}

// LoadFileConfig reads cfg.ConfigFile (if set) and applies its values to cfg,
// skipping any field named in explicit (flags the user passed on the command
// line). A missing file is an error: if the user pointed at a config file it
// must exist.
func LoadFileConfig(cfg *Config, explicit map[string]bool) error {
	if cfg.ConfigFile == "" {
		return nil
	}
	raw, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", cfg.ConfigFile, err)
	}

	if fc.Ledger != "" && !explicit["ledger"] {
		cfg.LedgerPath = fc.Ledger
	}
	if fc.Aliases != "" && !explicit["aliases"] {
		cfg.AliasPath = fc.Aliases
	}
	if fc.AsOfYear != 0 && !explicit["as-of"] {
		cfg.AsOfYear = fc.AsOfYear
	}
	if fc.FuzzyThreshold != 0 && !explicit["threshold"] {
		cfg.FuzzyThreshold = fc.FuzzyThreshold
	}
	if fc.Similarity != "" && !explicit["similarity"] {
		cfg.Similarity = SimilarityMetric(fc.Similarity)
	}
	if fc.SeasonFloor != 0 && !explicit["season-floor"] {
		cfg.SeasonFloor = fc.SeasonFloor
	}
	if fc.LogFile != "" && !explicit["log"] {
		cfg.LogFile = fc.LogFile
	}
	return nil
}
