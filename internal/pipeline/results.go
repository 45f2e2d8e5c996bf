package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/ledgermatch/internal/overlap"
)

// resultDocument is the top-level shape of the results file. The results
// list is the engine output verbatim; the header fields let a reader tell
// which policy produced the file without consulting logs.
type resultDocument struct {
	AsOfYear     int                    `json:"as_of_year"`
	TotalPersons int                    `json:"total_persons"`
	WithOverlap  int                    `json:"with_overlap"`
	Results      []overlap.PersonResult `json:"results"`
}

// WriteResults serializes results to path as indented JSON, creating parent
// directories as needed.
func WriteResults(path string, asOfYear int, results []overlap.PersonResult) error {
	if results == nil {
		results = []overlap.PersonResult{}
	}
	withOverlap := 0
	for i := range results {
		if results[i].HasOverlap {
			withOverlap++
		}
	}

	doc := resultDocument{
		AsOfYear:     asOfYear,
		TotalPersons: len(results),
		WithOverlap:  withOverlap,
		Results:      results,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
