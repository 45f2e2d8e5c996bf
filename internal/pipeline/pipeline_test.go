package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/backmassage/ledgermatch/internal/config"
	"github.com/backmassage/ledgermatch/internal/logging"
	"github.com/backmassage/ledgermatch/internal/normalize"
	"github.com/backmassage/ledgermatch/internal/overlap"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.yaml":               "",
		"a.yml":                "",
		"c.json":               "",
		"notes.txt":            "",
		"README.md":            "",
		"nested/d.yaml":        "",
		".hidden/e.yaml":       "",
		"nested/.cache/f.yaml": "",
	})

	got, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{
		filepath.Join(root, "a.yml"),
		filepath.Join(root, "b.yaml"),
		filepath.Join(root, "c.json"),
		filepath.Join(root, "nested", "d.yaml"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.json")
	results := []overlap.PersonResult{
		{
			Name:       "Pat Example",
			HasOverlap: true, OverlapCount: 1,
			Overlaps: []overlap.Match{{
				Organization: "BOISE STATE",
				AcademicYear: "2024-2025",
				MatchKind:    normalize.MatchCanonical,
			}},
		},
		{Name: "Lee Nobody", Overlaps: []overlap.Match{}},
	}
	if err := WriteResults(path, 2026, results); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["as_of_year"] != float64(2026) || doc["total_persons"] != float64(2) || doc["with_overlap"] != float64(1) {
		t.Errorf("unexpected header: %v", doc)
	}
	list, ok := doc["results"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("results = %v", doc["results"])
	}
	second := list[1].(map[string]any)
	if _, ok := second["overlaps"].([]any); !ok {
		t.Errorf("overlaps must serialize as a list, got %v", second["overlaps"])
	}
}

func TestWriteResults_EmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	if err := WriteResults(path, 2026, nil); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Results []overlap.PersonResult `json:"results"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Results == nil {
		t.Error("results must be an empty list, not null")
	}
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"data/ledger.yaml": `
UNIVERSITY OF COLORADO:
  - "2021-2022"
  - "2022-2023"
`,
		"data/aliases.yaml": `
UNIVERSITY OF COLORADO:
  - CU Boulder
`,
		"records/good.yaml": `
name: Pat Example
current_position: Head Coach
current_organization: Somewhere High School
research_status: FOUND
career_history:
  - organization: CU Boulder
    position: Assistant
    years: "2021-2022"
    source_url: https://example.com
`,
		"records/invalid.yaml": `
name: No Status
current_position: Coach
current_organization: Elsewhere
`,
		"records/broken.yaml": "{{{",
	})

	cfg := config.DefaultConfig()
	cfg.LedgerPath = filepath.Join(root, "data", "ledger.yaml")
	cfg.AliasPath = filepath.Join(root, "data", "aliases.yaml")
	cfg.RecordsDir = filepath.Join(root, "records")
	cfg.OutputPath = filepath.Join(root, "results.json")
	cfg.AsOfYear = 2026
	cfg.ColorMode = config.ColorNever

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}

	stats := Run(context.Background(), &cfg, log)
	if stats.Files != 3 {
		t.Errorf("Files = %d, want 3", stats.Files)
	}
	if stats.Failed != 1 {
		t.Errorf("Failed = %d, want 1", stats.Failed)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}
	if stats.Processed != 1 || stats.WithOverlap != 1 || stats.Overlaps != 1 {
		t.Errorf("Processed=%d WithOverlap=%d Overlaps=%d, want 1/1/1",
			stats.Processed, stats.WithOverlap, stats.Overlaps)
	}

	raw, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("results file not written: %v", err)
	}
	var doc struct {
		TotalPersons int `json:"total_persons"`
		Results      []overlap.PersonResult
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.TotalPersons != 1 || len(doc.Results) != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	res := doc.Results[0]
	if res.Name != "Pat Example" || !res.HasOverlap || len(res.Overlaps) != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.Overlaps[0].Organization != "UNIVERSITY OF COLORADO" {
		t.Errorf("overlap = %+v", res.Overlaps[0])
	}
}

func TestRun_BadLedgerIsFatal(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"data/ledger.yaml":  "{{{",
		"data/aliases.yaml": "A: [B]\n",
		"records/x.yaml":    "name: X\n",
	})

	cfg := config.DefaultConfig()
	cfg.LedgerPath = filepath.Join(root, "data", "ledger.yaml")
	cfg.AliasPath = filepath.Join(root, "data", "aliases.yaml")
	cfg.RecordsDir = filepath.Join(root, "records")
	cfg.OutputPath = filepath.Join(root, "results.json")
	cfg.AsOfYear = 2026
	cfg.ColorMode = config.ColorNever

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	stats := Run(context.Background(), &cfg, log)
	if stats.Files != 0 || stats.Processed != 0 {
		t.Errorf("run should stop before processing: %+v", stats)
	}
	if _, err := os.Stat(cfg.OutputPath); !os.IsNotExist(err) {
		t.Error("no results file should be written on a ledger fault")
	}
}
