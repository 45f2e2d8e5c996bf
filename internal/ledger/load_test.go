package ledger

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLedger_YAML(t *testing.T) {
	path := writeFile(t, "ledger.yaml", `
UNIVERSITY OF COLORADO:
  - 2021-2022
  - 2022-2023
TEXAS STATE:
  - 2020-2021
`)
	l, err := LoadLedger(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if !l.HasYear("TEXAS STATE", "2020-2021") {
		t.Error("loaded ledger missing recorded year")
	}
}

// The original data files are JSON; YAML is a superset, so they must load
// through the same path.
func TestLoadLedger_JSON(t *testing.T) {
	path := writeFile(t, "ledger.json",
		`{"UNIVERSITY OF COLORADO": ["2021-2022"], "OHIO STATE": ["2020-2021", "2021-2022"]}`)
	l, err := LoadLedger(path)
	if err != nil {
		t.Fatal(err)
	}
	if !l.HasYear("OHIO STATE", "2021-2022") {
		t.Error("JSON ledger did not load")
	}
}

func TestLoadLedger_DuplicateKey(t *testing.T) {
	path := writeFile(t, "ledger.yaml", `
OHIO STATE:
  - 2020-2021
OHIO STATE:
  - 2021-2022
`)
	if _, err := LoadLedger(path); err == nil {
		t.Error("duplicate file key must be a load-time fault, not last-wins")
	}
}

func TestLoadLedger_BadShapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"top level is a list", "- 2020-2021\n"},
		{"value is a scalar", "OHIO STATE: 2020-2021\n"},
		{"empty document", ""},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "ledger.yaml", tt.content)
			if _, err := LoadLedger(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadAliases(t *testing.T) {
	path := writeFile(t, "aliases.yaml", `
UNIVERSITY OF COLORADO:
  - CU Boulder
  - Colorado Buffaloes
_note:
  - comment entries are skipped
`)
	table, err := LoadAliases(path)
	if err != nil {
		t.Fatal(err)
	}
	if canonical, ok := table.Resolve("COLORADO BUFFALOES"); !ok || canonical != "UNIVERSITY OF COLORADO" {
		t.Errorf("Resolve() = %q, %v", canonical, ok)
	}
}

func TestLoadAliases_CollisionIsFatal(t *testing.T) {
	path := writeFile(t, "aliases.yaml", `
UNIVERSITY OF COLORADO:
  - Buffs
COLORADO STATE:
  - Buffs
`)
	if _, err := LoadAliases(path); err == nil {
		t.Error("alias collision must fail the load")
	}
}

func TestLoadLedger_MissingFile(t *testing.T) {
	if _, err := LoadLedger(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
