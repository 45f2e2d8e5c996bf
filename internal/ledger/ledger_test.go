package ledger

import (
	"errors"
	"reflect"
	"testing"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "university of colorado", "UNIVERSITY OF COLORADO"},
		{"trims", "  Texas State  ", "TEXAS STATE"},
		{"collapses internal whitespace", "OHIO   STATE\tUNIVERSITY", "OHIO STATE UNIVERSITY"},
		{"already clean", "BOISE STATE", "BOISE STATE"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanName(tt.in); got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewLedger(t *testing.T) {
	l, err := NewLedger(map[string][]string{
		"University of Colorado": {"2021-2022", "2022-2023", "2021-2022"},
		"TEXAS STATE":            {"2020-2021"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if !l.Contains("UNIVERSITY OF COLORADO") {
		t.Error("key not case-normalized at construction")
	}
	if !l.HasYear("UNIVERSITY OF COLORADO", "2021-2022") {
		t.Error("HasYear() missed a recorded year")
	}
	if l.HasYear("TEXAS STATE", "2021-2022") {
		t.Error("HasYear() hit a year the ledger does not record")
	}

	// Duplicate tokens collapse; remaining output is sorted.
	want := []string{"2021-2022", "2022-2023"}
	if got := l.Years("UNIVERSITY OF COLORADO"); !reflect.DeepEqual(got, want) {
		t.Errorf("Years() = %v, want %v", got, want)
	}
	if got := l.Years("NOT A KEY"); got != nil {
		t.Errorf("Years() for missing key = %v, want nil", got)
	}

	wantKeys := []string{"TEXAS STATE", "UNIVERSITY OF COLORADO"}
	if got := l.Canonicals(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Canonicals() = %v, want %v", got, wantKeys)
	}
}

func TestNewLedger_Faults(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string][]string
	}{
		{"keys collide after case normalization", map[string][]string{
			"Ohio State": {"2020-2021"},
			"OHIO STATE": {"2021-2022"},
		}},
		{"malformed token", map[string][]string{
			"OHIO STATE": {"2020"},
		}},
		{"non-consecutive token", map[string][]string{
			"OHIO STATE": {"2020-2022"},
		}},
		{"empty key", map[string][]string{
			"   ": {"2020-2021"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLedger(tt.raw); err == nil {
				t.Error("expected load-time fault, got nil")
			}
		})
	}
}

func TestNewAliasTable(t *testing.T) {
	table, err := NewAliasTable(map[string][]string{
		"UNIVERSITY OF COLORADO": {"CU Boulder", "Colorado Buffaloes"},
		"_comment":               {"ignored bookkeeping entry"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (comment entries must be skipped)", table.Len())
	}
	canonical, ok := table.Resolve("CU BOULDER")
	if !ok || canonical != "UNIVERSITY OF COLORADO" {
		t.Errorf("Resolve(CU BOULDER) = %q, %v", canonical, ok)
	}
	if _, ok := table.Resolve("IGNORED BOOKKEEPING ENTRY"); ok {
		t.Error("comment entry leaked into the table")
	}
	if !table.HasCanonical("UNIVERSITY OF COLORADO") {
		t.Error("HasCanonical() = false for covered canonical")
	}
	if table.HasCanonical("OHIO STATE") {
		t.Error("HasCanonical() = true for uncovered canonical")
	}
}

func TestNewAliasTable_Collision(t *testing.T) {
	_, err := NewAliasTable(map[string][]string{
		"UNIVERSITY OF COLORADO":  {"Buffs"},
		"COLORADO STATE":          {"Buffs"},
	})
	var collision *AliasCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected *AliasCollisionError, got %v", err)
	}
	if collision.Alias != "BUFFS" {
		t.Errorf("collision alias = %q, want BUFFS", collision.Alias)
	}
	// Insertion is sorted by canonical, so the colliding pair is stable.
	if collision.First != "COLORADO STATE" || collision.Second != "UNIVERSITY OF COLORADO" {
		t.Errorf("collision pair = %q / %q", collision.First, collision.Second)
	}
}

// The same alias listed twice under one canonical entry is redundant, not a
// collision.
func TestNewAliasTable_DuplicateSameCanonical(t *testing.T) {
	table, err := NewAliasTable(map[string][]string{
		"UNIVERSITY OF COLORADO": {"CU", "cu"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}
