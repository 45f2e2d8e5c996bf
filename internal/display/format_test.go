package display

import (
	"testing"

	"github.com/backmassage/ledgermatch/internal/overlap"
	"github.com/backmassage/ledgermatch/internal/record"
)

func TestFormatOverlapSummary(t *testing.T) {
	tests := []struct {
		name    string
		matches []overlap.Match
		want    string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name: "single match",
			matches: []overlap.Match{
				{Organization: "TEXAS STATE UNIVERSITY", AcademicYear: "2021-2022"},
			},
			want: "TEXAS STATE UNIVERSITY (2021-2022)",
		},
		{
			name: "years grouped and sorted within an organization",
			matches: []overlap.Match{
				{Organization: "TEXAS STATE UNIVERSITY", AcademicYear: "2022-2023"},
				{Organization: "TEXAS STATE UNIVERSITY", AcademicYear: "2021-2022"},
			},
			want: "TEXAS STATE UNIVERSITY (2021-2022, 2022-2023)",
		},
		{
			name: "organizations in first-match order",
			matches: []overlap.Match{
				{Organization: "OHIO STATE", AcademicYear: "2020-2021"},
				{Organization: "TEXAS STATE UNIVERSITY", AcademicYear: "2021-2022"},
				{Organization: "OHIO STATE", AcademicYear: "2021-2022"},
			},
			want: "OHIO STATE (2020-2021, 2021-2022); TEXAS STATE UNIVERSITY (2021-2022)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatOverlapSummary(tt.matches); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCareerHistory(t *testing.T) {
	stints := []record.CareerStint{
		{Organization: "CU Boulder", Years: "2018-2020"},
		{Organization: "Boise State", Years: "2020-22"},
		{Organization: "Texas State", Years: "2022-present"},
	}

	tests := []struct {
		name   string
		stints []record.CareerStint
		floor  int
		want   string
	}{
		{
			name: "no history",
			want: "No career history found",
		},
		{
			name:   "no floor keeps everything",
			stints: stints,
			want:   "CU Boulder (2018-2020), Boise State (2020-22), Texas State (2022-present)",
		},
		{
			name:   "floor drops finished stints",
			stints: stints,
			floor:  2021,
			want:   "Boise State (2020-22), Texas State (2022-present)",
		},
		{
			name:   "present always survives the floor",
			stints: stints,
			floor:  2030,
			want:   "Texas State (2022-present)",
		},
		{
			name:   "everything filtered",
			stints: stints[:1],
			floor:  2025,
			want:   "No recent career history",
		},
		{
			name:   "unreadable years are kept",
			stints: []record.CareerStint{{Organization: "Somewhere", Years: "unknown"}},
			floor:  2025,
			want:   "Somewhere (unknown)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCareerHistory(tt.stints, tt.floor); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
