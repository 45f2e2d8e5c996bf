// Package overlap intersects career stints against the partnership ledger
// and aggregates per-person results. It is a pure batch transform: records
// are processed independently, the tables are read-only, and for fixed
// inputs and as-of year repeated runs produce identical output.
package overlap

import "github.com/backmassage/ledgermatch/internal/normalize"

// Match is one detected overlap: the person held Position at Organization
// during an academic year the ledger records a partnership for. Matches are
// derived, never stored; they are recomputed on every run.
type Match struct {
	Organization    string              `json:"organization"`
	RawOrganization string              `json:"organization_original"`
	AcademicYear    string              `json:"academic_year"`
	Position        string              `json:"position_at_time"`
	MatchKind       normalize.MatchKind `json:"match_kind"`
}

// PersonResult is the per-record output handed verbatim to the external
// report stage.
type PersonResult struct {
	Name                string  `json:"name"`
	CurrentPosition     string  `json:"current_position"`
	CurrentOrganization string  `json:"current_organization"`
	ResearchStatus      string  `json:"research_status"`
	HasOverlap          bool    `json:"has_overlap"`
	OverlapCount        int     `json:"overlap_count"`
	Overlaps            []Match `json:"overlaps"`
}
