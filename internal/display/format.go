package display

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/backmassage/ledgermatch/internal/overlap"
	"github.com/backmassage/ledgermatch/internal/record"
)

// FormatOverlapSummary renders a match list as a one-line summary like
// "TEXAS STATE UNIVERSITY (2021-2022, 2022-2023); OHIO STATE (2020-2021)".
// Organizations appear in first-match order; years within an organization
// are sorted.
func FormatOverlapSummary(matches []overlap.Match) string {
	if len(matches) == 0 {
		return ""
	}

	var order []string
	years := make(map[string][]string)
	for _, m := range matches {
		if _, seen := years[m.Organization]; !seen {
			order = append(order, m.Organization)
		}
		years[m.Organization] = append(years[m.Organization], m.AcademicYear)
	}

	parts := make([]string, 0, len(order))
	for _, org := range order {
		ys := years[org]
		sort.Strings(ys)
		parts = append(parts, fmt.Sprintf("%s (%s)", org, strings.Join(ys, ", ")))
	}
	return strings.Join(parts, "; ")
}

// FormatCareerHistory renders a stint list as "Org (years), Org2 (years)",
// dropping stints that ended before the floor year. floor 0 keeps
// everything; stints whose range cannot be read are kept rather than
// silently hidden.
func FormatCareerHistory(stints []record.CareerStint, floor int) string {
	if len(stints) == 0 {
		return "No career history found"
	}

	var parts []string
	for _, s := range stints {
		if floor > 0 && endsBefore(s.Years, floor) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", s.Organization, s.Years))
	}
	if len(parts) == 0 {
		return "No recent career history"
	}
	return strings.Join(parts, ", ")
}

// endsBefore reports whether a range string verifiably ends before floor.
// "present" ranges and unreadable text never do.
func endsBefore(years string, floor int) bool {
	fields := strings.SplitN(strings.TrimSpace(years), "-", 2)
	end := fields[0]
	if len(fields) == 2 {
		end = strings.TrimSpace(fields[1])
	}
	if strings.EqualFold(end, "present") {
		return false
	}
	n, err := strconv.Atoi(end)
	if err != nil {
		return false
	}
	if n < 100 {
		// Abbreviated end year inherits the start century.
		start, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return false
		}
		n += (start / 100) * 100
	}
	return n < floor
}
