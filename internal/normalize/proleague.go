package normalize

import "strings"

// Professional-league screening. Pro franchises are legitimate career stops
// that can never appear in the ledger, and several share city or mascot
// words with colleges, which makes them fuzzy-match bait. Screening them out
// before the approximate stage distinguishes "no match because pro team"
// from "no match because unknown organization".

var proKeywords = []string{
	"49ERS", "BEARS", "BENGALS", "BILLS", "BRONCOS", "BROWNS",
	"BUCCANEERS", "CARDINALS", "CHARGERS", "CHIEFS", "COLTS",
	"COMMANDERS", "COWBOYS", "DOLPHINS", "EAGLES", "FALCONS",
	"GIANTS", "JAGUARS", "JETS", "LIONS", "PACKERS", "PANTHERS",
	"PATRIOTS", "RAIDERS", "RAMS", "RAVENS", "SAINTS", "SEAHAWKS",
	"STEELERS", "TEXANS", "TITANS", "VIKINGS",
	"NFL", "NATIONAL FOOTBALL LEAGUE",
}

// IsProLeague reports whether a cleaned (uppercase) name looks like a
// professional-league employer. Names containing "UNIVERSITY" or "COLLEGE"
// are never flagged, so colleges sharing a mascot word stay matchable.
func IsProLeague(cleaned string) bool {
	if strings.Contains(cleaned, "UNIVERSITY") || strings.Contains(cleaned, "COLLEGE") {
		return false
	}
	for _, kw := range proKeywords {
		if strings.Contains(cleaned, kw) {
			return true
		}
	}
	return false
}
