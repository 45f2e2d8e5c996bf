package record

import (
	"fmt"
	"regexp"
	"strings"
)

// Schema validation for career records. Errors block a record from being
// cross-referenced; warnings are logged but never stop processing.

var validStatuses = map[string]bool{
	StatusFound:     true,
	StatusPartial:   true,
	StatusNotFound:  true,
	StatusAmbiguous: true,
}

// reYearFormat accepts the range forms the season parser understands:
// "YYYY-YYYY", "YYYY-YY", "YYYY-present", and a bare "YYYY".
var reYearFormat = regexp.MustCompile(`(?i)^\d{4}(\s*-\s*(present|\d{4}|\d{2}))?$`)

// ValidYearFormat reports whether years matches an accepted range form.
func ValidYearFormat(years string) bool {
	return reYearFormat.MatchString(strings.TrimSpace(years))
}

// Validate checks a record against the schema. A record with errors must be
// skipped; warnings flag quality issues (missing provenance, suspicious
// status combinations) that downstream reviewers care about.
func Validate(rec *CareerRecord) (errs, warns []string) {
	if strings.TrimSpace(rec.Name) == "" {
		errs = append(errs, "missing required field 'name'")
	}
	if strings.TrimSpace(rec.CurrentPosition) == "" {
		errs = append(errs, "missing required field 'current_position'")
	}
	if strings.TrimSpace(rec.CurrentOrganization) == "" {
		errs = append(errs, "missing required field 'current_organization'")
	}

	if rec.ResearchStatus == "" {
		errs = append(errs, "missing required field 'research_status'")
	} else if !validStatuses[rec.ResearchStatus] {
		errs = append(errs, fmt.Sprintf("invalid research_status %q", rec.ResearchStatus))
	}

	for i := range rec.CareerHistory {
		stintErrs, stintWarns := validateStint(&rec.CareerHistory[i], i)
		errs = append(errs, stintErrs...)
		warns = append(warns, stintWarns...)
	}

	if rec.ResearchStatus == StatusFound && len(rec.CareerHistory) == 0 {
		warns = append(warns, "research_status is FOUND but career_history is empty")
	}
	return errs, warns
}

func validateStint(s *CareerStint, index int) (errs, warns []string) {
	if strings.TrimSpace(s.Organization) == "" {
		errs = append(errs, fmt.Sprintf("stint %d: missing required field 'organization'", index))
	}
	if strings.TrimSpace(s.Position) == "" {
		errs = append(errs, fmt.Sprintf("stint %d: missing required field 'position'", index))
	}
	if strings.TrimSpace(s.Years) == "" {
		errs = append(errs, fmt.Sprintf("stint %d: missing required field 'years'", index))
	} else if !ValidYearFormat(s.Years) {
		errs = append(errs, fmt.Sprintf("stint %d: invalid year format %q (expected YYYY-YYYY or YYYY-present)", index, s.Years))
	}
	if s.SourceURL == "" {
		warns = append(warns, fmt.Sprintf("stint %d: missing source_url (data will be treated as unverified)", index))
	}
	return errs, warns
}
