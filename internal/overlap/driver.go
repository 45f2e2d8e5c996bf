package overlap

import "github.com/backmassage/ledgermatch/internal/record"

// CrossReference applies the matcher to every stint of every record and
// assembles per-person results in input order. Records share no mutable
// state, so processing order cannot affect any record's output; a record
// with zero stints yields an empty result and HasOverlap false, never an
// error.
func (m *Matcher) CrossReference(records []record.CareerRecord) []PersonResult {
	results := make([]PersonResult, 0, len(records))
	for i := range records {
		results = append(results, m.crossReferenceOne(&records[i]))
	}
	return results
}

func (m *Matcher) crossReferenceOne(rec *record.CareerRecord) PersonResult {
	m.person = rec.Name
	defer func() { m.person = "" }()

	// Non-nil so the JSON contract always carries a list, never null.
	overlaps := []Match{}
	for _, stint := range rec.CareerHistory {
		overlaps = append(overlaps, m.FindOverlaps(stint)...)
	}

	return PersonResult{
		Name:                rec.Name,
		CurrentPosition:     rec.CurrentPosition,
		CurrentOrganization: rec.CurrentOrganization,
		ResearchStatus:      rec.ResearchStatus,
		HasOverlap:          len(overlaps) > 0,
		OverlapCount:        len(overlaps),
		Overlaps:            overlaps,
	}
}
