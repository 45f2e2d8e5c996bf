// Package record defines career records and their file loading and schema
// validation. Records are produced by an upstream research process; the
// engine consumes them read-only and never mutates them.
package record

// ResearchStatus values accepted by validation.
const (
	StatusFound     = "FOUND"
	StatusPartial   = "PARTIAL"
	StatusNotFound  = "NOT_FOUND"
	StatusAmbiguous = "AMBIGUOUS"
)

// CareerStint is one engagement at one organization over a bounded or
// open-ended range. Organization is kept exactly as written by the source.
type CareerStint struct {
	Organization string `yaml:"organization" json:"organization"`
	Position     string `yaml:"position" json:"position"`
	Years        string `yaml:"years" json:"years"`
	SourceURL    string `yaml:"source_url,omitempty" json:"source_url,omitempty"`
}

// CareerRecord is one person's identity plus their career history, most
// recent first by convention (ordering is a display convention only and has
// no effect on matching).
type CareerRecord struct {
	Name                string        `yaml:"name" json:"name"`
	CurrentPosition     string        `yaml:"current_position" json:"current_position"`
	CurrentOrganization string        `yaml:"current_organization" json:"current_organization"`
	ResearchStatus      string        `yaml:"research_status" json:"research_status"`
	CareerHistory       []CareerStint `yaml:"career_history" json:"career_history"`
}
