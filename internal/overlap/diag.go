package overlap

import "github.com/backmassage/ledgermatch/internal/season"

// Diagnostics is the side channel for human audit: accepted fuzzy matches
// and per-stint parse problems. It is not part of the primary result and
// nothing downstream consumes it programmatically.
type Diagnostics struct {
	FuzzyUses     []FuzzyUse
	ParseFailures []ParseFailure
}

// FuzzyUse records one accepted approximate name resolution.
type FuzzyUse struct {
	Raw       string
	Canonical string
	Score     float64
}

// ParseFailure records one stint whose year range could not be (fully)
// parsed. Kind season.KindFutureYear entries are warnings: the stint was
// still processed with the clamped range.
type ParseFailure struct {
	Person       string
	Organization string
	RangeText    string
	Kind         season.ErrorKind
}

// Logger is the minimal logging interface the matcher needs. Defined here
// (rather than importing the logging package) so overlap stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Warn(string, ...interface{})
	Fuzzy(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// nopLogger is used when no logger is supplied; diagnostics are still
// collected, just not echoed.
type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Fuzzy(string, ...interface{})       {}
func (nopLogger) Debug(bool, string, ...interface{}) {}
