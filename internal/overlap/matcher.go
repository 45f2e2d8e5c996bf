package overlap

import (
	"errors"
	"strconv"
	"strings"

	"github.com/backmassage/ledgermatch/internal/config"
	"github.com/backmassage/ledgermatch/internal/ledger"
	"github.com/backmassage/ledgermatch/internal/normalize"
	"github.com/backmassage/ledgermatch/internal/record"
	"github.com/backmassage/ledgermatch/internal/season"
)

// Matcher finds ledger overlaps for individual stints. It owns the run's
// diagnostics; create one Matcher per run.
type Matcher struct {
	ledger      *ledger.Ledger
	norm        *normalize.Normalizer
	asOfYear    int
	seasonFloor int
	verbose     bool
	log         Logger
	diag        Diagnostics

	person string // identity attached to parse-failure diagnostics
}

// NewMatcher wires a Matcher from the frozen tables and run config. log may
// be nil.
func NewMatcher(l *ledger.Ledger, a *ledger.AliasTable, cfg *config.Config, log Logger) *Matcher {
	if log == nil {
		log = nopLogger{}
	}
	return &Matcher{
		ledger:      l,
		norm:        normalize.NewNormalizer(l, a, cfg),
		asOfYear:    cfg.AsOfYear,
		seasonFloor: cfg.SeasonFloor,
		verbose:     cfg.Verbose,
		log:         log,
	}
}

// Diagnostics returns the audit records accumulated so far.
func (m *Matcher) Diagnostics() *Diagnostics { return &m.diag }

// FindOverlaps returns every overlap between one stint and the ledger,
// ordered by ascending academic year. An unmatched organization or a
// malformed year range yields an empty list, never an error: most stints
// legitimately have no ledger entry, and one bad stint must not abort the
// rest of a record.
func (m *Matcher) FindOverlaps(stint record.CareerStint) []Match {
	res := m.norm.Resolve(stint.Organization)
	if !res.Matched() {
		m.log.Debug(m.verbose, "  no identity for %q (%s)", stint.Organization, res.Reason)
		return nil
	}
	if res.Kind == normalize.MatchFuzzy {
		m.diag.FuzzyUses = append(m.diag.FuzzyUses, FuzzyUse{
			Raw:       stint.Organization,
			Canonical: res.Canonical,
			Score:     res.Score,
		})
		m.log.Fuzzy("%q -> %q (score %.3f)", stint.Organization, res.Canonical, res.Score)
	}

	if !m.ledger.Contains(res.Canonical) {
		// Alias tables may cover organizations outside the ledger.
		return nil
	}

	tokens, err := season.ParseAcademicYears(stint.Years, m.asOfYear)
	if err != nil {
		kind := parseKind(err)
		m.diag.ParseFailures = append(m.diag.ParseFailures, ParseFailure{
			Person:       m.person,
			Organization: stint.Organization,
			RangeText:    stint.Years,
			Kind:         kind,
		})
		if kind == season.KindFutureYear {
			// Warning-level: proceed with the clamped token set.
			m.log.Warn("  year range %q reaches past %d; clamped", stint.Years, m.asOfYear+1)
		} else {
			m.log.Warn("  skipping stint at %q: %v", stint.Organization, err)
			return nil
		}
	}

	var matches []Match
	for _, tok := range tokens {
		if m.belowFloor(tok) {
			continue
		}
		if m.ledger.HasYear(res.Canonical, tok) {
			matches = append(matches, Match{
				Organization:    res.Canonical,
				RawOrganization: stint.Organization,
				AcademicYear:    tok,
				Position:        stint.Position,
				MatchKind:       res.Kind,
			})
		}
	}
	return matches
}

// belowFloor reports whether a token's season year precedes the configured
// season floor.
func (m *Matcher) belowFloor(token string) bool {
	if m.seasonFloor == 0 {
		return false
	}
	start, err := strconv.Atoi(token[:strings.Index(token, "-")])
	if err != nil {
		return false
	}
	return start < m.seasonFloor
}

func parseKind(err error) season.ErrorKind {
	var pe *season.ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return season.KindMalformedYear
}
