// Package normalize resolves free-text organization names to canonical
// ledger identities. Matching is a strict priority pipeline: alias lookup,
// canonical-key lookup, then (optionally) approximate matching against the
// canonical key set. The first stage that hits wins; there is no
// score-based ranking across stages.
package normalize

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/backmassage/ledgermatch/internal/config"
	"github.com/backmassage/ledgermatch/internal/ledger"
)

// MatchKind tags which pipeline stage produced a resolution.
type MatchKind string

const (
	MatchAlias     MatchKind = "alias"     // Exact hit in the alias table.
	MatchCanonical MatchKind = "canonical" // Exact hit on a ledger key.
	MatchFuzzy     MatchKind = "fuzzy"     // Approximate match at or above threshold.
	MatchNone      MatchKind = "none"      // No sufficiently similar canonical name.
)

// Reason refines MatchNone resolutions.
type Reason string

const (
	ReasonEmptyName Reason = "empty-name" // Input was empty or whitespace.
	ReasonProLeague Reason = "pro-league" // Professional-league employer; never in the ledger.
	ReasonNoMatch   Reason = "no-match"   // Nothing scored at or above the threshold.
)

// Resolution is the outcome of normalizing one raw organization name. Raw is
// always the original input, never substituted, so an unmatched stint keeps
// its provenance.
type Resolution struct {
	Raw       string
	Canonical string  // set for alias/canonical/fuzzy matches
	Kind      MatchKind
	Score     float64 // similarity score, fuzzy matches only
	Reason    Reason  // set when Kind == MatchNone
}

// Matched reports whether the resolution carries a canonical identity.
func (r Resolution) Matched() bool { return r.Kind != MatchNone }

// Normalizer resolves names against a frozen ledger and alias table. It is
// stateless beyond those tables and safe for concurrent use.
type Normalizer struct {
	ledger    *ledger.Ledger
	aliases   *ledger.AliasTable
	metric    strutil.StringMetric
	threshold float64
	fuzzy     bool
}

// NewNormalizer builds a Normalizer using the matching policy in cfg.
func NewNormalizer(l *ledger.Ledger, a *ledger.AliasTable, cfg *config.Config) *Normalizer {
	return &Normalizer{
		ledger:    l,
		aliases:   a,
		metric:    newMetric(cfg.Similarity),
		threshold: cfg.FuzzyThreshold,
		fuzzy:     !cfg.DisableFuzzy,
	}
}

// newMetric maps the configured metric name to a strutil implementation.
// Every metric here scores on a normalized 0-1 scale.
func newMetric(kind config.SimilarityMetric) strutil.StringMetric {
	switch kind {
	case config.SimilarityLevenshtein:
		return metrics.NewLevenshtein()
	case config.SimilarityJaroWinkler:
		return metrics.NewJaroWinkler()
	default:
		return metrics.NewSorensenDice()
	}
}

// Resolve normalizes rawName through the priority pipeline. It is pure: the
// fuzzy audit record lives in the returned Resolution (Kind and Score), and
// the caller decides where to report it.
func (n *Normalizer) Resolve(rawName string) Resolution {
	cleaned := ledger.CleanName(rawName)
	if cleaned == "" {
		return Resolution{Raw: rawName, Kind: MatchNone, Reason: ReasonEmptyName}
	}

	// 1. Alias lookup takes priority over everything else.
	if canonical, ok := n.aliases.Resolve(cleaned); ok {
		return Resolution{Raw: rawName, Canonical: canonical, Kind: MatchAlias}
	}

	// 2. Exact canonical key.
	if n.ledger.Contains(cleaned) {
		return Resolution{Raw: rawName, Canonical: cleaned, Kind: MatchCanonical}
	}

	// 3. Professional-league employers are screened out before approximate
	// matching so a franchise city name can never fuzzy-match a college.
	if IsProLeague(cleaned) {
		return Resolution{Raw: rawName, Kind: MatchNone, Reason: ReasonProLeague}
	}

	// 4. Approximate match against the canonical key set.
	if n.fuzzy {
		if canonical, score, ok := n.bestFuzzy(cleaned); ok {
			return Resolution{Raw: rawName, Canonical: canonical, Kind: MatchFuzzy, Score: score}
		}
	}

	return Resolution{Raw: rawName, Kind: MatchNone, Reason: ReasonNoMatch}
}

// bestFuzzy scores cleaned against every canonical name and returns the best
// candidate at or above the threshold. Candidates are visited in sorted
// order and only a strictly better score replaces the current best, so ties
// resolve to the lexicographically first canonical name and repeated runs
// produce identical results.
func (n *Normalizer) bestFuzzy(cleaned string) (string, float64, bool) {
	var (
		best      string
		bestScore float64
	)
	for _, candidate := range n.ledger.Canonicals() {
		score := strutil.Similarity(cleaned, candidate, n.metric)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if best == "" || bestScore < n.threshold {
		return "", 0, false
	}
	return best, bestScore, true
}
