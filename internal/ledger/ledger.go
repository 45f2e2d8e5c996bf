// Package ledger holds the two reference tables the engine matches against:
// the partnership ledger (canonical organization -> academic-year tokens) and
// the alias table (alias -> canonical organization). Both are constructed
// once at load time, validated, and never mutated afterwards, so concurrent
// readers need no locking.
package ledger

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// reAcademicYear matches a well-formed academic-year token "YYYY-YYYY".
var reAcademicYear = regexp.MustCompile(`^(\d{4})-(\d{4})$`)

// Ledger maps canonical organization names (uppercase, trimmed) to the set of
// academic years in which a partnership was active.
type Ledger struct {
	years      map[string]map[string]bool
	canonicals []string // sorted key list, for deterministic iteration
}

// NewLedger builds and validates a Ledger from raw key -> token-list data.
// Keys are uppercased and trimmed. Duplicate tokens within one key collapse
// (set semantics); a malformed token or a key that uppercases onto an
// existing key is a fatal data fault.
func NewLedger(raw map[string][]string) (*Ledger, error) {
	l := &Ledger{years: make(map[string]map[string]bool, len(raw))}
	for key, tokens := range raw {
		canonical := CleanName(key)
		if canonical == "" {
			return nil, fmt.Errorf("ledger: empty organization key")
		}
		if _, dup := l.years[canonical]; dup {
			return nil, fmt.Errorf("ledger: duplicate key %q after case normalization", canonical)
		}
		set := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if err := validateToken(tok); err != nil {
				return nil, fmt.Errorf("ledger: %q: %w", canonical, err)
			}
			set[tok] = true
		}
		l.years[canonical] = set
	}
	l.canonicals = sortedKeys(l.years)
	return l, nil
}

// validateToken checks the "YYYY-YYYY" shape and that the second year is the
// first plus one.
func validateToken(tok string) error {
	m := reAcademicYear.FindStringSubmatch(tok)
	if m == nil {
		return fmt.Errorf("malformed academic-year token %q", tok)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if end != start+1 {
		return fmt.Errorf("academic-year token %q does not span consecutive years", tok)
	}
	return nil
}

// Contains reports whether canonical is a ledger key.
func (l *Ledger) Contains(canonical string) bool {
	_, ok := l.years[canonical]
	return ok
}

// HasYear reports whether the ledger records a partnership at canonical
// during the given academic-year token.
func (l *Ledger) HasYear(canonical, token string) bool {
	return l.years[canonical][token]
}

// Years returns the sorted academic-year tokens for canonical, or nil when
// the organization is not in the ledger.
func (l *Ledger) Years(canonical string) []string {
	set, ok := l.years[canonical]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for tok := range set {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Canonicals returns the sorted canonical key list. The slice is shared;
// callers must not modify it.
func (l *Ledger) Canonicals() []string { return l.canonicals }

// Len returns the number of organizations in the ledger.
func (l *Ledger) Len() int { return len(l.years) }

// AliasCollisionError reports an alias claimed by two canonical entries.
// Canonical identity cannot be trusted when this happens, so loading fails
// rather than silently picking one.
type AliasCollisionError struct {
	Alias  string
	First  string
	Second string
}

func (e *AliasCollisionError) Error() string {
	return fmt.Sprintf("alias %q claimed by both %q and %q", e.Alias, e.First, e.Second)
}

// AliasTable maps alias strings (uppercase, trimmed) to canonical
// organization names.
type AliasTable struct {
	reverse map[string]string
}

// NewAliasTable builds and validates an AliasTable from canonical ->
// alias-list data. Every alias must map to exactly one canonical entry;
// a collision is returned as *AliasCollisionError. Keys beginning with "_"
// are comment entries in the data file and are skipped.
func NewAliasTable(raw map[string][]string) (*AliasTable, error) {
	t := &AliasTable{reverse: make(map[string]string)}
	// Deterministic insertion order so collision errors are reproducible.
	for _, key := range sortedRawKeys(raw) {
		if strings.HasPrefix(key, "_") {
			continue
		}
		canonical := CleanName(key)
		if canonical == "" {
			return nil, fmt.Errorf("aliases: empty canonical key")
		}
		for _, alias := range raw[key] {
			a := CleanName(alias)
			if a == "" {
				return nil, fmt.Errorf("aliases: empty alias under %q", canonical)
			}
			if prev, ok := t.reverse[a]; ok && prev != canonical {
				return nil, &AliasCollisionError{Alias: a, First: prev, Second: canonical}
			}
			t.reverse[a] = canonical
		}
	}
	return t, nil
}

// Resolve looks up an already-cleaned alias and returns its canonical name.
func (t *AliasTable) Resolve(alias string) (string, bool) {
	canonical, ok := t.reverse[alias]
	return canonical, ok
}

// HasCanonical reports whether at least one alias resolves to canonical.
// The table is keyed by alias, so this is a scan; it exists for coverage
// reporting, not for the matching hot path.
func (t *AliasTable) HasCanonical(canonical string) bool {
	for _, c := range t.reverse {
		if c == canonical {
			return true
		}
	}
	return false
}

// Len returns the number of distinct aliases.
func (t *AliasTable) Len() int { return len(t.reverse) }

var reSpaces = regexp.MustCompile(`\s+`)

// CleanName uppercases, trims, and collapses internal whitespace. This is
// the shared lexical normalization applied to ledger keys, aliases, and raw
// organization names before any comparison.
func CleanName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	return reSpaces.ReplaceAllString(name, " ")
}

func sortedKeys(m map[string]map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedRawKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
