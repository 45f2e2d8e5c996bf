// Package season converts human-written year-range strings into
// academic-year tokens.
//
// The end year of a range is the last season covered, inclusive: "2020-2022"
// denotes the 2020, 2021, and 2022 seasons. Each season year Y maps to one
// academic-year token "Y-(Y+1)": the 2020 season is the 2020-2021 school
// year. "YYYY-present" expands to the caller-supplied as-of year inclusive;
// the caller supplies that year explicitly so parsing never reads a clock.
package season

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrorKind classifies a year-range parse failure.
type ErrorKind string

const (
	// KindMalformedYear means a year component was non-numeric or the text
	// did not match any accepted range form.
	KindMalformedYear ErrorKind = "malformed-year"
	// KindInvalidRange means the end year precedes the start year.
	KindInvalidRange ErrorKind = "invalid-range"
	// KindFutureYear means the end year lies more than one year beyond the
	// as-of year. This is a warning-level anomaly: ParseAcademicYears still
	// returns the token set clamped to asOfYear+1 alongside the error, so
	// the caller may clamp or reject.
	KindFutureYear ErrorKind = "future-year"
)

// ParseError reports why a year-range string could not be (fully) parsed.
type ParseError struct {
	Kind ErrorKind
	Text string // the raw range text, preserved for diagnostics
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("year range %q: %s", e.Text, e.Kind)
}

// AcademicYear returns the token for the school year beginning in the fall
// of the given season year: AcademicYear(2020) == "2020-2021".
func AcademicYear(year int) string {
	return fmt.Sprintf("%d-%d", year, year+1)
}

// Accepted range forms. Matching is done on the trimmed input; "present" is
// case-insensitive.
var (
	rePresent = regexp.MustCompile(`(?i)^(\d{4})\s*-\s*present$`)
	reRange   = regexp.MustCompile(`^(\d{4})\s*-\s*(\d{4})$`)
	reShort   = regexp.MustCompile(`^(\d{4})\s*-\s*(\d{2})$`)
	reSingle  = regexp.MustCompile(`^(\d{4})$`)
)

// ParseAcademicYears parses rangeText into the sorted set of academic-year
// tokens it denotes. asOfYear bounds the expansion of "present".
//
// On KindFutureYear the clamped token set is returned together with the
// error; on every other failure the set is nil. Duplicate seasons cannot
// occur, and output order is ascending for reproducible diagnostics.
func ParseAcademicYears(rangeText string, asOfYear int) ([]string, error) {
	text := strings.TrimSpace(rangeText)

	start, end, err := parseBounds(text, asOfYear)
	if err != nil {
		return nil, err
	}

	if end < start {
		return nil, &ParseError{Kind: KindInvalidRange, Text: rangeText}
	}

	var futureErr error
	if end > asOfYear+1 {
		futureErr = &ParseError{Kind: KindFutureYear, Text: rangeText}
		end = asOfYear + 1
		if end < start {
			// The whole range lies in the future; nothing survives the clamp.
			return []string{}, futureErr
		}
	}

	tokens := make([]string, 0, end-start+1)
	for y := start; y <= end; y++ {
		tokens = append(tokens, AcademicYear(y))
	}
	return tokens, futureErr
}

// parseBounds extracts the inclusive season bounds from the trimmed text.
func parseBounds(text string, asOfYear int) (start, end int, err error) {
	if m := rePresent.FindStringSubmatch(text); m != nil {
		start = atoi(m[1])
		return start, asOfYear, nil
	}
	if m := reRange.FindStringSubmatch(text); m != nil {
		return atoi(m[1]), atoi(m[2]), nil
	}
	if m := reShort.FindStringSubmatch(text); m != nil {
		// Abbreviated end year: "2020-22" means 2020-2022. The short form
		// inherits the start year's century, rolling forward when it would
		// land before the start.
		start = atoi(m[1])
		end = (start/100)*100 + atoi(m[2])
		if end < start {
			end += 100
		}
		return start, end, nil
	}
	if m := reSingle.FindStringSubmatch(text); m != nil {
		start = atoi(m[1])
		return start, start, nil
	}
	return 0, 0, &ParseError{Kind: KindMalformedYear, Text: text}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
