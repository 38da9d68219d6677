// Package timefmt parses and formats the elapsed-time tokens used in
// time-standard tables.
//
// Times are written as [M:]SS.hh, optionally suffixed with a qualifier
// marker (an asterisk). A blank token is a valid "standard not defined"
// placeholder, so parsing never returns an error: [Parse] reports absence
// with its second return value instead.
package timefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Marker is the qualifier glyph some standards carry. The source corpus
// spells it both attached ("2:16.19*") and detached ("2:16.19 *");
// [Normalize] canonicalizes to the attached spelling.
const Marker = "*"

// TimePattern is the grammar of a complete, canonical time token: an
// optional one- or two-digit minutes prefix, two-digit seconds, two-digit
// hundredths, and an optional attached qualifier marker. Apply [Normalize]
// before matching tokens of unknown spelling.
var TimePattern = regexp.MustCompile(`^(\d{1,2}:)?\d{2}\.\d{2}\*?$`)

// Normalize returns the canonical spelling of a time token: surrounding
// whitespace removed and a detached qualifier marker reattached.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutSuffix(s, Marker); ok {
		return strings.TrimSpace(rest) + Marker
	}
	return s
}

// IsTime reports whether s, once normalized, matches the time grammar.
func IsTime(s string) bool {
	return TimePattern.MatchString(Normalize(s))
}

// Parse decodes a time token into canonical seconds. The qualifier marker
// and surrounding whitespace are ignored. Blank or unparsable input yields
// ok=false, never an error: callers treat absence as "no value", not
// failure.
func Parse(s string) (seconds float64, ok bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), Marker)
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if min, sec, found := strings.Cut(s, ":"); found {
		m, err := strconv.ParseFloat(min, 64)
		if err != nil {
			return 0, false
		}
		v, err := strconv.ParseFloat(sec, 64)
		if err != nil {
			return 0, false
		}
		return m*60 + v, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Format renders canonical seconds back into the time grammar: M:SS.hh when
// a minutes part is present, SS.hh otherwise. Hundredths are rounded.
func Format(seconds float64) string {
	hundredths := int(math.Round(seconds * 100))
	min := hundredths / 6000
	rem := hundredths % 6000
	if min == 0 {
		return fmt.Sprintf("%05.2f", float64(rem)/100)
	}
	return fmt.Sprintf("%d:%05.2f", min, float64(rem)/100)
}
