// Package classify categorizes raw lines and merged token rows.
//
// Classification happens in two phases. Raw-line rules run before
// tokenization and identify lines that carry no table data: blank lines,
// the document title banner, generation timestamps, and page footers.
// Context-header detection also runs on the raw line, because the header's
// meaning depends on its horizontal layout surviving tokenization.
//
// After tokenization and merging, [IsCutOrderHeader] identifies the
// column-header rows that precede each data block.
//
// Raw rules are an ordered list of named pure predicates, evaluated in a
// fixed priority, so "why was this line skipped" is deterministic and each
// rule is testable in isolation.
package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/cutline/model"
)

// RawRule is a named predicate over an untokenized line. A matching rule
// consumes the line: it is neither tokenized nor emitted as data.
type RawRule struct {
	Name  string
	Match func(line string) bool
}

// DefaultRawRules returns the standard raw-line rules in evaluation order.
// The predicates are mutually independent; the order only fixes which name
// a multiply-matching line reports.
func DefaultRawRules(extraBannerKeywords ...string) []RawRule {
	keywords := append([]string{titleKeyword}, extraBannerKeywords...)
	return []RawRule{
		{Name: "blank", Match: IsBlank},
		{Name: "title", Match: func(line string) bool {
			return isTitleBanner(line, keywords)
		}},
		{Name: "timestamp", Match: IsTimestamp},
		{Name: "page-footer", Match: IsPageFooter},
	}
}

// titleKeyword identifies the document title banner. Matched
// case-insensitively as a substring.
const titleKeyword = "motivational standards"

var (
	// timestampPattern matches generation timestamps such as
	// "Generated 09/01/2023 10:30:00 AM".
	timestampPattern = regexp.MustCompile(
		`\d{1,2}/\d{1,2}/\d{4}\s+\d{1,2}:\d{2}(:\d{2})?\s*(AM|PM)`,
	)

	// pageFooterPattern matches "Page N of M" footers.
	pageFooterPattern = regexp.MustCompile(`Page\s+\d+\s+of\s+\d+`)

	// agePattern is the age-label grammar: a bare integer, a hyphenated
	// range, or an "N & under"/"N & over" phrase.
	agePattern = `\d{1,2}(?:-\d{1,2})?(?:\s*&\s*(?:under|over))?`

	// contextPattern matches a demographic context header: two
	// "<age> <gender>" groups separated by optional literal connective
	// text ("Event").
	contextPattern = regexp.MustCompile(
		`^\s*(` + agePattern + `)\s+(Girls|Boys)` +
			`(?:\s+Event)?` +
			`\s+(` + agePattern + `)\s+(Girls|Boys)\s*$`,
	)
)

// IsBlank reports whether the line is empty or whitespace-only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isTitleBanner(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// IsTitleBanner reports whether the line contains the domain title keyword.
func IsTitleBanner(line string) bool {
	return isTitleBanner(line, []string{titleKeyword})
}

// IsTimestamp reports whether the line contains a date-time-with-meridiem
// pattern.
func IsTimestamp(line string) bool {
	return timestampPattern.MatchString(line)
}

// IsPageFooter reports whether the line contains a "Page N of M" footer.
func IsPageFooter(line string) bool {
	return pageFooterPattern.MatchString(line)
}

// MatchContextHeader checks a raw line against the demographic-context
// pattern. On a match it returns the (left, right) context pair; a line
// that does not match completely yields ok=false and no partial contexts.
func MatchContextHeader(line string) (left, right model.Context, ok bool) {
	m := contextPattern.FindStringSubmatch(line)
	if m == nil {
		return model.Context{}, model.Context{}, false
	}
	left = model.Context{Age: normalizeAge(m[1]), Gender: m[2]}
	right = model.Context{Age: normalizeAge(m[3]), Gender: m[4]}
	return left, right, true
}

// normalizeAge collapses interior whitespace so "15  &  over" and
// "15 & over" produce the same age label.
func normalizeAge(age string) string {
	return strings.Join(strings.Fields(age), " ")
}

// cutOrderWithEvent and cutOrderWithoutEvent are the two reference header
// rows, with and without the literal "Event" label token.
var (
	cutOrderWithEvent = []string{
		"B", "BB", "A", "AA", "AAA", "AAAA", "Event",
		"AAAA", "AAA", "AA", "A", "BB", "B",
	}
	cutOrderWithoutEvent = []string{
		"B", "BB", "A", "AA", "AAA", "AAAA",
		"AAAA", "AAA", "AA", "A", "BB", "B",
	}
)

// IsCutOrderHeader reports whether a merged token row is exactly equal to
// one of the two reference column-header sequences. Matching rows carry no
// data and are discarded silently.
func IsCutOrderHeader(tokens []string) bool {
	return equalTokens(tokens, cutOrderWithEvent) ||
		equalTokens(tokens, cutOrderWithoutEvent)
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
