// Package tokens repairs token sequences damaged by lossy table extraction.
//
// Layout-approximate extraction splits some logical tokens across cell
// boundaries: an event descriptor arrives as three tokens ("200", "FR",
// "SCY"), a time loses its minutes prefix to the previous cell ("2",
// ":17.99"), and a qualifier marker drifts into a cell of its own. The
// [Merger] fuses those fragments back into single logical tokens in one
// forward pass.
//
// # Fusion Rules
//
// Rules are applied in fixed priority at each position; the first match
// claims its tokens and the pass continues after them:
//
//  1. Event fusion: all-digit distance + stroke/relay code + course code
//  2. Time-fragment fusion: all-digit minutes + token starting with a colon
//     (plus a trailing marker token, if present)
//  3. Marker fusion: complete time token + standalone qualifier marker
//
// Event fusion is checked before time fusion so an all-digit distance is
// not mistaken for the minutes part of a split time.
//
// The pass builds a new slice and never re-scans tokens it already emitted,
// which makes merging idempotent: merging an already-merged sequence
// returns an identical sequence.
package tokens

import (
	"strings"

	"github.com/tsawler/cutline/model"
	"github.com/tsawler/cutline/timefmt"
)

// Split breaks a raw line into whitespace-delimited tokens. It is the
// tokenization step that precedes merging.
func Split(line string) []string {
	return strings.Fields(line)
}

// Rule is one fusion pattern. Match inspects the window starting at the
// current position and, on success, returns the fused token and how many
// input tokens it consumed.
type Rule struct {
	Name  string
	Match func(window []string) (fused string, consumed int, ok bool)
}

// Merger fuses split token fragments using an ordered rule list.
type Merger struct {
	rules []Rule
}

// NewMerger returns a merger with the standard rule set in priority order.
func NewMerger() *Merger {
	return &Merger{
		rules: []Rule{
			{Name: "event", Match: matchEvent},
			{Name: "time-fragment", Match: matchTimeFragment},
			{Name: "marker", Match: matchMarker},
		},
	}
}

// Merge returns a new token sequence with all fusion rules applied. The
// input is never mutated. Blank tokens pass through unchanged; they are
// schema-significant placeholders, not junk.
func (m *Merger) Merge(toks []string) []string {
	out := make([]string, 0, len(toks))

	i := 0
	for i < len(toks) {
		fused, consumed := m.applyAt(toks[i:])
		if consumed > 0 {
			out = append(out, fused)
			i += consumed
			continue
		}
		out = append(out, toks[i])
		i++
	}

	return out
}

// applyAt tries each rule against the window in priority order.
func (m *Merger) applyAt(window []string) (string, int) {
	for _, rule := range m.rules {
		if fused, consumed, ok := rule.Match(window); ok {
			return fused, consumed
		}
	}
	return "", 0
}

// matchEvent fuses <distance> <stroke-or-relay> <course> into one event
// descriptor token.
func matchEvent(w []string) (string, int, bool) {
	if len(w) < 3 {
		return "", 0, false
	}
	if !isAllDigits(w[0]) || !model.IsStrokeOrRelayCode(w[1]) || !model.CourseCodes[w[2]] {
		return "", 0, false
	}
	return w[0] + " " + w[1] + " " + w[2], 3, true
}

// matchTimeFragment fuses an all-digit minutes token with a token starting
// with a colon, and claims a trailing standalone marker too when present.
func matchTimeFragment(w []string) (string, int, bool) {
	if len(w) < 2 {
		return "", 0, false
	}
	if !isAllDigits(w[0]) || !strings.HasPrefix(w[1], ":") {
		return "", 0, false
	}
	fused := w[0] + w[1]
	if len(w) >= 3 && w[2] == timefmt.Marker {
		return timefmt.Normalize(fused + timefmt.Marker), 3, true
	}
	return timefmt.Normalize(fused), 2, true
}

// matchMarker fuses a complete time token with a standalone qualifier
// marker that drifted into the next cell.
func matchMarker(w []string) (string, int, bool) {
	if len(w) < 2 {
		return "", 0, false
	}
	if w[1] != timefmt.Marker || !timefmt.IsTime(w[0]) || strings.HasSuffix(w[0], timefmt.Marker) {
		return "", 0, false
	}
	return timefmt.Normalize(w[0] + timefmt.Marker), 2, true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
