// Package scan drives the line-by-line parse of a time-standards document.
//
// The [Scanner] makes a single synchronous pass over the line stream with
// one line of lookahead. Each iteration classifies the current line, merges
// its tokens, reassembles split relay rows, validates, and builds records
// under the active demographic context. The cursor advances one line per
// iteration, or two when a split-row fuse consumes the lookahead line.
//
// All state (the context tracker, accumulated records, accumulated flagged
// rows) is local to one Scan call, so independent Scanner instances may
// process documents in parallel with no shared mutable state.
//
// Malformed content never aborts the pass and never corrupts the context
// tracker: every rejected line or row lands in the flagged list with a
// specific reason, and the scan continues.
package scan

import (
	"github.com/tsawler/cutline/classify"
	"github.com/tsawler/cutline/model"
	"github.com/tsawler/cutline/rows"
	"github.com/tsawler/cutline/tokens"
)

// Scanner sequences classification, merging, reassembly, validation, and
// record building over a line stream.
type Scanner struct {
	rawRules    []classify.RawRule
	merger      *tokens.Merger
	reassembler *rows.Reassembler
}

// NewScanner returns a scanner with the default classification rules.
func NewScanner() *Scanner {
	return NewScannerWithRules(classify.DefaultRawRules())
}

// NewScannerWithRules returns a scanner using a custom ordered raw-rule
// list, for callers that recognize additional banner or junk line shapes.
func NewScannerWithRules(rules []classify.RawRule) *Scanner {
	return &Scanner{
		rawRules:    rules,
		merger:      tokens.NewMerger(),
		reassembler: rows.NewReassembler(),
	}
}

// Scan parses one document's line stream into records, in discovery order,
// plus the flagged rows rejected along the way. It never fails on line
// content; an empty stream simply yields no records.
func (s *Scanner) Scan(lines []model.RawLine) ([]model.Record, []model.FlaggedRow) {
	tracker := NewTracker()
	var records []model.Record
	var flagged []model.FlaggedRow

	i := 0
	for i < len(lines) {
		line := lines[i]
		i++

		if s.matchRawRule(line.Text) {
			continue
		}

		if left, right, ok := classify.MatchContextHeader(line.Text); ok {
			tracker.Update(left, right)
			continue
		}

		row := s.merger.Merge(tokens.Split(line.Text))

		if classify.IsCutOrderHeader(row) {
			continue
		}

		// Split relay row: the course code was pushed to the next
		// physical line. A successful fuse consumes the lookahead line.
		if s.reassembler.Splittable(row) && i < len(lines) {
			next := s.merger.Merge(tokens.Split(lines[i].Text))
			if fusedRow, ok := s.reassembler.Fuse(row, next); ok {
				row = fusedRow
				i++
			}
		}

		if ok, reason := rows.Validate(row); !ok {
			flagged = append(flagged, model.FlaggedRow{
				Tokens: row,
				Reason: reason,
				Line:   line.Number,
			})
			continue
		}

		// A valid data row is only converted while both contexts are
		// set; otherwise it is dropped for good, never retried.
		if !tracker.Complete() {
			flagged = append(flagged, model.FlaggedRow{
				Tokens: row,
				Reason: model.ReasonMissingContext,
				Line:   line.Number,
			})
			continue
		}

		left, right := tracker.Contexts()
		records = append(records, rows.Build(row, left, right)...)
	}

	return records, flagged
}

// matchRawRule reports whether any raw-line rule consumes the line.
func (s *Scanner) matchRawRule(text string) bool {
	for _, rule := range s.rawRules {
		if rule.Match(text) {
			return true
		}
	}
	return false
}
