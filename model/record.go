package model

import (
	"fmt"
	"sort"
	"strings"
)

// RawLine is one physical line of extracted text, exactly as the extraction
// collaborator delivered it. Number is 1-indexed.
type RawLine struct {
	Number int
	Text   string
}

// Context is the demographic context a block of data rows is interpreted
// under: an age label ("10", "11-12", "15 & over") and a gender label.
type Context struct {
	Age    string
	Gender string
}

// IsZero reports whether the context has not been set.
func (c Context) IsZero() bool {
	return c.Age == "" && c.Gender == ""
}

// Record is one parsed standard set: the times for a single (age, gender,
// event) combination, keyed by cut-order label. Only labels with a non-blank
// time in the source row are present in Standards.
type Record struct {
	Age       string            `json:"age" yaml:"age"`
	Gender    string            `json:"gender" yaml:"gender"`
	Event     string            `json:"event" yaml:"event"`
	Standards map[string]string `json:"standards" yaml:"standards"`
}

// FlaggedRow is a line or row that failed classification or validation.
// It is purely diagnostic: flagged rows never feed back into parsing.
type FlaggedRow struct {
	Tokens []string `json:"tokens" yaml:"tokens"`
	Reason string   `json:"reason" yaml:"reason"`
	Line   int      `json:"line" yaml:"line"`
}

// String renders the flagged row in a form suitable for operator review.
func (f FlaggedRow) String() string {
	return fmt.Sprintf("line %d: %s: %q", f.Line, f.Reason, strings.Join(f.Tokens, " "))
}

// Rejection reasons produced by row validation and scanning. Validation
// reasons that name a token are built with fmt.Sprintf.
const (
	ReasonColumnCount    = "Incorrect number of columns"
	ReasonEventFormat    = "Invalid event format: %s"
	ReasonTimeFormat     = "Invalid time format in standards column: %s"
	ReasonLeftNotDesc    = "Left standards not in descending order"
	ReasonRightNotAsc    = "Right standards not in ascending order"
	ReasonMissingContext = "Missing demographic context"
)

// SortedLabels returns the labels present in Standards in ascending
// stringency order. Useful for deterministic output.
func (r Record) SortedLabels() []string {
	labels := make([]string, 0, len(r.Standards))
	for label := range r.Standards {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return LabelRank(labels[i]) < LabelRank(labels[j])
	})
	return labels
}
