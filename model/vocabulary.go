package model

import "regexp"

// CutLabels is the fixed set of cut-order labels in ascending stringency.
// The left half of a data row is labeled in this order; the right half in
// reverse.
var CutLabels = []string{"B", "BB", "A", "AA", "AAA", "AAAA"}

// LabelRank returns the stringency rank of a cut-order label (0 for B,
// 5 for AAAA), or -1 if the label is not in the vocabulary.
func LabelRank(label string) int {
	for i, l := range CutLabels {
		if l == label {
			return i
		}
	}
	return -1
}

// StrokeCodes are the single-swimmer discipline codes.
var StrokeCodes = map[string]bool{
	"FR": true, // freestyle
	"BK": true, // backstroke
	"BR": true, // breaststroke
	"FL": true, // butterfly
	"IM": true, // individual medley
}

// RelayCodes are the relay discipline codes. Kept distinct from StrokeCodes
// because split-row reassembly applies only to relay rows.
var RelayCodes = map[string]bool{
	"FR-R":  true,
	"MED-R": true,
}

// CourseCodes are the pool length/measurement convention codes.
var CourseCodes = map[string]bool{
	"SCY": true,
	"SCM": true,
	"LCM": true,
}

// IsStrokeOrRelayCode reports whether tok names a discipline, individual
// or relay.
func IsStrokeOrRelayCode(tok string) bool {
	return StrokeCodes[tok] || RelayCodes[tok]
}

// EventPattern is the grammar of a complete event descriptor:
// a 2-4 digit distance, a stroke or relay code, and a course code,
// space-separated.
var EventPattern = regexp.MustCompile(
	`^\d{2,4} (FR|BK|BR|FL|IM|FR-R|MED-R) (SCY|SCM|LCM)$`,
)

// IsEventDescriptor reports whether tok is a schema-valid event descriptor.
// Once validated, descriptors are treated as opaque strings.
func IsEventDescriptor(tok string) bool {
	return EventPattern.MatchString(tok)
}

// GenderLabels are the two recognized gender labels, in the spelling the
// source tables use.
var GenderLabels = []string{"Girls", "Boys"}
