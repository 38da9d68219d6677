// Package model provides the shared domain types for parsed time-standard
// tables.
//
// This package defines the user-facing data structures that every stage of
// parsing produces or consumes, making them the primary API for working with
// parsed content.
//
// # Records
//
// The [Record] type is the output of a successful parse: one (age, gender,
// event) combination together with the time standards that were present for
// it, keyed by cut-order label:
//
//	rec := model.Record{
//	    Age:    "10",
//	    Gender: "Girls",
//	    Event:  "200 FR SCY",
//	    Standards: map[string]string{"B": "3:09.09", "AAAA": "2:22.79"},
//	}
//
// Records carry JSON and YAML tags and serialize directly.
//
// # Diagnostics
//
// Lines and rows that fail classification or validation become [FlaggedRow]
// values: the tokens as merged, a human-readable reason, and the source line
// number. Flagged rows are diagnostic only and never feed back into parsing.
//
// # Vocabulary
//
// The fixed table vocabulary lives here so every package agrees on it:
//
//   - [CutLabels] - the six stringency tiers, ascending (B through AAAA)
//   - [StrokeCodes], [RelayCodes] - swim discipline and relay type codes
//   - [CourseCodes] - pool length/measurement codes (SCY, SCM, LCM)
//   - [EventPattern] - the grammar of a complete event descriptor
package model
