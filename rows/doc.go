// Package rows validates merged token rows against the 13-column standards
// schema and converts valid rows into records.
//
// A data row is six left-side times, one event descriptor, and six
// right-side times. Three concerns live here:
//
//   - [Reassembler] fuses a relay row whose course code was pushed onto the
//     next physical line by the extractor (a "split relay row")
//   - [Validate] checks column count, field grammar, and the monotonic
//     ordering invariant, returning the first failure's reason
//   - [Build] pairs the validated times with cut-order labels under the
//     active demographic contexts and emits zero, one, or two records
package rows
