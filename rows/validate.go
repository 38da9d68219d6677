package rows

import (
	"fmt"

	"github.com/tsawler/cutline/model"
	"github.com/tsawler/cutline/timefmt"
)

// Validate checks a merged row against the 13-column schema. The checks run
// in a fixed order and the first failure wins:
//
//  1. exactly 13 tokens
//  2. token 6 matches the event descriptor grammar
//  3. every non-blank standards token matches the time grammar
//  4. left standards (tokens 0-5), ignoring blanks, are non-increasing
//  5. right standards (tokens 7-12), ignoring blanks, are non-decreasing
//
// Ties are legal on both sides: times must get strictly no faster moving
// toward the sterner-or-equal label.
func Validate(tokens []string) (ok bool, reason string) {
	if len(tokens) != 13 {
		return false, model.ReasonColumnCount
	}

	if !model.IsEventDescriptor(tokens[6]) {
		return false, fmt.Sprintf(model.ReasonEventFormat, tokens[6])
	}

	for i, tok := range tokens {
		if i == 6 || tok == "" {
			continue
		}
		if !timefmt.IsTime(tok) {
			return false, fmt.Sprintf(model.ReasonTimeFormat, tok)
		}
	}

	left := decode(tokens[:6])
	for i := 1; i < len(left); i++ {
		if left[i] > left[i-1] {
			return false, model.ReasonLeftNotDesc
		}
	}

	right := decode(tokens[7:])
	for i := 1; i < len(right); i++ {
		if right[i] < right[i-1] {
			return false, model.ReasonRightNotAsc
		}
	}

	return true, ""
}

// decode parses the tokens into canonical seconds, discarding blanks.
func decode(tokens []string) []float64 {
	vals := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := timefmt.Parse(tok); ok {
			vals = append(vals, v)
		}
	}
	return vals
}
