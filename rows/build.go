package rows

import (
	"github.com/tsawler/cutline/model"
	"github.com/tsawler/cutline/timefmt"
)

// Build converts a validated 13-token row plus the active context pair into
// records. Tokens 0-5 pair with cut-order labels in ascending stringency
// under the left context; tokens 7-12 pair with labels in descending
// stringency under the right context. Blank tokens are omitted, and a side
// whose standards are all blank yields no record at all.
//
// Time values are stored in their canonical normalized spelling.
func Build(tokens []string, left, right model.Context) []model.Record {
	records := make([]model.Record, 0, 2)

	leftStandards := pair(tokens[:6], false)
	if len(leftStandards) > 0 {
		records = append(records, model.Record{
			Age:       left.Age,
			Gender:    left.Gender,
			Event:     tokens[6],
			Standards: leftStandards,
		})
	}

	rightStandards := pair(tokens[7:], true)
	if len(rightStandards) > 0 {
		records = append(records, model.Record{
			Age:       right.Age,
			Gender:    right.Gender,
			Event:     tokens[6],
			Standards: rightStandards,
		})
	}

	return records
}

// pair maps six standards tokens onto the cut-order labels, ascending by
// default or descending when reversed, keeping only non-blank entries.
func pair(tokens []string, reversed bool) map[string]string {
	standards := make(map[string]string, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		label := model.CutLabels[i]
		if reversed {
			label = model.CutLabels[len(model.CutLabels)-1-i]
		}
		standards[label] = timefmt.Normalize(tok)
	}
	if len(standards) == 0 {
		return nil
	}
	return standards
}
