package rows

import "github.com/tsawler/cutline/model"

// Reassembler detects and repairs split relay rows: a 14-token row whose
// event descriptor is missing its course code because the extractor pushed
// the code onto the following physical line.
type Reassembler struct{}

// NewReassembler returns a Reassembler.
func NewReassembler() *Reassembler {
	return &Reassembler{}
}

// Splittable reports whether tokens looks like the first line of a split
// relay row: exactly 14 tokens where token 6 is an all-digit distance and
// token 7 is a relay code with no course code after it.
func (r *Reassembler) Splittable(tokens []string) bool {
	return len(tokens) == 14 &&
		allDigits(tokens[6]) &&
		model.RelayCodes[tokens[7]]
}

// Fuse attempts to reassemble a split relay row from tokens and the
// independently merged tokens of the immediately following line. The next
// line must consist of exactly one token, a valid course code. On success
// it returns the rebuilt 13-token row: tokens 0-5, the fused event
// descriptor, then tokens 8-13. The caller advances its cursor past the
// consumed lookahead line.
//
// If the lookahead does not match, Fuse returns ok=false and the 14-token
// row is left to fail validation's column-count check.
func (r *Reassembler) Fuse(tokens, next []string) (row []string, ok bool) {
	if !r.Splittable(tokens) {
		return nil, false
	}
	if len(next) != 1 || !model.CourseCodes[next[0]] {
		return nil, false
	}

	event := tokens[6] + " " + tokens[7] + " " + next[0]

	row = make([]string, 0, 13)
	row = append(row, tokens[:6]...)
	row = append(row, event)
	row = append(row, tokens[8:]...)
	return row, true
}

func allDigits(s string) bool {
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
