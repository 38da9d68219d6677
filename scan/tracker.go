package scan

import "github.com/tsawler/cutline/model"

// Tracker holds the currently active pair of demographic contexts, one per
// table side. Both start unset. Update is the only mutation path; it is
// called exclusively for context-header lines, and always overwrites both
// sides together so a malformed header can never half-update the pair.
type Tracker struct {
	left  model.Context
	right model.Context
}

// NewTracker returns a tracker with both contexts unset.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update overwrites both contexts unconditionally.
func (t *Tracker) Update(left, right model.Context) {
	t.left = left
	t.right = right
}

// Complete reports whether both contexts are set.
func (t *Tracker) Complete() bool {
	return !t.left.IsZero() && !t.right.IsZero()
}

// Contexts returns the active (left, right) pair.
func (t *Tracker) Contexts() (left, right model.Context) {
	return t.left, t.right
}
