package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLabelRank(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"B", 0},
		{"BB", 1},
		{"AAAA", 5},
		{"C", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := LabelRank(tt.label); got != tt.want {
			t.Errorf("LabelRank(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestSortedLabels(t *testing.T) {
	rec := Record{
		Standards: map[string]string{
			"AAAA": "2:22.79",
			"B":    "3:09.09",
			"AA":   "2:35.99",
		},
	}
	want := []string{"B", "AA", "AAAA"}
	if diff := cmp.Diff(want, rec.SortedLabels()); diff != "" {
		t.Errorf("SortedLabels mismatch (-want +got):\n%s", diff)
	}
}

func TestIsEventDescriptor(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want bool
	}{
		{"individual stroke", "200 FR SCY", true},
		{"relay", "400 MED-R LCM", true},
		{"two digit distance", "50 FL SCM", true},
		{"unknown stroke", "200 FREE SCY", false},
		{"missing course", "200 FR", false},
		{"one digit distance", "5 FR SCY", false},
		{"lowercase", "200 fr scy", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEventDescriptor(tt.tok); got != tt.want {
				t.Errorf("IsEventDescriptor(%q) = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestContextIsZero(t *testing.T) {
	if !(Context{}).IsZero() {
		t.Error("zero context reports set")
	}
	if (Context{Age: "10", Gender: "Girls"}).IsZero() {
		t.Error("populated context reports unset")
	}
}

func TestFlaggedRowString(t *testing.T) {
	f := FlaggedRow{
		Tokens: []string{"junk", "row"},
		Reason: ReasonColumnCount,
		Line:   7,
	}
	got := f.String()
	for _, want := range []string{"line 7", ReasonColumnCount, "junk row"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}
