package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/cutline/model"
	"github.com/tsawler/cutline/source"
)

func TestTracker(t *testing.T) {
	tr := NewTracker()

	if tr.Complete() {
		t.Fatal("new tracker reports complete")
	}

	left := model.Context{Age: "10", Gender: "Girls"}
	right := model.Context{Age: "10", Gender: "Boys"}
	tr.Update(left, right)

	if !tr.Complete() {
		t.Fatal("tracker incomplete after update")
	}
	gotLeft, gotRight := tr.Contexts()
	if gotLeft != left || gotRight != right {
		t.Errorf("Contexts() = %v, %v, want %v, %v", gotLeft, gotRight, left, right)
	}

	// A later header overwrites both sides unconditionally.
	left2 := model.Context{Age: "11-12", Gender: "Boys"}
	right2 := model.Context{Age: "11-12", Gender: "Girls"}
	tr.Update(left2, right2)
	gotLeft, gotRight = tr.Contexts()
	if gotLeft != left2 || gotRight != right2 {
		t.Errorf("Contexts() after second update = %v, %v", gotLeft, gotRight)
	}
}

// TestScanDocument is the basic end-to-end scenario: a title banner, a
// context header, a cut-order header, one data row, a blank line, and one
// junk line yield exactly two records and one flagged row.
func TestScanDocument(t *testing.T) {
	lines := source.FromStrings([]string{
		"USA Swimming 2024-2028 Single Age Motivational Standards",
		"10 Girls      Event      10 Boys",
		"B BB A AA AAA AAAA Event AAAA AAA AA A BB B",
		"3:09.09 2:55.89 2:42.59 2:35.99 2:29.39 2:22.79 200 FR SCY 2:16.19 2:22.59 2:35.39 2:48.19 3:00.99 3:13.79",
		"   ",
		"unrecognizable text",
	})

	records, flagged := NewScanner().Scan(lines)

	wantRecords := []model.Record{
		{
			Age: "10", Gender: "Girls", Event: "200 FR SCY",
			Standards: map[string]string{
				"B": "3:09.09", "BB": "2:55.89", "A": "2:42.59",
				"AA": "2:35.99", "AAA": "2:29.39", "AAAA": "2:22.79",
			},
		},
		{
			Age: "10", Gender: "Boys", Event: "200 FR SCY",
			Standards: map[string]string{
				"AAAA": "2:16.19", "AAA": "2:22.59", "AA": "2:35.39",
				"A": "2:48.19", "BB": "3:00.99", "B": "3:13.79",
			},
		},
	}
	if diff := cmp.Diff(wantRecords, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	if len(flagged) != 1 {
		t.Fatalf("got %d flagged rows, want 1: %v", len(flagged), flagged)
	}
	if flagged[0].Line != 6 {
		t.Errorf("flagged line = %d, want 6", flagged[0].Line)
	}
	if flagged[0].Reason != model.ReasonColumnCount {
		t.Errorf("flagged reason = %q, want %q", flagged[0].Reason, model.ReasonColumnCount)
	}
}

// TestScanSplitRelayRow checks that a 14-token relay row followed by a line
// holding only the course code fuses into one logical row, consuming the
// lookahead line.
func TestScanSplitRelayRow(t *testing.T) {
	lines := source.FromStrings([]string{
		"11-12 Girls   Event   11-12 Boys",
		"2:19.99 2:09.79 1:59.59 1:54.49 1:49.39 1:44.29 200 FR-R 1:39.19 1:44.29 1:54.49 2:04.69 2:14.89 2:25.09",
		"SCY",
	})

	records, flagged := NewScanner().Scan(lines)

	if len(flagged) != 0 {
		t.Fatalf("got %d flagged rows, want 0: %v", len(flagged), flagged)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Event != "200 FR-R SCY" {
			t.Errorf("record event = %q, want %q", rec.Event, "200 FR-R SCY")
		}
	}
	if records[0].Gender != "Girls" || records[1].Gender != "Boys" {
		t.Errorf("record genders = %q, %q, want Girls, Boys",
			records[0].Gender, records[1].Gender)
	}
}

// TestScanSplitRelayRowBadLookahead: when the following line is not a lone
// course code, the 14-token row fails the column-count check and the
// lookahead line is scanned normally.
func TestScanSplitRelayRowBadLookahead(t *testing.T) {
	lines := source.FromStrings([]string{
		"11-12 Girls   Event   11-12 Boys",
		"2:19.99 2:09.79 1:59.59 1:54.49 1:49.39 1:44.29 200 FR-R 1:39.19 1:44.29 1:54.49 2:04.69 2:14.89 2:25.09",
		"not a course code",
	})

	records, flagged := NewScanner().Scan(lines)

	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
	if len(flagged) != 2 {
		t.Fatalf("got %d flagged rows, want 2: %v", len(flagged), flagged)
	}
	if flagged[0].Reason != model.ReasonColumnCount {
		t.Errorf("first flagged reason = %q, want %q", flagged[0].Reason, model.ReasonColumnCount)
	}
}

// TestScanMissingContext: a data row before any context header is flagged
// and dropped, never buffered for retroactive context application.
func TestScanMissingContext(t *testing.T) {
	lines := source.FromStrings([]string{
		"3:09.09 2:55.89 2:42.59 2:35.99 2:29.39 2:22.79 200 FR SCY 2:16.19 2:22.59 2:35.39 2:48.19 3:00.99 3:13.79",
		"10 Girls      Event      10 Boys",
	})

	records, flagged := NewScanner().Scan(lines)

	if len(records) != 0 {
		t.Fatalf("got %d records, want 0 (row must not be retried)", len(records))
	}
	if len(flagged) != 1 {
		t.Fatalf("got %d flagged rows, want 1", len(flagged))
	}
	if flagged[0].Reason != model.ReasonMissingContext {
		t.Errorf("flagged reason = %q, want %q", flagged[0].Reason, model.ReasonMissingContext)
	}
	if flagged[0].Line != 1 {
		t.Errorf("flagged line = %d, want 1", flagged[0].Line)
	}
}

// TestScanContextSwitch checks that a later context header re-labels
// subsequent rows without disturbing earlier records.
func TestScanContextSwitch(t *testing.T) {
	lines := source.FromStrings([]string{
		"10 Girls      Event      10 Boys",
		"3:09.09 2:55.89 2:42.59 2:35.99 2:29.39 2:22.79 200 FR SCY 2:16.19 2:22.59 2:35.39 2:48.19 3:00.99 3:13.79",
		"11-12 Girls   Event   11-12 Boys",
		"3:09.09 2:55.89 2:42.59 2:35.99 2:29.39 2:22.79 200 FR SCY 2:16.19 2:22.59 2:35.39 2:48.19 3:00.99 3:13.79",
	})

	records, flagged := NewScanner().Scan(lines)

	if len(flagged) != 0 {
		t.Fatalf("got %d flagged rows, want 0: %v", len(flagged), flagged)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	wantAges := []string{"10", "10", "11-12", "11-12"}
	for i, rec := range records {
		if rec.Age != wantAges[i] {
			t.Errorf("record %d age = %q, want %q", i, rec.Age, wantAges[i])
		}
	}
}

// TestScanMalformedRowDoesNotCorruptContext: a junk line between valid rows
// is flagged but the active context survives.
func TestScanMalformedRowDoesNotCorruptContext(t *testing.T) {
	lines := source.FromStrings([]string{
		"10 Girls      Event      10 Boys",
		"totally corrupt line with 9 tokens not matching anything here",
		"3:09.09 2:55.89 2:42.59 2:35.99 2:29.39 2:22.79 200 FR SCY 2:16.19 2:22.59 2:35.39 2:48.19 3:00.99 3:13.79",
	})

	records, flagged := NewScanner().Scan(lines)

	if len(flagged) != 1 {
		t.Fatalf("got %d flagged rows, want 1", len(flagged))
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestScanEmptyStream(t *testing.T) {
	records, flagged := NewScanner().Scan(nil)
	if len(records) != 0 || len(flagged) != 0 {
		t.Errorf("empty stream produced records=%v flagged=%v", records, flagged)
	}
}
