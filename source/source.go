// Package source is the boundary to the external text-extraction
// collaborator. It turns extracted document text into the ordered
// [model.RawLine] stream the core parses.
//
// The collaborator is assumed to deliver one string per visual line with
// horizontal spacing preserved. This package only splits, numbers, and
// normalizes those lines; it never interprets them. I/O failure is the one
// error path - line content, however malformed, is the core's concern and
// is reported there as flagged rows, not errors.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/cutline/model"
)

// FromFile reads a text file into raw lines. Line numbers are 1-indexed.
func FromFile(path string) ([]model.RawLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	lines, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// FromReader reads raw lines from r. CRLF line endings are tolerated.
func FromReader(r io.Reader) ([]model.RawLine, error) {
	var lines []model.RawLine

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		lines = append(lines, model.RawLine{
			Number: n,
			Text:   normalize(scanner.Text()),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return lines, nil
}

// FromStrings wraps an in-memory line slice, numbering from 1.
func FromStrings(texts []string) []model.RawLine {
	lines := make([]model.RawLine, len(texts))
	for i, text := range texts {
		lines[i] = model.RawLine{Number: i + 1, Text: normalize(text)}
	}
	return lines
}

// normalize puts a line into NFC form and strips a stray carriage return.
// Extractors differ in whether they emit composed or decomposed Unicode;
// classification regexes expect composed forms.
func normalize(text string) string {
	return norm.NFC.String(strings.TrimSuffix(text, "\r"))
}
