// Package cutline provides a fluent API for parsing swim time-standard
// tables out of noisy, layout-approximate extracted text.
//
// Basic usage:
//
//	records, flagged, err := cutline.Open("standards.txt").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(flagged) > 0 {
//	    log.Println("Flagged:", cutline.FormatFlagged(flagged))
//	}
//
// With options:
//
//	result, err := cutline.FromLines(lines).
//	    SkipBanners("short course supplement").
//	    Parse()
//
// For advanced use cases, the lower-level scan, rows, tokens, classify, and
// timefmt packages are also available.
package cutline

import (
	"github.com/tsawler/cutline/model"
	"github.com/tsawler/cutline/source"
)

// Open prepares a Parser over the text file at path. The file is not read
// until a terminal operation such as Parse or Records runs.
//
// Example:
//
//	records, flagged, err := cutline.Open("standards.txt").Records()
func Open(path string) *Parser {
	return &Parser{
		path:    path,
		options: defaultOptions(),
	}
}

// FromLines creates a Parser over in-memory text lines, numbered from 1.
// This is useful when the extraction collaborator hands lines over
// directly.
//
// Example:
//
//	result, err := cutline.FromLines(lines).Parse()
func FromLines(lines []string) *Parser {
	return FromRawLines(source.FromStrings(lines))
}

// FromRawLines creates a Parser over an already-numbered line stream.
func FromRawLines(lines []model.RawLine) *Parser {
	return &Parser{
		lines:   lines,
		haveSrc: true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := cutline.Must(cutline.Open("standards.txt").Parse())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
