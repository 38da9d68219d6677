package cutline

import (
	"fmt"
	"strings"

	"github.com/tsawler/cutline/classify"
	"github.com/tsawler/cutline/model"
	"github.com/tsawler/cutline/scan"
	"github.com/tsawler/cutline/source"
)

// Result is the outcome of one parse: the records in discovery order and
// the diagnostic list of flagged rows.
type Result struct {
	Records []model.Record
	Flagged []model.FlaggedRow
}

// Parser provides a fluent interface for parsing a time-standards document.
// Each configuration method returns a new Parser instance, making it safe
// for concurrent use and allowing method chaining.
type Parser struct {
	// Source
	path    string
	lines   []model.RawLine
	haveSrc bool // true when lines were supplied directly

	// Configuration
	options ParseOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Parser with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Parser) clone() *Parser {
	return &Parser{
		path:    p.path,
		lines:   p.lines,
		haveSrc: p.haveSrc,
		options: p.options.clone(),
		err:     p.err,
	}
}

// ============================================================================
// Configuration Methods (return new Parser instance)
// ============================================================================

// SkipBanners adds extra banner keywords to skip as title lines, matched
// case-insensitively as substrings. Multiple calls are cumulative.
//
// Example:
//
//	result, err := cutline.Open("doc.txt").SkipBanners("supplement").Parse()
func (p *Parser) SkipBanners(keywords ...string) *Parser {
	newParser := p.clone()
	newParser.options.bannerKeywords = append(newParser.options.bannerKeywords, keywords...)
	return newParser
}

// ============================================================================
// Terminal Operations (execute the parse and return results)
// ============================================================================

// Parse runs the scan and returns the full Result.
//
// An error is returned only for boundary failures (an unreadable input
// file); malformed content is reported through Result.Flagged, never as an
// error.
//
// Example:
//
//	result, err := cutline.Open("standards.txt").Parse()
//	for _, rec := range result.Records {
//	    fmt.Println(rec.Event, rec.Age, rec.Gender)
//	}
func (p *Parser) Parse() (*Result, error) {
	if p.err != nil {
		return nil, p.err
	}

	lines, err := p.resolveLines()
	if err != nil {
		return nil, err
	}

	scanner := scan.NewScannerWithRules(
		classify.DefaultRawRules(p.options.bannerKeywords...),
	)
	records, flagged := scanner.Scan(lines)

	return &Result{Records: records, Flagged: flagged}, nil
}

// Records runs the scan and returns the records and flagged rows directly.
//
// Example:
//
//	records, flagged, err := cutline.Open("standards.txt").Records()
func (p *Parser) Records() ([]model.Record, []model.FlaggedRow, error) {
	result, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}
	return result.Records, result.Flagged, nil
}

// resolveLines loads the line stream from whichever source was configured.
func (p *Parser) resolveLines() ([]model.RawLine, error) {
	if p.haveSrc {
		return p.lines, nil
	}
	if p.path == "" {
		return nil, fmt.Errorf("no input specified")
	}
	return source.FromFile(p.path)
}

// FormatFlagged formats flagged rows as a multi-line string for operator
// review.
//
// Example:
//
//	_, flagged, _ := cutline.Open("standards.txt").Records()
//	fmt.Println(cutline.FormatFlagged(flagged))
func FormatFlagged(flagged []model.FlaggedRow) string {
	if len(flagged) == 0 {
		return ""
	}
	parts := make([]string, len(flagged))
	for i, f := range flagged {
		parts[i] = f.String()
	}
	return strings.Join(parts, "\n")
}
