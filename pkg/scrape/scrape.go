// Package scrape turns raw upstream payloads (HTML pages and JSON
// endpoints) into normalized market records.
//
// The upstream has no versioned schema, so every parser here is defensive:
// it operates on a bounded window of the document anchored at a named
// marker, treats absent or malformed fields as missing values instead of
// failing, and runs monetary fields through a caller-supplied conversion
// pass before returning. Extraction is substring and pattern based rather
// than DOM based; that trade-off (throughput over robustness to markup
// drift) is intentional, and the per-page markers exist so that drift
// produces a clear failure instead of a silent wrong answer.
package scrape

import (
	"strconv"
	"strings"
)

// ConvertFunc converts a USD-denominated value into the caller's requested
// output currency. Parsers apply it to monetary fields only.
type ConvertFunc func(usd float64) float64

// Identity returns its input unchanged. Used when the caller wants the
// default USD denomination.
func Identity(v float64) float64 { return v }

// window returns the part of doc from the first occurrence of marker
// onward. An absent marker yields the empty string, so downstream matching
// sees zero rows instead of scanning an unexpected document.
func window(doc, marker string) string {
	i := strings.Index(doc, marker)
	if i < 0 {
		return ""
	}
	return doc[i:]
}

// windowBetween bounds doc between the first occurrence of start and the
// next occurrence of end after it. Either marker missing degrades to the
// widest window that is still anchored.
func windowBetween(doc, start, end string) string {
	w := window(doc, start)
	if w == "" {
		return ""
	}
	if j := strings.Index(w, end); j >= 0 {
		return w[:j]
	}
	return w
}

var numberCleaner = strings.NewReplacer("$", "", ",", "", "%", "", "*", "", " ", " ")

// parseFloat reads a number out of scraped text, stripping the currency
// decorations the site wraps around values. Malformed or placeholder input
// ("-", "?") yields 0.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(numberCleaner.Replace(s))
	if s == "" || s == "-" || s == "?" || s == "None" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInt is parseFloat for integer cells (ranks, counts).
func parseInt(s string) int {
	return int(parseFloat(s))
}

// stripTags removes markup from a table cell, leaving its text content.
func stripTags(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
