package parser

import (
	"regexp"
	"strings"
)

type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

func word(w, replacement string) rewrite {
	return rewrite{pattern: regexp.MustCompile(`(?i)\b` + w + `\b`), replacement: replacement}
}

// wordRewrites run in order, before comma and PO Box folding.
var wordRewrites = []rewrite{
	word("STREET", "ST"),
	word("AVENUE", "AVE"),
	word("BOULEVARD", "BLVD"),
	word("ROAD", "RD"),
	word("DRIVE", "DR"),
	word("LANE", "LN"),
	word("COURT", "CT"),
	word("PLACE", "PL"),
	word("NORTH", "N"),
	word("SOUTH", "S"),
	word("EAST", "E"),
	word("WEST", "W"),
	word("APARTMENT", "APT"),
	word("SUITE", "STE"),
	word("UNIT", "UNIT"),
	word("FLOOR", "FL"),
}

var commaSpacing = regexp.MustCompile(`\s*,\s*`)

var poBoxRewrites = []rewrite{
	{regexp.MustCompile(`(?i)\bP\.?O\.?\s*BOX\b`), "PO BOX"},
	{regexp.MustCompile(`(?i)\bPOST\s*OFFICE\s*BOX\b`), "PO BOX"},
	{regexp.MustCompile(`(?i)\bPO\s*BOX\b`), "PO BOX"},
}

// Clean collapses whitespace runs, trims and upper-cases text.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToUpper(strings.Join(strings.Fields(text), " "))
}

// Preprocess cleans address and folds common spellings into the short
// forms the tagger expects.
func Preprocess(address string) string {
	processed := Clean(address)
	if processed == "" {
		return ""
	}
	for _, r := range wordRewrites {
		processed = r.pattern.ReplaceAllString(processed, r.replacement)
	}
	processed = commaSpacing.ReplaceAllString(processed, ", ")
	for _, r := range poBoxRewrites {
		processed = r.pattern.ReplaceAllString(processed, r.replacement)
	}
	return processed
}
