package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinDescriptionLength is the shortest cleaned description worth keeping.
const MinDescriptionLength = 2

// noiseDescriptions are whole-string patterns that mark a cell as table
// noise rather than a real category name: bare numbers, separator runs,
// column headers, fully parenthesized fragments, and the literal "nan"
// placeholder some extractors emit for missing cells.
var noiseDescriptions = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+$`),
	regexp.MustCompile(`(?i)^[-–\s]*$`),
	regexp.MustCompile(`(?i)^(MCC|Title|Description)$`),
	regexp.MustCompile(`(?i)^\([^)]*\)$`),
	regexp.MustCompile(`(?i)^nan$`),
}

// asciiPunct maps typographic dashes and quotes to their ASCII equivalents.
var asciiPunct = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
)

// CleanDescription normalizes a raw description cell. It collapses
// whitespace, replaces typographic dashes and quotes with ASCII, strips
// stray separators from the edges, and returns "" when the remainder is
// table noise or shorter than MinDescriptionLength. Whitespace means the
// full Unicode class throughout, so non-breaking and thin spaces collapse
// and strip like ASCII ones.
//
// The function is idempotent: cleaning an accepted result again returns
// it unchanged.
func CleanDescription(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	s = asciiPunct.Replace(s)
	s = strings.TrimFunc(s, isSeparator)

	for _, re := range noiseDescriptions {
		if re.MatchString(s) {
			return ""
		}
	}
	if utf8.RuneCountInString(s) < MinDescriptionLength {
		return ""
	}
	return s
}

// isSeparator reports whether r can pad the edge of a description: a
// hyphen, an en-dash, or any Unicode whitespace.
func isSeparator(r rune) bool {
	return r == '-' || r == '–' || unicode.IsSpace(r)
}
