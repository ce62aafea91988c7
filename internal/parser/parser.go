package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/mcc-extractor/internal/models"
)

// codePattern matches a standalone 4-digit MCC anywhere in a cell. The
// word boundaries keep it from matching inside longer digit runs, so
// "12 4789 55" yields "4789" while "47890" yields nothing.
var codePattern = regexp.MustCompile(`\b(\d{4})\b`)

// ExtractTable pulls code-to-description pairs out of one detected table.
// Rows that fail validation are skipped without aborting the table; when
// the same code appears twice, the later row wins.
//
// tableID identifies the table for callers that want to correlate results
// with detection order; it does not affect extraction.
func ExtractTable(table models.Table, tableID string) map[string]string {
	codes := make(map[string]string)
	for _, row := range table.Rows {
		code, desc, ok := ParseRow(row)
		if !ok {
			continue
		}
		codes[code] = desc
	}
	return codes
}

// ParseRow validates a single table row and extracts its MCC entry.
// A row is accepted when its first cell contains a standalone 4-digit code
// (first match wins) and its second cell holds a description that survives
// cleaning. An empty second cell, or the literal placeholder "nan", counts
// as no description.
func ParseRow(row []string) (code, description string, ok bool) {
	if len(row) == 0 {
		return "", "", false
	}

	m := codePattern.FindStringSubmatch(strings.TrimSpace(row[0]))
	if m == nil {
		return "", "", false
	}
	code = m[1]

	if len(row) < 2 {
		return "", "", false
	}
	raw := strings.TrimSpace(row[1])
	if raw == "" || raw == "nan" {
		return "", "", false
	}

	description = CleanDescription(raw)
	if description == "" {
		return "", "", false
	}
	return code, description, true
}
