package parser

import (
	"testing"

	"github.com/insightdelivered/mcc-extractor/internal/models"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name     string
		row      []string
		wantCode string
		wantDesc string
		wantOK   bool
	}{
		{
			name:     "plain code and description",
			row:      []string{"4722", "Travel Agencies and Tour Operators"},
			wantCode: "4722",
			wantDesc: "Travel Agencies and Tour Operators",
			wantOK:   true,
		},
		{
			name:     "description cleaned before recording",
			row:      []string{"4722", "Travel Agencies — "},
			wantCode: "4722",
			wantDesc: "Travel Agencies",
			wantOK:   true,
		},
		{
			name:     "first standalone 4-digit run wins",
			row:      []string{"12 4789 55", "Transportation Services"},
			wantCode: "4789",
			wantDesc: "Transportation Services",
			wantOK:   true,
		},
		{
			name:     "code embedded in label",
			row:      []string{"MCC 4511", "Airlines"},
			wantCode: "4511",
			wantDesc: "Airlines",
			wantOK:   true,
		},
		{
			name:   "nan description skipped",
			row:    []string{"4816", "nan"},
			wantOK: false,
		},
		{
			name:   "empty description skipped",
			row:    []string{"4816", ""},
			wantOK: false,
		},
		{
			name:   "whitespace description skipped",
			row:    []string{"4816", "   "},
			wantOK: false,
		},
		{
			name:   "missing second cell skipped",
			row:    []string{"4816"},
			wantOK: false,
		},
		{
			name:   "empty row skipped",
			row:    []string{},
			wantOK: false,
		},
		{
			name:   "header row skipped",
			row:    []string{"MCC", "Description"},
			wantOK: false,
		},
		{
			name:   "three digit code rejected",
			row:    []string{"471", "Freight"},
			wantOK: false,
		},
		{
			name:   "five digit run rejected",
			row:    []string{"47890", "Freight"},
			wantOK: false,
		},
		{
			name:   "description rejected by cleaner",
			row:    []string{"4411", "(Continued)"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, desc, ok := ParseRow(tt.row)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if code != tt.wantCode {
				t.Errorf("code: got %q, want %q", code, tt.wantCode)
			}
			if desc != tt.wantDesc {
				t.Errorf("description: got %q, want %q", desc, tt.wantDesc)
			}
		})
	}
}

func TestExtractTable(t *testing.T) {
	table := models.Table{Rows: [][]string{
		{"MCC", "Description"},
		{"4722", "Travel Agencies — "},
		{"4814", "Telecommunication Services"},
		{"nan", "nan"},
		{"4816", "nan"},
		{"12 4789 55", "Transportation Services"},
		{"9999"},
	}}

	got := ExtractTable(table, "1-1")

	want := map[string]string{
		"4722": "Travel Agencies",
		"4814": "Telecommunication Services",
		"4789": "Transportation Services",
	}

	if len(got) != len(want) {
		t.Fatalf("got %d entries (%v), want %d", len(got), got, len(want))
	}
	for code, desc := range want {
		if got[code] != desc {
			t.Errorf("code %s: got %q, want %q", code, got[code], desc)
		}
	}
}

func TestExtractTableDuplicateCodeLastWriteWins(t *testing.T) {
	table := models.Table{Rows: [][]string{
		{"5411", "Grocery Stores"},
		{"5411", "Grocery Stores and Supermarkets"},
	}}

	got := ExtractTable(table, "2-1")

	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got["5411"] != "Grocery Stores and Supermarkets" {
		t.Errorf("got %q, want the later description", got["5411"])
	}
}

func TestExtractTableEmpty(t *testing.T) {
	got := ExtractTable(models.Table{}, "3-1")
	if len(got) != 0 {
		t.Errorf("expected no entries from an empty table, got %v", got)
	}
}
