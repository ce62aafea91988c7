package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
)

// CSVWriter writes extracted MCC codes as code,description rows sorted
// by code.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes the mapping to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, codes map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, codes)
}

// Write writes the mapping in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, codes map[string]string) error {
	cw := csv.NewWriter(out)

	if w.IncludeHeader {
		if err := cw.Write([]string{"MCC", "Description"}); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, code := range sortedCodes(codes) {
		if err := cw.Write([]string{code, codes[code]}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func sortedCodes(codes map[string]string) []string {
	keys := make([]string, 0, len(codes))
	for code := range codes {
		keys = append(keys, code)
	}
	sort.Strings(keys)
	return keys
}
