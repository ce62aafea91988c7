package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONWriter serializes extracted MCC codes as a JSON object keyed by
// code, keys sorted ascending, 2-space indentation.
type JSONWriter struct{}

// WriteToFile writes the mapping to a file at the given path. An empty or
// nil mapping still produces a valid file containing {}.
func (w *JSONWriter) WriteToFile(path string, codes map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, codes)
}

// Write writes the mapping as indented JSON to the given writer.
func (w *JSONWriter) Write(out io.Writer, codes map[string]string) error {
	if codes == nil {
		codes = map[string]string{}
	}

	data, err := json.MarshalIndent(codes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	data = append(data, '\n')

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
