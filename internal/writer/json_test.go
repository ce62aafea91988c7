package writer

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONWriter_Write(t *testing.T) {
	codes := map[string]string{
		"4722": "Travel Agencies and Tour Operators",
		"0742": "Veterinary Services",
		"9999": "Special Purpose",
	}

	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, codes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	// Keys come out sorted ascending.
	i0742 := strings.Index(output, `"0742"`)
	i4722 := strings.Index(output, `"4722"`)
	i9999 := strings.Index(output, `"9999"`)
	if i0742 < 0 || i4722 < 0 || i9999 < 0 {
		t.Fatalf("missing keys in output:\n%s", output)
	}
	if !(i0742 < i4722 && i4722 < i9999) {
		t.Errorf("keys not sorted:\n%s", output)
	}

	// 2-space indentation.
	if !strings.Contains(output, "\n  \"0742\": ") {
		t.Errorf("expected 2-space indent:\n%s", output)
	}

	// Round-trip yields the original mapping.
	var back map[string]string
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(back) != len(codes) {
		t.Fatalf("round-trip size: got %d, want %d", len(back), len(codes))
	}
	for code, desc := range codes {
		if back[code] != desc {
			t.Errorf("round-trip %s: got %q, want %q", code, back[code], desc)
		}
	}
}

func TestJSONWriter_WriteEmpty(t *testing.T) {
	tests := []struct {
		name  string
		codes map[string]string
	}{
		{"empty map", map[string]string{}},
		{"nil map", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := &JSONWriter{}
			if err := w.Write(&buf, tt.codes); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.TrimSpace(buf.String()); got != "{}" {
				t.Errorf("got %q, want {}", got)
			}
		})
	}
}

func TestJSONWriter_WriteToFile(t *testing.T) {
	codes := map[string]string{"5411": "Grocery Stores and Supermarkets"}
	path := filepath.Join(t.TempDir(), "mcc_data_output.json")

	w := &JSONWriter{}
	if err := w.WriteToFile(path, codes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var back map[string]string
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if back["5411"] != codes["5411"] {
		t.Errorf("got %q, want %q", back["5411"], codes["5411"])
	}
}

func TestJSONWriter_WriteToFileBadPath(t *testing.T) {
	w := &JSONWriter{}
	err := w.WriteToFile(filepath.Join(t.TempDir(), "missing-dir", "out.json"), nil)
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

// failingWriter always errors, standing in for a full disk.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestJSONWriter_WriteFailureSurfaced(t *testing.T) {
	w := &JSONWriter{}
	if err := w.Write(failingWriter{}, map[string]string{"4722": "Travel Agencies"}); err == nil {
		t.Fatal("expected write error to be returned")
	}
}
