package extractor

import (
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageCounter reports how many pages a PDF document has.
type PageCounter func(path string) (int, error)

// PageCount returns the page count of the PDF at path. It asks pdfcpu
// first and falls back to a second reader, since the two parsers accept
// different subsets of malformed files.
func PageCount(path string) (int, error) {
	count, primaryErr := api.PageCountFile(path)
	if primaryErr == nil && count > 0 {
		return count, nil
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		if primaryErr != nil {
			return 0, fmt.Errorf("page count failed: %v (fallback: %v)", primaryErr, err)
		}
		return 0, fmt.Errorf("page count failed: %w", err)
	}
	defer f.Close()

	if n := r.NumPage(); n > 0 {
		return n, nil
	}
	return 0, fmt.Errorf("document %s reports no pages", path)
}
