package extractor

import (
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/mcc-extractor/internal/models"
	"github.com/insightdelivered/mcc-extractor/internal/parser"
)

// errTruncateLen caps how much of an engine error reaches the console.
const errTruncateLen = 50

// Extractor drives page-by-page table extraction. Pages are processed
// sequentially and independently: a detection failure on one page never
// stops the pages after it.
type Extractor struct {
	Engine Engine      // table detection engine
	Pages  PageCounter // page-count reader, consulted when the range is open
	Out    io.Writer   // progress and summary text
}

// New returns an Extractor wired to the tabula engine and the default
// page-count chain, reporting progress to stdout.
func New() *Extractor {
	return &Extractor{
		Engine: &TabulaEngine{},
		Pages:  PageCount,
		Out:    os.Stdout,
	}
}

// ResolvePageRange turns optional bounds (zero or negative means unset)
// into a concrete inclusive page range. When a bound is missing, the
// document is asked for its page count; if that query fails, any unset
// bound falls back to page 1 and the run continues.
func (e *Extractor) ResolvePageRange(path string, start, end int) (int, int) {
	if start > 0 && end > 0 {
		return start, end
	}

	count, err := e.Pages(path)
	if err != nil {
		fmt.Fprintf(e.Out, "  Could not determine page count (%v), defaulting to single page\n", err)
		if start <= 0 {
			start = 1
		}
		if end <= 0 {
			end = 1
		}
		return start, end
	}

	fmt.Fprintf(e.Out, "  Auto-detected %d page(s)\n", count)
	if start <= 0 {
		start = 1
	}
	if end <= 0 {
		end = count
	}
	return start, end
}

// Run scans the inclusive page range and accumulates every MCC entry
// found, printing one progress line per page and a summary at the end.
// Duplicate codes keep the value seen last.
func (e *Extractor) Run(path string, start, end int, method models.Method) *models.Report {
	report := models.NewReport()

	fmt.Fprintf(e.Out, "  Scanning pages %d-%d using %s detection\n", start, end, method)

	for page := start; page <= end; page++ {
		fmt.Fprintf(e.Out, "  Page %d... ", page)
		outcome := e.processPage(report, path, page, method)
		report.Record(outcome)

		switch outcome.Status {
		case models.PageSucceeded:
			fmt.Fprintf(e.Out, "found %d MCC codes\n", outcome.CodeCount)
		case models.PageNoTables:
			fmt.Fprintln(e.Out, "no tables found")
		case models.PageNoValidData:
			fmt.Fprintln(e.Out, "no valid MCC data found")
		case models.PageError:
			fmt.Fprintf(e.Out, "error: %s...\n", truncate(outcome.Error, errTruncateLen))
		}
	}

	e.printSummary(report)
	return report
}

// processPage runs detection and field extraction for one page. Engine
// failures are contained here; the caller only sees the outcome.
func (e *Extractor) processPage(report *models.Report, path string, page int, method models.Method) models.PageOutcome {
	detected, err := e.Engine.DetectTables(path, page, method)
	if err != nil {
		return models.PageOutcome{Page: page, Status: models.PageError, Error: err.Error()}
	}
	if len(detected) == 0 {
		return models.PageOutcome{Page: page, Status: models.PageNoTables}
	}

	found := 0
	for i, table := range detected {
		codes := parser.ExtractTable(table, fmt.Sprintf("%d-%d", page, i+1))
		for code, desc := range codes {
			report.Codes[code] = desc
		}
		found += len(codes)
	}
	if found == 0 {
		return models.PageOutcome{Page: page, Status: models.PageNoValidData}
	}
	return models.PageOutcome{Page: page, Status: models.PageSucceeded, CodeCount: found}
}

func (e *Extractor) printSummary(report *models.Report) {
	fmt.Fprintln(e.Out)
	if pages := report.SuccessfulPages(); len(pages) > 0 {
		fmt.Fprintf(e.Out, "  Processed %d page(s) with MCC data: %v\n", len(pages), pages)
	}
	if failed := report.FailedPages(); len(failed) > 0 {
		fmt.Fprintf(e.Out, "  Failed pages: %v\n", failed)
	}
	fmt.Fprintf(e.Out, "  Total MCC codes extracted: %d\n", report.TotalCodes())
}

// truncate shortens s to at most max characters, never cutting through
// a multi-byte rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
