package models

import (
	"sort"
	"strings"
)

// Method selects the table detection strategy.
type Method string

const (
	MethodLattice Method = "lattice" // ruled-line detection
	MethodStream  Method = "stream"  // whitespace-alignment detection
)

// ParseMethod normalizes a user-supplied method name. The known methods are
// matched case-insensitively; anything else is passed through uninterpreted
// for the detection engine to deal with.
func ParseMethod(s string) Method {
	switch strings.ToLower(s) {
	case "lattice":
		return MethodLattice
	case "stream":
		return MethodStream
	}
	return Method(s)
}

// Table is a single detected table: a grid of text cells, rows by columns.
// Tables are transient; they exist only between detection and field
// extraction and are never persisted.
type Table struct {
	Rows [][]string
}

// PageStatus classifies what extraction did with one page.
type PageStatus string

const (
	PageSucceeded   PageStatus = "succeeded"
	PageNoTables    PageStatus = "no-tables-found"
	PageNoValidData PageStatus = "no-valid-data"
	PageError       PageStatus = "error"
)

// PageOutcome records the result of processing a single page.
type PageOutcome struct {
	Page      int        `json:"page"`
	Status    PageStatus `json:"status"`
	CodeCount int        `json:"codeCount,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Report accumulates extraction results across a page range. Codes maps
// 4-digit MCC strings to cleaned descriptions; a code seen more than once
// keeps the value written last.
type Report struct {
	Codes    map[string]string `json:"codes"`
	Outcomes []PageOutcome     `json:"outcomes,omitempty"`
}

// NewReport returns an empty report ready to accumulate codes.
func NewReport() *Report {
	return &Report{Codes: make(map[string]string)}
}

// Record appends a page outcome.
func (r *Report) Record(o PageOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// SuccessfulPages returns the distinct pages that yielded at least one
// code, sorted ascending.
func (r *Report) SuccessfulPages() []int {
	seen := make(map[int]bool)
	var pages []int
	for _, o := range r.Outcomes {
		if o.Status == PageSucceeded && !seen[o.Page] {
			seen[o.Page] = true
			pages = append(pages, o.Page)
		}
	}
	sort.Ints(pages)
	return pages
}

// FailedPages returns the pages where the detection engine failed, in
// processing order.
func (r *Report) FailedPages() []int {
	var pages []int
	for _, o := range r.Outcomes {
		if o.Status == PageError {
			pages = append(pages, o.Page)
		}
	}
	return pages
}

// TotalCodes returns the number of distinct codes extracted so far.
func (r *Report) TotalCodes() int {
	return len(r.Codes)
}
