package extractor

import (
	"fmt"

	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	"github.com/tsawler/tabula/text"

	"github.com/insightdelivered/mcc-extractor/internal/models"
)

// Engine detects tables on a single PDF page. Implementations own the
// whole path from file to cell grids, so every page attempt stands alone.
type Engine interface {
	DetectTables(path string, pageNum int, method models.Method) ([]models.Table, error)
}

// TabulaEngine runs the tabula geometric detector over the text fragments
// of one page. The detection method selects the detector configuration:
// lattice relies on visible ruling lines, stream on whitespace alignment.
type TabulaEngine struct{}

// DetectTables opens the document, reads the requested 1-based page and
// returns every table the detector finds on it, in detection order.
func (e *TabulaEngine) DetectTables(path string, pageNum int, method models.Method) ([]models.Table, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	page, err := r.GetPage(pageNum - 1)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNum, err)
	}

	fragments, err := r.ExtractTextFragments(page)
	if err != nil {
		return nil, fmt.Errorf("page %d text: %w", pageNum, err)
	}

	width, _ := page.Width()
	height, _ := page.Height()

	mp := model.NewPage(width, height)
	mp.Number = pageNum
	mp.RawText = toModelFragments(fragments)

	detector := tables.NewGeometricDetector()
	if err := detector.Configure(detectorConfig(method)); err != nil {
		return nil, fmt.Errorf("configure detector: %w", err)
	}

	detected, err := detector.Detect(mp)
	if err != nil {
		return nil, fmt.Errorf("page %d detect: %w", pageNum, err)
	}

	grids := make([]models.Table, 0, len(detected))
	for _, t := range detected {
		grids = append(grids, toGrid(t))
	}
	return grids, nil
}

// detectorConfig maps a detection method onto the detector configuration.
// Unknown methods keep the engine defaults, which combine both strategies.
func detectorConfig(method models.Method) tables.Config {
	cfg := tables.DefaultConfig()
	switch method {
	case models.MethodLattice:
		cfg.UseLines = true
		cfg.UseWhitespace = false
	case models.MethodStream:
		cfg.UseLines = false
		cfg.UseWhitespace = true
	}
	return cfg
}

func toModelFragments(fragments []text.TextFragment) []model.TextFragment {
	result := make([]model.TextFragment, len(fragments))
	for i, f := range fragments {
		result[i] = model.TextFragment{
			Text:     f.Text,
			BBox:     model.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		}
	}
	return result
}

func toGrid(t *model.Table) models.Table {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell.Text)
		}
		rows = append(rows, cells)
	}
	return models.Table{Rows: rows}
}
