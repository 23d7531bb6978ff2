// Package parser extracts cell references from worksheet data.
package parser

import "github.com/ukaji3/xlref-go/pkg/a1"

// RefStyle selects the absolute markers used when rendering references.
type RefStyle struct {
	RowAbs bool
	ColAbs bool
}

// Absolute marks both row and column absolute.
var Absolute = RefStyle{RowAbs: true, ColAbs: true}

// cell builds an a1.Cell from zero-based indices.
func (s RefStyle) cell(rowIdx, colIdx int) a1.Cell {
	return a1.Cell{
		Row:    uint(rowIdx),
		Col:    uint(colIdx),
		RowAbs: s.RowAbs,
		ColAbs: s.ColAbs,
	}
}
