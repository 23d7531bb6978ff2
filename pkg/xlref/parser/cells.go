package parser

import (
	"strconv"

	"github.com/ukaji3/xlref-go/pkg/a1"
	"github.com/ukaji3/xlref-go/pkg/xlref/models"
)

// ExtractCells returns one CellRef per non-empty cell, in row-major order.
// rows is the sheet content as returned by excelize's GetRows.
func ExtractCells(rows [][]string, style RefStyle) ([]models.CellRef, error) {
	var result []models.CellRef
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			ref, err := style.cell(rowIdx, colIdx).Format()
			if err != nil {
				return nil, err
			}
			result = append(result, models.CellRef{
				Ref: ref,
				R:   rowIdx + 1,
				C:   colIdx + 1,
				V:   parseValue(cellValue),
			})
		}
	}
	return result, nil
}

// UsedRange returns the range covering all non-empty cells, or "" for an
// empty sheet.
func UsedRange(rows [][]string, style RefStyle) (string, error) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", nil
	}
	return a1.FormatRange(style.cell(minRow, minCol), style.cell(maxRow, maxCol))
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
