package parser

import "github.com/ukaji3/xlref-go/pkg/a1"

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	// DensityMin is the minimum share of non-empty cells in the bounding box.
	DensityMin float64
	// CoverageMin is the minimum share of bounding box rows holding data.
	CoverageMin      float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a sheet.
// Returns a list of cell ranges (e.g., "A1:D10") that likely represent tables.
func DetectTables(rows [][]string, params TableDetectionParams, style RefStyle) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells, filledRows := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)

	if nonEmptyCells < params.MinNonemptyCells {
		return nil, nil
	}
	if float64(nonEmptyCells)/float64(totalCells) < params.DensityMin {
		return nil, nil
	}
	if float64(filledRows)/float64(maxRow-minRow+1) < params.CoverageMin {
		return nil, nil
	}

	rangeStr, err := a1.FormatRange(style.cell(minRow, minCol), style.cell(maxRow, maxCol))
	if err != nil {
		return nil, err
	}
	return []string{rangeStr}, nil
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when there is no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells and rows holding at least one
// of them within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) (cells, filledRows int) {
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		filled := false
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				cells++
				filled = true
			}
		}
		if filled {
			filledRows++
		}
	}
	return
}
