package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlref-go/pkg/a1"
	"github.com/ukaji3/xlref-go/pkg/xlref/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// DefinedNameReader lists the defined names of a workbook.
type DefinedNameReader interface {
	GetDefinedName() []excelize.DefinedName
}

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas. Each area's Ref is
// re-rendered as an absolute, sheet-qualified range.
func ExtractPrintAreas(f DefinedNameReader) (map[string][]models.PrintArea, error) {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		areas, err := parsePrintAreaReference(dn.RefersTo)
		if err != nil {
			return nil, fmt.Errorf("print area %q: %w", dn.RefersTo, err)
		}
		for sheetName, sheetAreas := range areas {
			result[sheetName] = append(result[sheetName], sheetAreas...)
		}
	}

	return result, nil
}

// parsePrintAreaReference parses a print area reference string into areas
// keyed by the sheet each part names.
// Format: 'Sheet Name'!$A$1:$D$10 or Sheet1!$A$1:$D$10,Sheet1!$F$1:$G$4
func parsePrintAreaReference(ref string) (map[string][]models.PrintArea, error) {
	areas := make(map[string][]models.PrintArea)

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := unquoteSheetName(part[:idx])
		if sheet == "" {
			continue
		}

		area := parseRangeToArea(part[idx+1:])
		if area == nil {
			continue
		}
		first := Absolute.cell(area.R1-1, area.C1-1)
		last := Absolute.cell(area.R2-1, area.C2-1)
		formatted, err := a1.FormatSheetRange(sheet, first, last)
		if err != nil {
			return nil, err
		}
		area.Ref = formatted
		areas[sheet] = append(areas[sheet], *area)
	}

	return areas, nil
}

func unquoteSheetName(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	return s
}

// parseRangeToArea parses a range string like $A$1:$D$10 or $B$2 to PrintArea.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
