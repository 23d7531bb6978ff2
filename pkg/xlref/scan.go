package xlref

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlref-go/pkg/xlref/models"
	"github.com/ukaji3/xlref-go/pkg/xlref/parser"
	"github.com/xuri/excelize/v2"
)

// Scan opens the workbook at path and reports its cell references.
func Scan(path string, opts Options) (*models.WorkbookRefs, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return ScanFile(f, filepath.Base(path), opts)
}

// Workbook is the part of *excelize.File a scan reads.
type Workbook interface {
	GetSheetList() []string
	GetRows(sheet string, opts ...excelize.Options) ([][]string, error)
	GetDefinedName() []excelize.DefinedName
}

// ScanFile reports the cell references of an already opened workbook.
// A component that fails on one sheet is logged and left empty; the scan
// continues with the remaining components and sheets.
func ScanFile(f Workbook, bookName string, opts Options) (*models.WorkbookRefs, error) {
	log := opts.logger()
	style := opts.Style()
	sheets := make(map[string]models.SheetRefs)

	warn := func(sheetName, component string, err error) {
		scanErr := NewScanError(sheetName, component, err)
		log.Warn("skipping component", "sheet", sheetName, "component", component, "err", scanErr)
	}

	for _, sheetName := range f.GetSheetList() {
		var sheet models.SheetRefs

		rows, err := f.GetRows(sheetName)
		if err != nil {
			warn(sheetName, "rows", err)
			sheets[sheetName] = sheet
			continue
		}

		if sheet.Cells, err = parser.ExtractCells(rows, style); err != nil {
			warn(sheetName, "cells", err)
		}

		if opts.Mode != ModeCells {
			if sheet.UsedRange, err = parser.UsedRange(rows, style); err != nil {
				warn(sheetName, "used_range", err)
			}
		}

		if opts.ShouldIncludeTables() {
			if sheet.TableCandidates, err = parser.DetectTables(rows, opts.Tables, style); err != nil {
				warn(sheetName, "tables", err)
			}
		}

		log.Debug("scanned sheet", "sheet", sheetName, "cells", len(sheet.Cells))
		sheets[sheetName] = sheet
	}

	if opts.ShouldIncludePrintAreas() {
		printAreas, err := parser.ExtractPrintAreas(f)
		if err != nil {
			warn("", "print_areas", err)
		}
		for sheetName, areas := range printAreas {
			if sheet, ok := sheets[sheetName]; ok {
				sheet.PrintAreas = areas
				sheets[sheetName] = sheet
			}
		}
	}

	return &models.WorkbookRefs{
		BookName: bookName,
		Sheets:   sheets,
	}, nil
}
