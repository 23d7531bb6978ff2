package models

// WorkbookRefs is the workbook-level container with per-sheet references.
type WorkbookRefs struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to SheetRefs.
	Sheets map[string]SheetRefs `json:"sheets"`
}
