package models

// SheetRefs represents the references found on a single sheet.
type SheetRefs struct {
	// Cells contains every non-empty cell in row-major order.
	Cells []CellRef `json:"cells,omitempty"`
	// UsedRange is the range covering all non-empty cells.
	UsedRange string `json:"used_range,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
