// Package models defines the data structures reported by a workbook scan.
package models

// CellRef represents a single non-empty cell and its A1 reference.
type CellRef struct {
	// Ref is the A1 reference, e.g. "B3" or "$B$3".
	Ref string `json:"ref"`
	// R is the row number (1-based).
	R int `json:"r"`
	// C is the column number (1-based).
	C int `json:"c"`
	// V is the cell value: int64, float64 or string.
	V interface{} `json:"v"`
}
