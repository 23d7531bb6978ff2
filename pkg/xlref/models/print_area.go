package models

// PrintArea represents a user-defined print area.
type PrintArea struct {
	// Ref is the sheet-qualified absolute range, e.g. 'Sheet 1'!$A$1:$D$10.
	Ref string `json:"ref"`
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}
