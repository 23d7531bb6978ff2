package a1

import (
	"errors"
	"math"
	"testing"
)

func TestFormatRange(t *testing.T) {
	tests := []struct {
		first    Cell
		last     Cell
		expected string
	}{
		{Cell{}, Cell{Row: 9, Col: 3}, "A1:D10"},
		{Cell{Row: 2, Col: 2}, Cell{Row: 2, Col: 2}, "C3"},
		{
			Cell{RowAbs: true, ColAbs: true},
			Cell{Row: 1, Col: 1, RowAbs: true, ColAbs: true},
			"$A$1:$B$2",
		},
		// Same coordinates but different markers are kept as a range.
		{Cell{}, Cell{RowAbs: true}, "A1:A$1"},
	}

	for _, tt := range tests {
		result, err := FormatRange(tt.first, tt.last)
		if err != nil {
			t.Fatalf("FormatRange failed: %v", err)
		}
		if result != tt.expected {
			t.Errorf("FormatRange(%+v, %+v) = %q, expected %q",
				tt.first, tt.last, result, tt.expected)
		}
	}
}

func TestFormatRangeError(t *testing.T) {
	result, err := FormatRange(Cell{}, Cell{Col: math.MaxUint})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if result != "" {
		t.Errorf("expected empty result, got %q", result)
	}
}

func TestFormatSheetRange(t *testing.T) {
	first := Cell{RowAbs: true, ColAbs: true}
	last := Cell{Row: 2, Col: 2, RowAbs: true, ColAbs: true}

	tests := []struct {
		sheet    string
		expected string
	}{
		{"", "$A$1:$C$3"},
		{"Sheet1", "Sheet1!$A$1:$C$3"},
		{"Sheet 1", "'Sheet 1'!$A$1:$C$3"},
		{"Bob's", "'Bob''s'!$A$1:$C$3"},
		{"2024", "'2024'!$A$1:$C$3"},
		{"data_v1.2", "data_v1.2!$A$1:$C$3"},
		{"A1", "'A1'!$A$1:$C$3"},
		{"XFD100", "'XFD100'!$A$1:$C$3"},
		{"q1", "'q1'!$A$1:$C$3"},
		{"R1C1", "'R1C1'!$A$1:$C$3"},
		{"rc", "'rc'!$A$1:$C$3"},
		{"R", "'R'!$A$1:$C$3"},
		{"TRUE", "'TRUE'!$A$1:$C$3"},
		{"false", "'false'!$A$1:$C$3"},
		{"Q1_2024", "Q1_2024!$A$1:$C$3"},
		{"XFE1", "XFE1!$A$1:$C$3"},
		{"A1048577", "A1048577!$A$1:$C$3"},
		{"Revenue", "Revenue!$A$1:$C$3"},
	}

	for _, tt := range tests {
		result, err := FormatSheetRange(tt.sheet, first, last)
		if err != nil {
			t.Fatalf("FormatSheetRange(%q) failed: %v", tt.sheet, err)
		}
		if result != tt.expected {
			t.Errorf("FormatSheetRange(%q) = %q, expected %q", tt.sheet, result, tt.expected)
		}
	}
}
