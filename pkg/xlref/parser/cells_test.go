package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// readRows saves f to a temp file, reopens it and returns the sheet rows.
func readRows(t *testing.T, f *excelize.File, sheetName string) [][]string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := f2.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	return rows
}

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "AA3", "Text")

	rows := readRows(t, f, sheetName)

	cells, err := ExtractCells(rows, RefStyle{})
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if len(cells) != 5 {
		t.Fatalf("Expected 5 cells, got %d", len(cells))
	}

	expectedRefs := []string{"A1", "B1", "A2", "B2", "AA3"}
	for i, ref := range expectedRefs {
		if cells[i].Ref != ref {
			t.Errorf("cells[%d].Ref = %q, expected %q", i, cells[i].Ref, ref)
		}
	}

	if cells[4].R != 3 || cells[4].C != 27 {
		t.Errorf("Expected AA3 at r=3 c=27, got r=%d c=%d", cells[4].R, cells[4].C)
	}
	if cells[0].V != "Header1" {
		t.Errorf("Expected 'Header1', got %v", cells[0].V)
	}
	if cells[2].V != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", cells[2].V, cells[2].V)
	}
	if cells[3].V != 200.5 {
		t.Errorf("Expected 200.5, got %v", cells[3].V)
	}
}

func TestExtractCellsAbsolute(t *testing.T) {
	rows := [][]string{
		{"", "x"},
		{},
		{"y"},
	}

	cells, err := ExtractCells(rows, RefStyle{ColAbs: true})
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if len(cells) != 2 {
		t.Fatalf("Expected 2 cells, got %d", len(cells))
	}
	if cells[0].Ref != "$B1" || cells[1].Ref != "$A3" {
		t.Errorf("unexpected refs %q, %q", cells[0].Ref, cells[1].Ref)
	}
}

func TestUsedRange(t *testing.T) {
	tests := []struct {
		rows     [][]string
		style    RefStyle
		expected string
	}{
		{nil, RefStyle{}, ""},
		{[][]string{{"", ""}}, RefStyle{}, ""},
		{[][]string{{"a"}}, RefStyle{}, "A1"},
		{[][]string{{}, {"", "a"}, {"", "", "", "b"}}, RefStyle{}, "B2:D3"},
		{[][]string{{"a", "b"}, {"c", "d"}}, Absolute, "$A$1:$B$2"},
	}

	for _, tt := range tests {
		result, err := UsedRange(tt.rows, tt.style)
		if err != nil {
			t.Fatalf("UsedRange failed: %v", err)
		}
		if result != tt.expected {
			t.Errorf("UsedRange(%v) = %q, expected %q", tt.rows, result, tt.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
