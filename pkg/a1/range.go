package a1

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const maxRows = 1048576

// Sheet names that would read as a reference when left unquoted.
var (
	a1NameRe   = regexp.MustCompile(`^([A-Za-z]{1,3})([0-9]+)$`)
	r1c1NameRe = regexp.MustCompile(`^(?i)(R[0-9]*)?(C[0-9]*)?$`)
)

// FormatRange returns "first:last". When both ends format to the same
// reference the single cell reference is returned instead.
func FormatRange(first, last Cell) (string, error) {
	start, err := first.Format()
	if err != nil {
		return "", err
	}
	end, err := last.Format()
	if err != nil {
		return "", err
	}
	if start == end {
		return start, nil
	}
	return start + ":" + end, nil
}

// FormatSheetRange returns a range qualified by its sheet name, e.g.
// "Sheet1!A1:B2" or "'My Sheet'!$A$1:$B$2". An empty sheet yields the bare range.
func FormatSheetRange(sheet string, first, last Cell) (string, error) {
	rng, err := FormatRange(first, last)
	if err != nil {
		return "", err
	}
	if sheet == "" {
		return rng, nil
	}
	return QuoteSheetName(sheet) + "!" + rng, nil
}

// QuoteSheetName wraps a sheet name in single quotes when it contains
// anything other than letters, digits, '_' and '.', starts with a digit, or
// reads as an A1 or R1C1 reference or a boolean. Embedded quotes are doubled.
func QuoteSheetName(sheet string) string {
	if sheet == "" || !needsQuoting(sheet) {
		return sheet
	}
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func needsQuoting(sheet string) bool {
	if looksLikeCell(sheet) || r1c1NameRe.MatchString(sheet) {
		return true
	}
	if strings.EqualFold(sheet, "TRUE") || strings.EqualFold(sheet, "FALSE") {
		return true
	}
	for i, r := range sheet {
		if i == 0 && unicode.IsDigit(r) {
			return true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			return true
		}
	}
	return false
}

// looksLikeCell reports whether name is a cell reference inside the
// XFD1048576 worksheet grid.
func looksLikeCell(name string) bool {
	m := a1NameRe.FindStringSubmatch(name)
	if m == nil {
		return false
	}
	col := strings.ToUpper(m[1])
	if len(col) == 3 && col > "XFD" {
		return false
	}
	row, err := strconv.ParseUint(m[2], 10, 32)
	return err == nil && row >= 1 && row <= maxRows
}
