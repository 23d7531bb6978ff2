// Package a1 converts zero-based cell coordinates to A1-style references.
package a1

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errOverflow = errors.New("index + 1 overflows uint")

// Cell holds the inputs of a single A1 reference.
type Cell struct {
	// Row is the zero-based row index.
	Row uint
	// Col is the zero-based column index.
	Col uint
	// RowAbs prefixes the row number with "$".
	RowAbs bool
	// ColAbs prefixes the column letters with "$".
	ColAbs bool
}

// Format returns the A1 reference of c.
func (c Cell) Format() (string, error) {
	return FormatCellReference(c.Row, c.Col, c.RowAbs, c.ColAbs)
}

// FormatCellReference converts a zero-based row and column to an A1 style
// string such as "A1", "$A1", "A$1" or "$A$1".
func FormatCellReference(row, col uint, rowAbs, colAbs bool) (string, error) {
	if row == math.MaxUint {
		return "", newRowError(row, errOverflow)
	}
	colStr, err := FormatColumnName(col, colAbs)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(colStr) + 21)
	sb.WriteString(colStr)
	if rowAbs {
		sb.WriteByte('$')
	}
	sb.WriteString(strconv.FormatUint(uint64(row)+1, 10))
	return sb.String(), nil
}

// FormatColumnName converts a zero-based column index to its letter name
// (0 -> "A", 25 -> "Z", 26 -> "AA"), optionally prefixed with "$".
func FormatColumnName(col uint, colAbs bool) (string, error) {
	if col == math.MaxUint {
		return "", newColumnError(col, errOverflow)
	}

	// Letters accumulate least significant first.
	var letters []byte
	for n := col + 1; n != 0; {
		rem := n % 26
		if rem == 0 {
			rem = 26
		}
		letter := 'A' + rem - 1
		if letter < 'A' || letter > 'Z' {
			return "", newColumnError(col, nil)
		}
		letters = append(letters, byte(letter))
		n = (n - rem) / 26
	}

	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	if colAbs {
		return "$" + string(letters), nil
	}
	return string(letters), nil
}
