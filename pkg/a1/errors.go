package a1

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a FormatError.
type ErrorKind string

// KindIndexOutOfRange is reported when an index has no valid A1 representation.
const KindIndexOutOfRange ErrorKind = "index out of range"

// ErrIndexOutOfRange matches any FormatError of kind KindIndexOutOfRange
// when used with errors.Is.
var ErrIndexOutOfRange = errors.New(string(KindIndexOutOfRange))

// FormatError represents a failure to render a row or column index.
type FormatError struct {
	Kind ErrorKind
	Row  uint
	Col  uint
	// Field is "row" or "column".
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	var idx uint
	if e.Field == "row" {
		idx = e.Row
	} else {
		idx = e.Col
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %d: %v", e.Kind, e.Field, idx, e.Err)
	}
	return fmt.Sprintf("%s: %s %d", e.Kind, e.Field, idx)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *FormatError) Is(target error) bool {
	return target == ErrIndexOutOfRange && e.Kind == KindIndexOutOfRange
}

func newColumnError(col uint, err error) *FormatError {
	return &FormatError{
		Kind:  KindIndexOutOfRange,
		Col:   col,
		Field: "column",
		Err:   err,
	}
}

func newRowError(row uint, err error) *FormatError {
	return &FormatError{
		Kind:  KindIndexOutOfRange,
		Row:   row,
		Field: "row",
		Err:   err,
	}
}
