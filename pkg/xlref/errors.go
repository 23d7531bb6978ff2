package xlref

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ScanError represents an error while scanning one component of a sheet.
type ScanError struct {
	SheetName string
	Component string // "rows", "cells", "used_range", "tables", "print_areas"
	Err       error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError.
func NewScanError(sheetName, component string, err error) *ScanError {
	return &ScanError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
