// Package xlref reports the A1 references found in Excel workbooks.
package xlref

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ukaji3/xlref-go/pkg/xlref/parser"
)

// Mode represents the scan mode.
type Mode string

const (
	// ModeCells reports cell references only.
	ModeCells Mode = "cells"
	// ModeStandard reports cells, used range, table candidates and print areas.
	ModeStandard Mode = "standard"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCells, ModeStandard:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be cells or standard)", s)
	}
}

// Options configures scan behavior.
type Options struct {
	// Mode specifies the scan mode (cells, standard).
	Mode Mode
	// RowAbs renders row numbers with a "$" marker.
	RowAbs bool
	// ColAbs renders column letters with a "$" marker.
	ColAbs bool
	// IncludeTables specifies whether to detect table candidates.
	// If nil, defaults to false for cells mode, true otherwise.
	IncludeTables *bool
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to false for cells mode, true otherwise.
	IncludePrintAreas *bool
	// Tables holds the table detection thresholds. Zero thresholds accept
	// any non-empty sheet; DefaultOptions fills in the usual values.
	Tables parser.TableDetectionParams
	// Logger receives warnings for components that fail. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns default scan options.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeStandard,
		Tables: parser.DefaultTableParams(),
	}
}

// Style returns the reference style selected by the absolute flags.
func (o Options) Style() parser.RefStyle {
	return parser.RefStyle{RowAbs: o.RowAbs, ColAbs: o.ColAbs}
}

// ShouldIncludeTables returns whether to detect table candidates.
func (o Options) ShouldIncludeTables() bool {
	if o.IncludeTables != nil {
		return *o.IncludeTables
	}
	return o.Mode != ModeCells
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode != ModeCells
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
