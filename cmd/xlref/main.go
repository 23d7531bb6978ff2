// Package main provides the CLI entry point for xlref.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlref-go/internal/config"
	"github.com/ukaji3/xlref-go/pkg/a1"
	"github.com/ukaji3/xlref-go/pkg/xlref"
	"github.com/ukaji3/xlref-go/pkg/xlref/models"
	"github.com/ukaji3/xlref-go/pkg/xlref/output"
	"github.com/xuri/excelize/v2"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "xlref",
		Short: "Convert cell coordinates to A1 references",
		Long: `xlref renders zero-based (row, column) coordinates as spreadsheet
A1 references and reports the references found in Excel files.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		a.newCellCmd(),
		a.newColCmd(),
		a.newRangeCmd(),
		a.newScanCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, unknown, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: config.ParseLevel(level),
	}))

	if len(unknown) > 0 {
		a.logger.Warn("unrecognized config keys", "file", a.configPath, "keys", unknown)
	}
	return nil
}

func (a *app) newCellCmd() *cobra.Command {
	var rowAbs, colAbs bool

	cmd := &cobra.Command{
		Use:   "cell ROW COL",
		Short: "Print the A1 reference of a zero-based row and column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndices(args)
			if err != nil {
				return err
			}
			a.checkLimits(idx[0], idx[1])

			ref, err := a1.FormatCellReference(idx[0], idx[1], rowAbs, colAbs)
			if err != nil {
				return fmt.Errorf("format failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ref)
			return nil
		},
	}

	cmd.Flags().BoolVar(&rowAbs, "row-abs", false, "Make the row absolute ($)")
	cmd.Flags().BoolVar(&colAbs, "col-abs", false, "Make the column absolute ($)")
	return cmd
}

func (a *app) newColCmd() *cobra.Command {
	var abs bool

	cmd := &cobra.Command{
		Use:   "col COL",
		Short: "Print the letter name of a zero-based column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndices(args)
			if err != nil {
				return err
			}
			a.checkLimits(0, idx[0])

			name, err := a1.FormatColumnName(idx[0], abs)
			if err != nil {
				return fmt.Errorf("format failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&abs, "abs", false, "Make the column absolute ($)")
	return cmd
}

func (a *app) newRangeCmd() *cobra.Command {
	var (
		abs   bool
		sheet string
	)

	cmd := &cobra.Command{
		Use:   "range ROW1 COL1 ROW2 COL2",
		Short: "Print the A1 range between two zero-based cells",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndices(args)
			if err != nil {
				return err
			}
			a.checkLimits(idx[0], idx[1])
			a.checkLimits(idx[2], idx[3])

			first := a1.Cell{Row: idx[0], Col: idx[1], RowAbs: abs, ColAbs: abs}
			last := a1.Cell{Row: idx[2], Col: idx[3], RowAbs: abs, ColAbs: abs}
			rng, err := a1.FormatSheetRange(sheet, first, last)
			if err != nil {
				return fmt.Errorf("format failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rng)
			return nil
		},
	}

	cmd.Flags().BoolVar(&abs, "abs", false, "Make both ends absolute ($A$1)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Qualify the range with a sheet name")
	return cmd
}

// checkLimits logs references that fall outside an Excel worksheet.
// They are still formatted.
func (a *app) checkLimits(row, col uint) {
	if row >= excelize.TotalRows || col >= excelize.MaxColumns {
		a.logger.Warn("reference beyond worksheet limits",
			"row", row, "col", col,
			"max_rows", excelize.TotalRows, "max_cols", excelize.MaxColumns)
	}
}

func parseIndices(args []string) ([]uint, error) {
	idx := make([]uint, len(args))
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: must be a non-negative integer", arg)
		}
		idx[i] = uint(v)
	}
	return idx, nil
}

func (a *app) newScanCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
		mode       string
		rowAbs     bool
		colAbs     bool
		sheetsDir  string
	)

	cmd := &cobra.Command{
		Use:   "scan [input.xlsx]",
		Short: "Report the cell references in an Excel file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags set on the command line win over the config file.
			flags := cmd.Flags()
			if !flags.Changed("mode") {
				mode = a.cfg.Scan.Mode
			}
			if !flags.Changed("pretty") {
				pretty = a.cfg.Scan.Pretty
			}
			if !flags.Changed("row-abs") {
				rowAbs = a.cfg.Scan.RowAbs
			}
			if !flags.Changed("col-abs") {
				colAbs = a.cfg.Scan.ColAbs
			}

			scanMode, err := xlref.ParseMode(mode)
			if err != nil {
				return err
			}

			opts := xlref.DefaultOptions()
			opts.Mode = scanMode
			opts.RowAbs = rowAbs
			opts.ColAbs = colAbs
			opts.Tables.DensityMin = a.cfg.Tables.DensityMin
			opts.Tables.CoverageMin = a.cfg.Tables.CoverageMin
			opts.Tables.MinNonemptyCells = a.cfg.Tables.MinNonemptyCells
			opts.Logger = a.logger

			wb, err := xlref.Scan(args[0], opts)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			jsonData, err := output.ToJSON(wb, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			} else if sheetsDir == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			}

			if sheetsDir != "" {
				if err := writeSheetFiles(wb, sheetsDir, pretty); err != nil {
					return fmt.Errorf("failed to write sheet files: %w", err)
				}
			}

			a.logger.Info("scan complete", "book", wb.BookName, "sheets", len(wb.Sheets))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&mode, "mode", "standard", "Scan mode: cells, standard")
	cmd.Flags().BoolVar(&rowAbs, "row-abs", false, "Render row numbers absolute ($)")
	cmd.Flags().BoolVar(&colAbs, "col-abs", false, "Render column letters absolute ($)")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	return cmd
}

func writeSheetFiles(wb *models.WorkbookRefs, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
