package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/textgrid/internal/input"
	"github.com/oakwood-commons/textgrid/internal/tui"
	"github.com/oakwood-commons/textgrid/pkg/logger"
	"github.com/oakwood-commons/textgrid/pkg/settings"
	"github.com/oakwood-commons/textgrid/pkg/textgrid"
)

var (
	tableFormat      string
	tableHeader      bool
	tableLayoutPath  string
	tableStyleName   string
	tableFit         bool
	tableInteractive bool
)

var tableCmd = &cobra.Command{
	Use:   "table [file]",
	Short: "Render rows as a bordered fixed-width table",
	Long: `Render rows of data as a bordered table.

Rows come from a file argument or stdin. CSV and TSV input separates row
groups on blank lines; JSON and YAML input takes an array of objects
(columns from the sorted keys) or nested arrays (one group per inner
array). With --header the first data row becomes the header; keyed input
uses its column names automatically.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		lgr := logger.FromContext(rootCtx)
		if params, ok := settings.FromContext(rootCtx); ok {
			params.Interactive = tableInteractive
			params.StyleName = tableStyleName
			params.FitWidth = tableFit
		}

		format, err := input.ParseFormat(tableFormat)
		if err != nil {
			return err
		}
		data, err := readInput(args)
		if err != nil {
			return err
		}
		ds, err := input.ReadDataset(bytes.NewReader(data), format)
		if err != nil {
			return err
		}
		if len(ds.Groups) == 0 {
			return fmt.Errorf("no rows in input")
		}

		style, ok := textgrid.StyleByName(tableStyleName)
		if !ok {
			return fmt.Errorf("unknown style %q (see 'textgrid styles')", tableStyleName)
		}

		t, err := buildTable(ds, style)
		if err != nil {
			return err
		}
		lgr.V(1).Info("table assembled",
			"groups", len(t.Groups), "columns", len(t.Specs), "style", style.Name)

		if tableFit {
			if width := detectTerminalWidth(); width > 0 {
				t.Specs = fitSpecs(t.Specs, t.Widths(), width)
			}
		}
		if tableInteractive {
			return browseTable(t)
		}

		for _, line := range colorizeTable(t, noColor) {
			fmt.Fprintln(os.Stdout, line)
		}
		return nil
	},
}

// buildTable assembles the table from the dataset, the layout file, and the
// header flags. Layout columns beyond the data are dropped by the engine;
// data columns beyond the layout get the default expanding spec.
func buildTable(ds input.Dataset, style textgrid.TableStyle) (textgrid.Table, error) {
	groups := ds.Groups
	cols := 0
	for _, g := range groups {
		for _, row := range g {
			if len(row) > cols {
				cols = len(row)
			}
		}
	}

	var header *textgrid.Header
	switch {
	case len(ds.Columns) > 0:
		header = &textgrid.Header{Labels: ds.Columns}
	case tableHeader:
		first := groups[0]
		if len(first) == 0 {
			return textgrid.Table{}, fmt.Errorf("--header needs at least one data row")
		}
		header = &textgrid.Header{Labels: first[0]}
		rest := make(textgrid.RowGroup, len(first)-1)
		copy(rest, first[1:])
		groups = append([]textgrid.RowGroup{rest}, groups[1:]...)
		if len(rest) == 0 && len(groups) > 1 {
			groups = groups[1:]
		}
	}

	specs := make([]textgrid.LayoutSpec, cols)
	for i := range specs {
		specs[i] = textgrid.DefaultSpec()
	}
	if tableLayoutPath != "" {
		lf, err := input.LoadLayoutFile(tableLayoutPath)
		if err != nil {
			return textgrid.Table{}, err
		}
		fileSpecs, overrides, err := lf.Specs()
		if err != nil {
			return textgrid.Table{}, err
		}
		copy(specs, fileSpecs)
		if header != nil && overrides != nil {
			header.Overrides = overrides
		}
	}

	return textgrid.Table{
		Groups: groups,
		Header: header,
		Specs:  specs,
		Style:  style,
	}, nil
}

// browseTable opens the interactive row browser over the table's cells.
func browseTable(t textgrid.Table) error {
	widths := t.Widths()
	columns := make([]tui.Column, len(widths))
	for i, w := range widths {
		title := fmt.Sprintf("col %d", i+1)
		if t.Header != nil && i < len(t.Header.Labels) {
			title = t.Header.Labels[i]
		}
		columns[i] = tui.Column{Title: title, Width: w}
	}

	var rows []tui.Row
	for _, g := range t.CellGroups() {
		for _, row := range g {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = strings.TrimRight(cell, " ")
			}
			rows = append(rows, cells)
		}
	}
	return tui.Run(tui.NewBrowser(columns, rows, noColor))
}

func init() {
	tableCmd.Flags().StringVarP(&tableFormat, "format", "f", "csv", "input format: csv|tsv|json|yaml")
	tableCmd.Flags().BoolVar(&tableHeader, "header", false, "treat the first row as the header")
	tableCmd.Flags().StringVar(&tableLayoutPath, "layout", "", "per-column layout file (TOML or YAML)")
	tableCmd.Flags().StringVarP(&tableStyleName, "style", "s", "light", "border style preset (see 'textgrid styles')")
	tableCmd.Flags().BoolVar(&tableFit, "fit", false, "shrink columns to the terminal width")
	tableCmd.Flags().BoolVarP(&tableInteractive, "interactive", "i", false, "browse rows in an interactive table")
}
