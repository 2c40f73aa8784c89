package textgrid

import "strings"

// LayoutSpec bundles the per-column policies supplied by the caller: how wide
// the column may be, where content sits in surplus space, what it aligns on,
// and which marker flags truncation.
type LayoutSpec struct {
	Length   Length
	Position Position
	Align    Alignment
	CutMark  CutMark
}

// DefaultSpec expands the column to its widest cell with left-positioned
// content.
func DefaultSpec() LayoutSpec {
	return LayoutSpec{CutMark: DefaultCutMark}
}

// NumericSpec right-positions expanded cells and lines them up on the first
// decimal point.
func NumericSpec() LayoutSpec {
	return LayoutSpec{
		Position: Right,
		Align:    AlignAt('.', 0),
		CutMark:  DefaultCutMark,
	}
}

// FixedSpec holds the column at exactly width with left-positioned content.
func FixedSpec(width int) LayoutSpec {
	return LayoutSpec{Length: Fixed(width), CutMark: DefaultCutMark}
}

// FixedSpecAt is FixedSpec with an explicit position policy.
func FixedSpecAt(width int, pos Position) LayoutSpec {
	return LayoutSpec{Length: Fixed(width), Position: pos, CutMark: DefaultCutMark}
}

// columnFormatter builds the cell renderer for one column from its derived
// sizing, dispatching to the matching cell primitive.
func columnFormatter(pos Position, cm CutMark, cs ColumnSizing) func(string) string {
	switch cs.Kind {
	case SizingAlignedFill:
		return func(s string) string {
			return AlignAround(cs.Marker, cs.Occurrence, cs.Extents, s)
		}
	case SizingFixed:
		if cs.Aligned {
			return func(s string) string {
				return AlignFixed(pos, cm, cs.Width, cs.Marker, cs.Occurrence, cs.Extents, s)
			}
		}
		return func(s string) string {
			return TrimOrPad(pos, cm, cs.Width, s)
		}
	default:
		return func(s string) string {
			return Pad(pos, cs.Width, s)
		}
	}
}

// columnCount is the widest row's cell count.
func columnCount(rows [][]string) int {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// columnCells gathers one column of the matrix; rows too short to reach the
// column contribute an empty cell.
func columnCells(rows [][]string, col int) []string {
	cells := make([]string, len(rows))
	for i, row := range rows {
		if col < len(row) {
			cells[i] = row[col]
		}
	}
	return cells
}

// deriveSizings runs the sizing engine independently on each column.
func deriveSizings(specs []LayoutSpec, rows [][]string) []ColumnSizing {
	sizes := make([]ColumnSizing, len(specs))
	for i, spec := range specs {
		sizes[i] = DeriveColumnSizing(spec.Length, spec.Align, columnCells(rows, i))
	}
	return sizes
}

// formatters builds one formatter per column.
func formatters(specs []LayoutSpec, sizes []ColumnSizing) []func(string) string {
	fs := make([]func(string) string, len(specs))
	for i, spec := range specs {
		fs[i] = columnFormatter(spec.Position, spec.CutMark, sizes[i])
	}
	return fs
}

// applyFormatters renders one row; missing trailing cells read as empty.
func applyFormatters(fs []func(string) string, row []string) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		out[i] = f(cell)
	}
	return out
}

// LayoutCells formats every cell of rows to its column's exact width. Column
// sizing is derived once per column from the full matrix before any cell is
// formatted. Columns without a spec, and specs without a column, are dropped
// silently.
func LayoutCells(specs []LayoutSpec, rows [][]string) [][]string {
	cols := columnCount(rows)
	if len(specs) < cols {
		cols = len(specs)
	}
	fs := formatters(specs[:cols], deriveSizings(specs[:cols], rows))
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = applyFormatters(fs, row)
	}
	return out
}

// LayoutLines renders rows to lines, cells separated by a single space.
func LayoutLines(specs []LayoutSpec, rows [][]string) []string {
	cells := LayoutCells(specs, rows)
	lines := make([]string, len(cells))
	for i, row := range cells {
		lines[i] = strings.Join(row, " ")
	}
	return lines
}

// LayoutString renders rows to one newline-joined block.
func LayoutString(specs []LayoutSpec, rows [][]string) string {
	return strings.Join(LayoutLines(specs, rows), "\n")
}
