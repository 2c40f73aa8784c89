package textgrid

import "strings"

// RowGroup is a contiguous block of rows rendered with no separator between
// them. Groups are divided by the style's group separator in the assembled
// table. The assembler never mutates a group's cells.
type RowGroup [][]string

// HeaderSpec overrides how one header cell is rendered. A nil CutMark falls
// back to the column's own cut mark.
type HeaderSpec struct {
	Position Position
	CutMark  *CutMark
}

// Header is an optional label row with per-column render overrides. Overrides
// may be shorter than Labels; missing entries use the zero HeaderSpec.
type Header struct {
	Labels    []string
	Overrides []HeaderSpec
}

// Table assembles row groups, an optional header, per-column layout specs and
// a border style into a bordered text block.
//
// Column widths are computed once from the union of every group's cells — not
// the header — then widened where needed so each header label fits. Columns
// present in the data but missing a spec, and specs beyond the data, are
// dropped silently.
type Table struct {
	Groups []RowGroup
	Header *Header
	Specs  []LayoutSpec
	Style  TableStyle
}

// sizings derives the table-wide column sizing from the concatenation of all
// groups, then applies header minimum widths.
func (t Table) sizings() ([]ColumnSizing, int) {
	cols := 0
	for _, g := range t.Groups {
		if c := columnCount(g); c > cols {
			cols = c
		}
	}
	if len(t.Specs) < cols {
		cols = len(t.Specs)
	}
	if cols == 0 {
		return nil, 0
	}
	all := make([][]string, 0, len(t.Groups))
	for _, g := range t.Groups {
		all = append(all, g...)
	}
	sizes := deriveSizings(t.Specs[:cols], all)
	if t.Header != nil {
		for i := 0; i < cols && i < len(t.Header.Labels); i++ {
			sizes[i] = EnsureMinWidth(sizes[i], runeLen(t.Header.Labels[i]), t.Specs[i].Position)
		}
	}
	return sizes, cols
}

// Widths reports the final rendered width of each column.
func (t Table) Widths() []int {
	sizes, cols := t.sizings()
	widths := make([]int, cols)
	for i, s := range sizes {
		widths[i] = s.TotalWidth()
	}
	return widths
}

// CellGroups formats every group's cells against the table-wide column
// sizing and returns the formatted matrices, one per group. The header is
// not included.
func (t Table) CellGroups() [][][]string {
	sizes, cols := t.sizings()
	if cols == 0 {
		return nil
	}
	fs := formatters(t.Specs[:cols], sizes)
	out := make([][][]string, len(t.Groups))
	for gi, g := range t.Groups {
		rows := make([][]string, len(g))
		for ri, row := range g {
			rows[ri] = applyFormatters(fs, row)
		}
		out[gi] = rows
	}
	return out
}

// headerCells formats the header row. Headers always use straight pad/trim
// against the column's total width; alignment never applies to them.
func (t Table) headerCells(sizes []ColumnSizing, cols int) []string {
	cells := make([]string, cols)
	for i := range cells {
		label := ""
		if i < len(t.Header.Labels) {
			label = t.Header.Labels[i]
		}
		var over HeaderSpec
		if i < len(t.Header.Overrides) {
			over = t.Header.Overrides[i]
		}
		cm := t.Specs[i].CutMark
		if over.CutMark != nil {
			cm = *over.CutMark
		}
		cells[i] = TrimOrPad(over.Position, cm, sizes[i].TotalWidth(), label)
	}
	return cells
}

// Lines renders the bordered table: top border, header and header separator
// when present, row groups interleaved with group separators, bottom border.
// Every returned line has the same total character length.
func (t Table) Lines() []string {
	sizes, cols := t.sizings()
	if cols == 0 {
		return nil
	}
	widths := make([]int, cols)
	for i, s := range sizes {
		widths[i] = s.TotalWidth()
	}
	fs := formatters(t.Specs[:cols], sizes)

	lines := []string{borderLine(t.Style.Top, widths)}
	if t.Header != nil {
		lines = append(lines, contentLine(t.Style.Row, t.headerCells(sizes, cols)))
		lines = append(lines, borderLine(t.Style.HeaderSep, widths))
	}
	for gi, g := range t.Groups {
		if gi > 0 {
			lines = append(lines, borderLine(t.Style.GroupSep, widths))
		}
		for _, row := range g {
			lines = append(lines, contentLine(t.Style.Row, applyFormatters(fs, row)))
		}
	}
	lines = append(lines, borderLine(t.Style.Bottom, widths))
	return lines
}

// String renders the table as one block. The block ends with a newline, as
// every rendered line does.
func (t Table) String() string {
	lines := t.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func borderLine(r BorderRule, widths []int) string {
	var b strings.Builder
	b.WriteString(r.Left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(r.Junction)
		}
		b.WriteString(strings.Repeat(r.Fill, w))
	}
	b.WriteString(r.Right)
	return b.String()
}

func contentLine(r RowRule, cells []string) string {
	return r.Left + strings.Join(cells, r.Separator) + r.Right
}
