package textgrid

import "strings"

// Distribute splits total into parts near-equal integer shares that sum to
// total: the first total%parts shares are one larger than the rest, so no two
// shares differ by more than one. Zero or negative parts yield no shares.
func Distribute(total, parts int) []int {
	if parts <= 0 {
		return nil
	}
	q, r := total/parts, total%parts
	out := make([]int, parts)
	for i := range out {
		out[i] = q
		if i < r {
			out[i]++
		}
	}
	return out
}

// Justify greedily wraps words into lines no wider than width and expands
// every line but the last to exactly width by widening the inter-word gaps as
// evenly as possible, wider gaps first. A line holding a single word is left
// at the word's own width, even when the word alone exceeds width; the final
// line stays ragged. An empty word sequence yields no lines.
func Justify(width int, words []string) []string {
	var lines []string
	var line []string
	lineWidth := 0
	for _, w := range words {
		wl := runeLen(w)
		if len(line) > 0 && lineWidth+1+wl > width {
			lines = append(lines, justifyLine(width, line, lineWidth))
			line, lineWidth = nil, 0
		}
		if len(line) > 0 {
			lineWidth++
		}
		line = append(line, w)
		lineWidth += wl
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return lines
}

// justifyLine expands one closed line to exactly width. lineWidth is the
// space-joined width of words.
func justifyLine(width int, words []string, lineWidth int) string {
	if len(words) < 2 {
		return strings.Join(words, " ")
	}
	extras := Distribute(width-lineWidth, len(words)-1)
	var b strings.Builder
	b.WriteString(words[0])
	for i, w := range words[1:] {
		b.WriteString(spaces(1 + extras[i]))
		b.WriteString(w)
	}
	return b.String()
}

// VerticalPosition controls where blank fill lines go when columns of unequal
// height are stacked into a grid.
//
// The naming is inverted relative to the horizontal Position policy and is
// preserved that way deliberately: VStart fills at the bottom (content starts
// at the top edge) and VEnd fills at the top (content ends at the bottom
// edge). VCenter splits the fill, extra blank line at the bottom.
type VerticalPosition int

const (
	VStart VerticalPosition = iota
	VCenter
	VEnd
)

// ColumnsAsGrid pads every column's line sequence up to the tallest column's
// line count with blank lines placed per vpos, then transposes the
// column-major line lists into a row-major cell grid.
func ColumnsAsGrid(vpos VerticalPosition, columns [][]string) [][]string {
	height := 0
	for _, col := range columns {
		if len(col) > height {
			height = len(col)
		}
	}
	padded := make([][]string, len(columns))
	for i, col := range columns {
		padded[i] = fillColumn(vpos, height, col)
	}
	grid := make([][]string, height)
	for r := range grid {
		row := make([]string, len(padded))
		for c := range padded {
			row[c] = padded[c][r]
		}
		grid[r] = row
	}
	return grid
}

func fillColumn(vpos VerticalPosition, height int, col []string) []string {
	missing := height - len(col)
	if missing <= 0 {
		return col
	}
	blanks := make([]string, missing)
	switch vpos {
	case VEnd:
		return append(blanks, col...)
	case VCenter:
		top := missing / 2
		out := make([]string, 0, height)
		out = append(out, blanks[:top]...)
		out = append(out, col...)
		return append(out, blanks[top:]...)
	default:
		out := make([]string, 0, height)
		out = append(out, col...)
		return append(out, blanks...)
	}
}

// JustifyBlocks justifies each block of words to width, stacks the justified
// blocks side by side as vertical columns filled per vpos, and renders the
// grid with every cell padded to width and a single space between columns.
func JustifyBlocks(width int, vpos VerticalPosition, blocks [][]string) []string {
	cols := make([][]string, len(blocks))
	for i, words := range blocks {
		cols[i] = Justify(width, words)
	}
	grid := ColumnsAsGrid(vpos, cols)
	lines := make([]string, len(grid))
	for r, row := range grid {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = Pad(Left, width, cell)
		}
		lines[r] = strings.Join(cells, " ")
	}
	return lines
}
