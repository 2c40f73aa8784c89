package cmd

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/textgrid/pkg/textgrid"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	borderStyle = lipgloss.NewStyle().Faint(true)
)

// colorizeTable styles a rendered table for terminal output: border and
// separator lines are faint, the header line is bold. Cell rows pass through
// untouched so their widths stay exact. With noColor the lines are returned
// as rendered.
func colorizeTable(t textgrid.Table, noColor bool) []string {
	lines := t.Lines()
	if noColor {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case isBorderLine(line, t.Style):
			out[i] = borderStyle.Render(line)
		case t.Header != nil && i == 1:
			out[i] = headerStyle.Render(line)
		default:
			out[i] = line
		}
	}
	return out
}

// isBorderLine reports whether line is one of the style's rule lines rather
// than a content row. Every preset caps its rules with a glyph distinct from
// the row bar.
func isBorderLine(line string, style textgrid.TableStyle) bool {
	for _, r := range []textgrid.BorderRule{style.Top, style.HeaderSep, style.GroupSep, style.Bottom} {
		if r.Left != "" && r.Left != style.Row.Left && strings.HasPrefix(line, r.Left) {
			return true
		}
	}
	return false
}
