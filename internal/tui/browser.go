// Package tui is the interactive row browser behind the table command's
// --interactive flag. It wraps the bubbles table component in a small
// Bubble Tea model with prefix filtering.
package tui

import (
	"strings"

	bubtable "charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Re-export the table building blocks so callers construct columns and rows
// without importing bubbles directly.
type Column = bubtable.Column
type Row = bubtable.Row

// Browser is the interactive table model. It owns the full row set and a
// filtered view of it; filtering is prefix matching on the first column.
type Browser struct {
	table    bubtable.Model
	styles   bubtable.Styles
	rows     []Row
	filtered []Row

	filter    string
	filtering bool

	width    int
	height   int
	noColor  bool
	quitting bool
}

// NewBrowser builds a browser over the given columns and rows.
func NewBrowser(columns []Column, rows []Row, noColor bool) *Browser {
	t := bubtable.New(
		bubtable.WithColumns(columns),
		bubtable.WithFocused(true),
		bubtable.WithHeight(10),
	)

	s := bubtable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Bold(true).
		Align(lipgloss.Left).
		PaddingLeft(0).
		PaddingRight(1)
	s.Selected = s.Selected.
		PaddingLeft(0).
		PaddingRight(1)
	s.Cell = lipgloss.NewStyle().
		Align(lipgloss.Left).
		PaddingLeft(0).
		PaddingRight(1)
	if noColor {
		s.Header = s.Header.UnsetForeground().UnsetBackground()
		s.Selected = s.Selected.UnsetForeground().UnsetBackground().Reverse(true)
		s.Cell = s.Cell.UnsetForeground().UnsetBackground()
	}
	t.SetStyles(s)

	b := &Browser{
		table:   t,
		styles:  s,
		rows:    rows,
		width:   80,
		height:  24,
		noColor: noColor,
	}
	b.applyFilter()
	return b
}

// Rows returns the rows currently visible through the filter.
func (b *Browser) Rows() []Row {
	return b.filtered
}

// SelectedRow returns the row under the cursor, or nil with no rows.
func (b *Browser) SelectedRow() Row {
	if len(b.filtered) == 0 {
		return nil
	}
	cursor := b.table.Cursor()
	if cursor < 0 || cursor >= len(b.filtered) {
		return nil
	}
	return b.filtered[cursor]
}

// SetFilter replaces the filter text and reapplies it.
func (b *Browser) SetFilter(filter string) {
	b.filter = filter
	b.applyFilter()
}

// Filter returns the current filter text.
func (b *Browser) Filter() string {
	return b.filter
}

func (b *Browser) applyFilter() {
	if b.filter == "" {
		b.filtered = b.rows
	} else {
		b.filtered = []Row{}
		for _, row := range b.rows {
			if len(row) > 0 && strings.HasPrefix(row[0], b.filter) {
				b.filtered = append(b.filtered, row)
			}
		}
	}
	b.table.SetRows(b.filtered)
	if b.table.Cursor() >= len(b.filtered) && len(b.filtered) > 0 {
		b.table.SetCursor(0)
	}
}

// SetSize resizes the browser, reserving one line for the footer.
func (b *Browser) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.table.SetWidth(width)
	if height > 1 {
		b.table.SetHeight(height - 1)
	}
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.SetSize(msg.Width, msg.Height)
		return b, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			b.quitting = true
			return b, tea.Quit
		}
		if b.filtering {
			return b.updateFiltering(key)
		}
		switch key {
		case "q", "esc":
			b.quitting = true
			return b, tea.Quit
		case "/":
			b.filtering = true
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// updateFiltering consumes keys while the filter prompt is open.
func (b *Browser) updateFiltering(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		b.filtering = false
		b.SetFilter("")
	case "enter":
		b.filtering = false
	case "backspace":
		if b.filter != "" {
			runes := []rune(b.filter)
			b.SetFilter(string(runes[:len(runes)-1]))
		}
	default:
		// Single-rune keys extend the filter; navigation chords are ignored.
		if runes := []rune(key); len(runes) == 1 {
			b.SetFilter(b.filter + key)
		}
	}
	return b, nil
}

func (b *Browser) View() tea.View {
	if b.quitting {
		return tea.NewView("")
	}

	footer := "q quit · / filter"
	if b.filtering {
		footer = "filter: " + b.filter + "▌"
	} else if b.filter != "" {
		footer = "filter: " + b.filter + " (esc to clear) · q quit"
	}
	if !b.noColor {
		footer = lipgloss.NewStyle().Faint(true).Render(footer)
	}

	v := tea.NewView(b.table.View() + "\n" + footer)
	v.AltScreen = true
	return v
}

// Run starts the interactive browser and blocks until it exits.
func Run(b *Browser, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(b, opts...).Run()
	return err
}
