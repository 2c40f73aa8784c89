package tui

import (
	"testing"
)

func makeBrowser() *Browser {
	cols := []Column{{Title: "NAME", Width: 10}, {Title: "LANG", Width: 10}}
	rows := []Row{
		{"apple", "red"},
		{"banana", "yellow"},
		{"apricot", "orange"},
	}
	return NewBrowser(cols, rows, true)
}

func TestBrowser_FilterPrefix(t *testing.T) {
	b := makeBrowser()

	if got := len(b.Rows()); got != 3 {
		t.Fatalf("expected 3 rows initially, got %d", got)
	}

	b.SetFilter("ap")
	rows := b.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after filter 'ap', got %d", len(rows))
	}
	if rows[0][0] != "apple" || rows[1][0] != "apricot" {
		t.Fatalf("unexpected filter order: %+v", rows)
	}

	b.SetFilter("")
	if len(b.Rows()) != 3 {
		t.Fatalf("expected 3 rows after clearing filter, got %d", len(b.Rows()))
	}
}

func TestBrowser_SelectedRow(t *testing.T) {
	b := makeBrowser()

	sel := b.SelectedRow()
	if sel == nil || sel[0] != "apple" {
		t.Fatalf("expected first row selected, got %+v", sel)
	}

	b.SetFilter("zzz")
	if sel := b.SelectedRow(); sel != nil {
		t.Fatalf("expected nil selection with empty filter result, got %+v", sel)
	}
}

func TestBrowser_FilterModeKeys(t *testing.T) {
	b := makeBrowser()

	b.filtering = true
	b.updateFiltering("a")
	b.updateFiltering("p")
	if b.Filter() != "ap" {
		t.Fatalf("expected filter 'ap', got %q", b.Filter())
	}

	b.updateFiltering("backspace")
	if b.Filter() != "a" {
		t.Fatalf("expected filter 'a' after backspace, got %q", b.Filter())
	}

	// Navigation chords are not typed into the filter.
	b.updateFiltering("ctrl+a")
	if b.Filter() != "a" {
		t.Fatalf("expected chord to be ignored, got %q", b.Filter())
	}

	b.updateFiltering("enter")
	if b.filtering {
		t.Fatal("expected enter to close the filter prompt")
	}
	if b.Filter() != "a" {
		t.Fatalf("expected enter to keep the filter, got %q", b.Filter())
	}

	b.filtering = true
	b.updateFiltering("esc")
	if b.filtering || b.Filter() != "" {
		t.Fatalf("expected esc to cancel and clear, got filtering=%v filter=%q", b.filtering, b.Filter())
	}
}

func TestBrowser_SetSizeReservesFooterLine(t *testing.T) {
	b := makeBrowser()
	b.SetSize(120, 40)
	if b.width != 120 || b.height != 40 {
		t.Fatalf("unexpected size: %dx%d", b.width, b.height)
	}
}
