package textgrid

import (
	"strings"
	"testing"
)

func TestPadLeft(t *testing.T) {
	result := Pad(Left, 5, "ab")
	if result != "ab   " {
		t.Fatalf("expected 'ab   ', got %q", result)
	}
}

func TestPadRight(t *testing.T) {
	result := Pad(Right, 5, "ab")
	if result != "   ab" {
		t.Fatalf("expected '   ab', got %q", result)
	}
}

func TestPadCenterOddSurplusFavorsRight(t *testing.T) {
	result := Pad(Center, 5, "ab")
	if result != " ab  " {
		t.Fatalf("expected ' ab  ', got %q", result)
	}
}

func TestPadCenterEvenSurplus(t *testing.T) {
	result := Pad(Center, 4, "ab")
	if result != " ab " {
		t.Fatalf("expected ' ab ', got %q", result)
	}
}

func TestPadWidthSmallerThanContent(t *testing.T) {
	// Caller contract: Pad never truncates.
	result := Pad(Left, 2, "hello")
	if result != "hello" {
		t.Fatalf("expected 'hello', got %q", result)
	}
}

func TestTrimOrPadScenarios(t *testing.T) {
	tests := []struct {
		name  string
		pos   Position
		cm    CutMark
		width int
		in    string
		want  string
	}{
		{"left cut keeps head", Left, DefaultCutMark, 4, "hello", "he.."},
		{"right cut keeps tail", Right, DefaultCutMark, 4, "hello", "..lo"},
		{"center cut keeps middle", Center, DefaultCutMark, 5, "abcdefgh", "..d.."},
		{"center falls back to head cut", Center, DefaultCutMark, 4, "hello", "he.."},
		{"short mark", Left, ShortCutMark, 4, "hello", "hel…"},
		{"mark clipped to width", Left, DefaultCutMark, 1, "hello", "."},
		{"width equals mark", Left, DefaultCutMark, 2, "hello", ".."},
		{"no mark truncates silently", Left, NoCutMark, 3, "hello", "hel"},
		{"no mark right", Right, NoCutMark, 3, "hello", "llo"},
		{"zero width", Left, DefaultCutMark, 0, "hello", ""},
		{"fits exactly", Left, DefaultCutMark, 5, "hello", "hello"},
		{"pads when short", Right, DefaultCutMark, 6, "ab", "    ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimOrPad(tt.pos, tt.cm, tt.width, tt.in)
			if got != tt.want {
				t.Fatalf("TrimOrPad(%v, %q, %d, %q) = %q, want %q",
					tt.pos, tt.cm.Mark, tt.width, tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimOrPadWidthInvariant(t *testing.T) {
	samples := []string{"", "a", "ab", "hello", "a much longer cell value", "3.14159", "ümläut"}
	marks := []CutMark{DefaultCutMark, NoCutMark, ShortCutMark}
	for _, pos := range []Position{Left, Right, Center} {
		for _, cm := range marks {
			for width := 0; width <= 12; width++ {
				for _, s := range samples {
					got := TrimOrPad(pos, cm, width, s)
					if n := len([]rune(got)); n != width {
						t.Fatalf("TrimOrPad(%v, %q, %d, %q) has width %d", pos, cm.Mark, width, s, n)
					}
				}
			}
		}
	}
}

func TestTrimOrPadAgreesWithPad(t *testing.T) {
	for _, pos := range []Position{Left, Right, Center} {
		for _, cm := range []CutMark{DefaultCutMark, NoCutMark, ShortCutMark} {
			for width := 5; width <= 8; width++ {
				got := TrimOrPad(pos, cm, width, "cell")
				want := Pad(pos, width, "cell")
				if got != want {
					t.Fatalf("TrimOrPad(%v, %q, %d) = %q, Pad = %q", pos, cm.Mark, width, got, want)
				}
			}
		}
	}
}

func TestSplitAtOccurrence(t *testing.T) {
	tests := []struct {
		name   string
		marker rune
		n      int
		in     string
		prefix string
		suffix string
	}{
		{"first dot", '.', 0, "3.14", "3", ".14"},
		{"second dot", '.', 1, "1.2.3", "1.2", ".3"},
		{"missing occurrence", '.', 2, "1.2", "1.2", ""},
		{"no marker at all", '.', 0, "abc", "abc", ""},
		{"marker leads", '.', 0, ".5", "", ".5"},
		{"empty string", '.', 0, "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pre, suf := SplitAtOccurrence(tt.marker, tt.n, tt.in)
			if pre != tt.prefix || suf != tt.suffix {
				t.Fatalf("SplitAtOccurrence(%q, %d, %q) = (%q, %q), want (%q, %q)",
					tt.marker, tt.n, tt.in, pre, suf, tt.prefix, tt.suffix)
			}
		})
	}
}

func TestAlignAround(t *testing.T) {
	ext := Extents{Left: 2, Right: 3}
	if got := AlignAround('.', 0, ext, "3.14"); got != " 3.14" {
		t.Fatalf("expected ' 3.14', got %q", got)
	}
	// No occurrence: the right side is blank, never cut-marked.
	if got := AlignAround('.', 0, ext, "7"); got != " 7   " {
		t.Fatalf("expected ' 7   ', got %q", got)
	}
}

func TestAlignFixed(t *testing.T) {
	ext := Extents{Left: 2, Right: 3}
	tests := []struct {
		name  string
		pos   Position
		width int
		in    string
		want  string
	}{
		{"zero width", Left, 0, "3.14", ""},
		{"fixed exceeds natural pads left", Left, 7, "3.14", " 3.14  "},
		{"fixed exceeds natural pads right", Right, 7, "3.14", "   3.14"},
		{"left policy cuts the tail", Left, 4, "3.14", " 3.."},
		{"right policy cuts the head", Right, 4, "3.14", "3.14"},
		{"short cell absorbs the cut", Right, 4, "7", "   7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignFixed(tt.pos, DefaultCutMark, tt.width, '.', 0, ext, tt.in)
			if got != tt.want {
				t.Fatalf("AlignFixed(%v, %d, %q) = %q, want %q", tt.pos, tt.width, tt.in, got, tt.want)
			}
		})
	}
}

func TestAlignFixedWidthOne(t *testing.T) {
	got := AlignFixed(Left, DefaultCutMark, 1, '.', 0, Extents{Left: 2, Right: 3}, "3.14")
	if got != "." {
		t.Fatalf("expected '.', got %q", got)
	}
}

func TestAlignFixedLeftSideTakesFullShrink(t *testing.T) {
	ext := Extents{Left: 5, Right: 2}
	got := AlignFixed(Right, DefaultCutMark, 4, '.', 0, ext, "12345.6")
	if got != "...6" {
		t.Fatalf("expected '...6', got %q", got)
	}
}

func TestAlignFixedCascade(t *testing.T) {
	// The left side cannot absorb its full share; the remainder moves right.
	ext := Extents{Left: 1, Right: 4}
	got := AlignFixed(Right, DefaultCutMark, 3, '.', 0, ext, "a.bcd")
	if got != "..." {
		t.Fatalf("expected '...', got %q", got)
	}
}

func TestAlignFixedBothSidesCut(t *testing.T) {
	ext := Extents{Left: 5, Right: 5}
	got := AlignFixed(Center, DefaultCutMark, 4, '.', 0, ext, "abcde.fghi")
	if got != "...." {
		t.Fatalf("expected '....', got %q", got)
	}
	if !strings.HasPrefix(got, "..") || !strings.HasSuffix(got, "..") {
		t.Fatalf("expected marks on both ends, got %q", got)
	}
}

func TestAlignFixedWidthInvariant(t *testing.T) {
	cells := []string{"", "7", "3.14", "12345.6", "no-marker", ".5", "1.2.3"}
	// Extents must cover every cell, as they do when derived by folding the
	// column; wider-than-needed extents are also legal.
	base := Extents{}
	for _, s := range cells {
		base = base.Combine(MeasureExtents('.', 0, s))
	}
	exts := []Extents{base, base.Combine(Extents{Left: 12, Right: 8})}
	for _, pos := range []Position{Left, Right, Center} {
		for _, cm := range []CutMark{DefaultCutMark, NoCutMark, ShortCutMark} {
			for _, ext := range exts {
				for width := 0; width <= 24; width++ {
					for _, s := range cells {
						got := AlignFixed(pos, cm, width, '.', 0, ext, s)
						if n := len([]rune(got)); n != width {
							t.Fatalf("AlignFixed(%v, %q, %d, ext=%+v, %q) has width %d: %q",
								pos, cm.Mark, width, ext, s, n, got)
						}
					}
				}
			}
		}
	}
}
