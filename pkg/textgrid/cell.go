// Package textgrid renders tabular and paragraph text into fixed-width
// character grids for terminal and plain-text display.
//
// The package is purely functional over immutable inputs: every formatting
// function accepts all strings and non-negative widths and returns a string of
// exactly the requested width, truncating content rather than failing. Width
// accounting is rune-based; one rune is assumed to occupy one display column.
package textgrid

import (
	"strings"
	"unicode/utf8"
)

// Position places cell content within surplus horizontal space.
type Position int

const (
	Left Position = iota
	Right
	Center
)

// CutMark is the marker substituted for elided content when a cell is
// truncated to a fixed width. Width is the marker's display width, which may
// differ from its byte length (a single-glyph ellipsis counts as 1).
type CutMark struct {
	Mark  string
	Width int
}

var (
	// DefaultCutMark marks truncation with two dots.
	DefaultCutMark = CutMark{Mark: "..", Width: 2}
	// NoCutMark truncates without leaving a marker.
	NoCutMark = CutMark{}
	// ShortCutMark marks truncation with a single-column ellipsis glyph.
	ShortCutMark = CutMark{Mark: "…", Width: 1}
)

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Pad expands s to width by inserting spaces: on the right for Left, on the
// left for Right, and on both sides for Center, with the extra space going to
// the right when the surplus is odd. Callers guarantee width is at least the
// rune length of s; shorter widths return s unchanged.
func Pad(pos Position, width int, s string) string {
	surplus := width - runeLen(s)
	if surplus <= 0 {
		return s
	}
	switch pos {
	case Right:
		return spaces(surplus) + s
	case Center:
		left := surplus / 2
		return spaces(left) + s + spaces(surplus-left)
	default:
		return s + spaces(surplus)
	}
}

// TrimOrPad behaves as Pad when s fits within width. Otherwise it truncates s
// to exactly width including the cut mark: Left keeps the head and appends the
// mark, Right keeps the tail and prepends the mark, Center keeps the middle
// with a mark at each cut end. When width cannot even hold the mark, the mark
// itself is clipped to width.
func TrimOrPad(pos Position, cm CutMark, width int, s string) string {
	if width <= 0 {
		return ""
	}
	n := runeLen(s)
	if n <= width {
		return Pad(pos, width, s)
	}
	r := []rune(s)
	switch pos {
	case Right:
		keep := width - cm.Width
		if keep <= 0 {
			return clipMark(cm, width)
		}
		return cm.Mark + string(r[n-keep:])
	case Center:
		keep := width - 2*cm.Width
		if keep > 0 {
			start := (n - keep) / 2
			return cm.Mark + string(r[start:start+keep]) + cm.Mark
		}
		// No room for content between two marks; spend a single mark on
		// a head cut instead.
		keep = width - cm.Width
		if keep <= 0 {
			return clipMark(cm, width)
		}
		return string(r[:keep]) + cm.Mark
	default:
		keep := width - cm.Width
		if keep <= 0 {
			return clipMark(cm, width)
		}
		return string(r[:keep]) + cm.Mark
	}
}

// clipMark fits the mark itself into width when no content can be kept.
func clipMark(cm CutMark, width int) string {
	r := []rune(cm.Mark)
	if len(r) > width {
		r = r[:width]
	}
	return string(r) + spaces(width-len(r))
}

// SplitAtOccurrence scans s left to right for the n-th occurrence (0-indexed)
// of marker and returns the text before it and the text from it onward. A
// string without that occurrence is all prefix with an empty suffix.
func SplitAtOccurrence(marker rune, n int, s string) (prefix, suffix string) {
	count := 0
	for i, r := range s {
		if r != marker {
			continue
		}
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}

// AlignAround positions s so the alignment occurrence sits at column
// ext.Left: the prefix is right-aligned into ext.Left and the suffix is
// left-aligned into ext.Right. A cell lacking the occurrence has an empty
// right part, so its right side renders blank. The result is always exactly
// ext.Left+ext.Right wide provided the extents cover s.
func AlignAround(marker rune, occurrence int, ext Extents, s string) string {
	pre, suf := SplitAtOccurrence(marker, occurrence, s)
	return Pad(Right, ext.Left, pre) + Pad(Left, ext.Right, suf)
}

// AlignFixed renders s into exactly width columns while keeping the column's
// shared alignment point as stable as the budget allows. When the natural
// aligned width (ext.Left+ext.Right) exceeds width, the deficit is taken from
// the side dictated by pos: Left shrinks the right side first, Right the left
// side, Center both halves with the odd unit trimmed from the right. A side
// that cannot absorb its share cascades the remainder onto the other side,
// and a cut mark flags every truncated side.
func AlignFixed(pos Position, cm CutMark, width int, marker rune, occurrence int, ext Extents, s string) string {
	if width <= 0 {
		return ""
	}
	if width == 1 && runeLen(s) >= 2 && cm.Mark != "" {
		// Alignment is not representable in a single column; emit the
		// mark's short form to signal that content was elided.
		return string([]rune(cm.Mark)[0])
	}
	overflow := ext.Left + ext.Right - width
	if overflow <= 0 {
		return Pad(pos, width, AlignAround(marker, occurrence, ext, s))
	}
	left, right := shrinkExtents(pos, ext, overflow)
	pre, suf := SplitAtOccurrence(marker, occurrence, s)
	return TrimOrPad(Right, cm, left, pre) + TrimOrPad(Left, cm, right, suf)
}

// shrinkExtents distributes overflow columns of shrink between the two sides
// of the alignment point. The returned sides are non-negative and sum to
// ext.Left+ext.Right-overflow.
func shrinkExtents(pos Position, ext Extents, overflow int) (left, right int) {
	var fromLeft, fromRight int
	switch pos {
	case Left:
		fromRight = overflow
	case Right:
		fromLeft = overflow
	default:
		fromLeft = overflow / 2
		fromRight = overflow - fromLeft
	}
	if over := fromLeft - ext.Left; over > 0 {
		fromLeft = ext.Left
		fromRight += over
	}
	if over := fromRight - ext.Right; over > 0 {
		fromRight = ext.Right
		fromLeft += over
	}
	return ext.Left - fromLeft, ext.Right - fromRight
}
