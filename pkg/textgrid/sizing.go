package textgrid

// Extents records the widest prefix and suffix around a column's alignment
// point. Combine is associative and commutative with the zero value as
// identity, so a column's extents may be folded from its cells in any order.
type Extents struct {
	Left  int
	Right int
}

// Combine merges two extents, keeping the wider side of each.
func (e Extents) Combine(o Extents) Extents {
	if o.Left > e.Left {
		e.Left = o.Left
	}
	if o.Right > e.Right {
		e.Right = o.Right
	}
	return e
}

// Width is the total aligned width.
func (e Extents) Width() int {
	return e.Left + e.Right
}

// MeasureExtents measures one cell around the given alignment occurrence.
// A cell lacking the occurrence counts entirely toward the left side.
func MeasureExtents(marker rune, occurrence int, s string) Extents {
	pre, suf := SplitAtOccurrence(marker, occurrence, s)
	return Extents{Left: runeLen(pre), Right: runeLen(suf)}
}

// Length is a column's sizing policy: expand to the widest cell (the zero
// value) or hold an exact width.
type Length struct {
	fixed bool
	width int
}

// Expand sizes the column to the widest of its cells.
func Expand() Length {
	return Length{}
}

// Fixed forces the column to exactly width columns, trimming or padding every
// cell. Negative widths clamp to zero.
func Fixed(width int) Length {
	if width < 0 {
		width = 0
	}
	return Length{fixed: true, width: width}
}

// Fixed reports whether the policy holds an exact width, and that width.
func (l Length) Fixed() (int, bool) {
	return l.width, l.fixed
}

// Alignment designates the marker occurrence that cells of a column line up
// on. The zero value requests no alignment.
type Alignment struct {
	active     bool
	marker     rune
	occurrence int
}

// NoAlign requests plain positioning without an alignment point.
func NoAlign() Alignment {
	return Alignment{}
}

// AlignAt lines cells up on the occurrence-th (0-indexed) appearance of
// marker.
func AlignAt(marker rune, occurrence int) Alignment {
	return Alignment{active: true, marker: marker, occurrence: occurrence}
}

// At reports the alignment marker and occurrence, and whether alignment is
// requested at all.
func (a Alignment) At() (marker rune, occurrence int, active bool) {
	return a.marker, a.occurrence, a.active
}

// SizingKind discriminates the ColumnSizing variants.
type SizingKind int

const (
	// SizingFill expands the column to its widest cell.
	SizingFill SizingKind = iota
	// SizingAlignedFill expands the column around a shared alignment point.
	SizingAlignedFill
	// SizingFixed holds the column at an exact width, aligned or not.
	SizingFixed
)

// ColumnSizing is the width decision for one column, derived once from every
// cell in the column before any cell is formatted and immutable thereafter.
type ColumnSizing struct {
	Kind       SizingKind
	Width      int     // SizingFill and SizingFixed
	Marker     rune    // alignment variants
	Occurrence int     // alignment variants
	Extents    Extents // alignment variants
	Aligned    bool    // SizingFixed: alignment requested
}

// TotalWidth is the exact rendered width of every cell in the column.
func (cs ColumnSizing) TotalWidth() int {
	if cs.Kind == SizingAlignedFill {
		return cs.Extents.Width()
	}
	return cs.Width
}

// DeriveColumnSizing folds a column's cells into its sizing decision under
// the given length and alignment policies. O(rows x average cell length).
func DeriveColumnSizing(length Length, align Alignment, cells []string) ColumnSizing {
	foldExtents := func() Extents {
		ext := Extents{}
		for _, c := range cells {
			ext = ext.Combine(MeasureExtents(align.marker, align.occurrence, c))
		}
		return ext
	}

	switch {
	case !length.fixed && !align.active:
		w := 0
		for _, c := range cells {
			if n := runeLen(c); n > w {
				w = n
			}
		}
		return ColumnSizing{Kind: SizingFill, Width: w}
	case !length.fixed:
		return ColumnSizing{
			Kind:       SizingAlignedFill,
			Marker:     align.marker,
			Occurrence: align.occurrence,
			Extents:    foldExtents(),
		}
	case align.active:
		return ColumnSizing{
			Kind:       SizingFixed,
			Width:      length.width,
			Marker:     align.marker,
			Occurrence: align.occurrence,
			Extents:    foldExtents(),
			Aligned:    true,
		}
	default:
		return ColumnSizing{Kind: SizingFixed, Width: length.width}
	}
}

// EnsureMinWidth widens a sizing decision to at least min columns; it never
// narrows. Fixed widths are a hard user constraint and stay untouched.
// Aligned columns grow on the side surplus space would occupy under pos,
// mirroring the shrink distribution of AlignFixed.
func EnsureMinWidth(cs ColumnSizing, min int, pos Position) ColumnSizing {
	switch cs.Kind {
	case SizingFill:
		if cs.Width < min {
			cs.Width = min
		}
	case SizingAlignedFill:
		if deficit := min - cs.Extents.Width(); deficit > 0 {
			cs.Extents = growExtents(pos, cs.Extents, deficit)
		}
	}
	return cs
}

func growExtents(pos Position, ext Extents, deficit int) Extents {
	switch pos {
	case Right:
		ext.Left += deficit
	case Center:
		add := deficit / 2
		ext.Left += add
		ext.Right += deficit - add
	default:
		ext.Right += deficit
	}
	return ext
}
