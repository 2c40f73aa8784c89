package textgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtentsCombineIsAMonoid(t *testing.T) {
	a := Extents{Left: 2, Right: 5}
	b := Extents{Left: 4, Right: 1}
	c := Extents{Left: 3, Right: 3}
	zero := Extents{}

	assert.Equal(t, a, a.Combine(zero), "right identity")
	assert.Equal(t, a, zero.Combine(a), "left identity")
	assert.Equal(t, a.Combine(b), b.Combine(a), "commutativity")
	assert.Equal(t, a.Combine(b).Combine(c), a.Combine(b.Combine(c)), "associativity")
}

func TestExtentsAbsorption(t *testing.T) {
	cells := []string{"3.14", "10.5", "2.25", "999"}
	ext := Extents{}
	for _, c := range cells {
		ext = ext.Combine(MeasureExtents('.', 0, c))
	}
	// Re-combining any already-folded cell changes nothing.
	for _, c := range cells {
		assert.Equal(t, ext, ext.Combine(MeasureExtents('.', 0, c)), "cell %q", c)
	}
}

func TestMeasureExtents(t *testing.T) {
	assert.Equal(t, Extents{Left: 1, Right: 3}, MeasureExtents('.', 0, "3.14"))
	assert.Equal(t, Extents{Left: 3, Right: 0}, MeasureExtents('.', 0, "999"))
	assert.Equal(t, Extents{}, MeasureExtents('.', 0, ""))
}

func TestDeriveColumnSizingFill(t *testing.T) {
	cs := DeriveColumnSizing(Expand(), NoAlign(), []string{"a", "abc", "ab"})
	require.Equal(t, SizingFill, cs.Kind)
	assert.Equal(t, 3, cs.Width)
	assert.Equal(t, 3, cs.TotalWidth())
}

func TestDeriveColumnSizingFillEmptyColumn(t *testing.T) {
	cs := DeriveColumnSizing(Expand(), NoAlign(), nil)
	require.Equal(t, SizingFill, cs.Kind)
	assert.Equal(t, 0, cs.Width)
}

func TestDeriveColumnSizingAlignedFill(t *testing.T) {
	cs := DeriveColumnSizing(Expand(), AlignAt('.', 0), []string{"3.14", "10.5", "2.25"})
	require.Equal(t, SizingAlignedFill, cs.Kind)
	assert.Equal(t, Extents{Left: 2, Right: 3}, cs.Extents)
	assert.Equal(t, 5, cs.TotalWidth())
}

func TestDeriveColumnSizingFixed(t *testing.T) {
	cs := DeriveColumnSizing(Fixed(8), NoAlign(), []string{"irrelevantly long cell"})
	require.Equal(t, SizingFixed, cs.Kind)
	assert.False(t, cs.Aligned)
	assert.Equal(t, 8, cs.TotalWidth())
}

func TestDeriveColumnSizingFixedAligned(t *testing.T) {
	cs := DeriveColumnSizing(Fixed(4), AlignAt('.', 0), []string{"3.14", "10.5"})
	require.Equal(t, SizingFixed, cs.Kind)
	assert.True(t, cs.Aligned)
	assert.Equal(t, Extents{Left: 2, Right: 3}, cs.Extents)
	assert.Equal(t, 4, cs.TotalWidth(), "fixed width wins over extents")
}

func TestDeriveColumnSizingNegativeFixedClamps(t *testing.T) {
	cs := DeriveColumnSizing(Fixed(-3), NoAlign(), []string{"x"})
	assert.Equal(t, 0, cs.TotalWidth())
}

func TestEnsureMinWidthFill(t *testing.T) {
	cs := ColumnSizing{Kind: SizingFill, Width: 4}
	assert.Equal(t, 9, EnsureMinWidth(cs, 9, Left).TotalWidth())
	assert.Equal(t, 4, EnsureMinWidth(cs, 2, Left).TotalWidth(), "never narrows")
}

func TestEnsureMinWidthFixedUntouched(t *testing.T) {
	cs := ColumnSizing{Kind: SizingFixed, Width: 4}
	assert.Equal(t, cs, EnsureMinWidth(cs, 20, Left), "a fixed width is a hard constraint")
}

func TestEnsureMinWidthAlignedFill(t *testing.T) {
	base := ColumnSizing{Kind: SizingAlignedFill, Marker: '.', Extents: Extents{Left: 2, Right: 3}}

	left := EnsureMinWidth(base, 8, Left)
	assert.Equal(t, Extents{Left: 2, Right: 6}, left.Extents, "left position grows the right side")

	right := EnsureMinWidth(base, 8, Right)
	assert.Equal(t, Extents{Left: 5, Right: 3}, right.Extents, "right position grows the left side")

	center := EnsureMinWidth(base, 8, Center)
	assert.Equal(t, Extents{Left: 3, Right: 5}, center.Extents, "odd unit goes right")

	assert.Equal(t, base, EnsureMinWidth(base, 5, Left), "already wide enough")
}
