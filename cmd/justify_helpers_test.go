package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/textgrid/pkg/textgrid"
)

func TestJustifyParagraphSingleColumn(t *testing.T) {
	words := strings.Fields("This text will not fit on one line.")
	lines := justifyParagraph(words, 10, 1, textgrid.VStart)
	assert.Equal(t, []string{
		"This  text",
		"will   not",
		"fit on one",
		"line.",
	}, lines)
}

func TestJustifyParagraphTwoColumns(t *testing.T) {
	words := strings.Fields("one two three four five six seven eight")
	lines := justifyParagraph(words, 21, 2, textgrid.VStart)
	require.NotEmpty(t, lines)

	// Two 10-wide columns and a single space gutter.
	for _, line := range lines {
		assert.Len(t, []rune(line), 21, "line %q", line)
	}
}

func TestJustifyParagraphBottomFill(t *testing.T) {
	// Nine words split 5/4: the second column is shorter and, with bottom
	// fill, gets its blank line at the top.
	words := strings.Fields("aaaa bbbb cccc dddd eeee ffff gggg hhhh iiii")
	lines := justifyParagraph(words, 9, 2, textgrid.VEnd)
	require.Len(t, lines, 5)
	assert.Equal(t, "aaaa     ", lines[0])
	assert.Equal(t, "eeee iiii", lines[4])
}

func TestJustifyParagraphNarrowWidthClampsColumns(t *testing.T) {
	words := []string{"a", "b", "c"}
	lines := justifyParagraph(words, 2, 3, textgrid.VStart)
	require.NotEmpty(t, lines)
}
