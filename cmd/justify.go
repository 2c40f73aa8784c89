package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/textgrid/internal/mdtext"
	"github.com/oakwood-commons/textgrid/pkg/logger"
	"github.com/oakwood-commons/textgrid/pkg/textgrid"
)

var (
	justifyWidth    int
	justifyColumns  int
	justifyValign   string
	justifyMarkdown bool
)

var justifyCmd = &cobra.Command{
	Use:   "justify [file]",
	Short: "Word-wrap text into justified lines or newspaper columns",
	Long: `Wrap the input text into lines of exactly the given width, widening
the gaps between words so both margins are flush. The last line of each
block stays ragged.

With --columns the text flows into that many side-by-side newspaper
columns sharing the width. With --markdown the input is parsed as
markdown and each paragraph is justified separately; headings, code
blocks, and lists are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		lgr := logger.FromContext(rootCtx)

		if justifyWidth < 1 {
			return fmt.Errorf("--width must be at least 1, got %d", justifyWidth)
		}
		if justifyColumns < 1 {
			return fmt.Errorf("--columns must be at least 1, got %d", justifyColumns)
		}
		vpos, err := parseVerticalPosition(justifyValign)
		if err != nil {
			return err
		}

		data, err := readInput(args)
		if err != nil {
			return err
		}

		var paragraphs [][]string
		if justifyMarkdown {
			paragraphs = mdtext.Paragraphs(data)
		} else if words := mdtext.Words(string(data)); len(words) > 0 {
			paragraphs = [][]string{words}
		}
		if len(paragraphs) == 0 {
			return fmt.Errorf("no text in input")
		}
		lgr.V(1).Info("justifying text",
			"paragraphs", len(paragraphs), "width", justifyWidth, "columns", justifyColumns)

		for pi, words := range paragraphs {
			if pi > 0 {
				fmt.Fprintln(os.Stdout)
			}
			for _, line := range justifyParagraph(words, justifyWidth, justifyColumns, vpos) {
				fmt.Fprintln(os.Stdout, line)
			}
		}
		return nil
	},
}

// justifyParagraph renders one paragraph's words. A single column justifies
// directly; multiple columns split the words proportionally and render the
// blocks side by side with one space between columns.
func justifyParagraph(words []string, width, columns int, vpos textgrid.VerticalPosition) []string {
	if columns == 1 {
		return textgrid.Justify(width, words)
	}

	colWidth := (width - (columns - 1)) / columns
	if colWidth < 1 {
		colWidth = 1
	}

	blocks := make([][]string, 0, columns)
	start := 0
	for _, share := range textgrid.Distribute(len(words), columns) {
		blocks = append(blocks, words[start:start+share])
		start += share
	}
	return textgrid.JustifyBlocks(colWidth, vpos, blocks)
}

func init() {
	justifyCmd.Flags().IntVarP(&justifyWidth, "width", "w", 60, "target line width")
	justifyCmd.Flags().IntVarP(&justifyColumns, "columns", "c", 1, "number of newspaper columns")
	justifyCmd.Flags().StringVar(&justifyValign, "valign", "top", "column fill: top|center|bottom")
	justifyCmd.Flags().BoolVarP(&justifyMarkdown, "markdown", "m", false, "parse input as markdown paragraphs")
}
