package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/textgrid/pkg/textgrid"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Show a sample table in every border style",
	RunE: func(_ *cobra.Command, _ []string) error {
		sample := textgrid.Table{
			Groups: []textgrid.RowGroup{
				{{"ada", "1815"}, {"grace", "1906"}},
				{{"ken", "1943"}},
			},
			Header: &textgrid.Header{Labels: []string{"Name", "Born"}},
			Specs: []textgrid.LayoutSpec{
				textgrid.DefaultSpec(),
				textgrid.NumericSpec(),
			},
		}
		for si, style := range textgrid.Styles() {
			if si > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintln(os.Stdout, style.Name)
			sample.Style = style
			for _, line := range colorizeTable(sample, noColor) {
				fmt.Fprintln(os.Stdout, line)
			}
		}
		return nil
	},
}
