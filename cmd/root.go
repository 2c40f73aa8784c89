// Package cmd wires the textgrid CLI: cobra commands over the rendering
// engine, with dataset and layout loading at the edges.
package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/textgrid/pkg/logger"
	"github.com/oakwood-commons/textgrid/pkg/settings"
)

var (
	// rootCtx carries the logger and run settings into subcommands.
	rootCtx context.Context = context.Background()

	debug   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Render fixed-width text tables and justified text blocks",
	Long: `textgrid renders rows of data as bordered fixed-width tables and
wraps prose into justified blocks and newspaper columns.

Data is read from a file argument or stdin as CSV, TSV, JSON, or YAML.
Column widths, alignment, and truncation markers are configured per
column with a TOML or YAML layout file.`,
	Example:      "\n  textgrid table data.csv --header\n  cat rows.json | textgrid table --format json --style rounded\n  textgrid justify essay.txt --width 60 --columns 2\n  textgrid styles\n",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// debug maps to zap's DebugLevel (-1); everything else logs at Info.
		var level int8 = 0
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr,
			logger.RootCommandKey, settings.CliBinaryName,
			logger.SubCommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)

		cmd.Flags().Visit(func(f *pflag.Flag) {
			lgr.V(1).Info("flag set", "name", f.Name, "value", f.Value.String())
		})

		params := settings.NewCliParams()
		params.MinLogLevel = level
		params.NoColor = noColor
		rootCtx = settings.IntoContext(rootCtx, params)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print " + settings.CliBinaryName + " version",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(cliVersionString()) //nolint:forbidigo
		return nil
	},
}

// cliVersionString builds a human-readable version string for CLI output and
// Cobra's --version flag.
func cliVersionString() string {
	return fmt.Sprintf("%s %s (go %s)",
		settings.CliBinaryName,
		settings.VersionInformation.BuildVersion,
		runtime.Version())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(justifyCmd)
	rootCmd.AddCommand(stylesCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
