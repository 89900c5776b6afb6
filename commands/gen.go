package commands

import (
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/spf13/cobra"
	"github.com/sunwei/pagegen/markup/highlight"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate helper files for a site",
	}

	cmd.AddCommand(newGenChromaStylesCmd())

	return cmd
}

func newGenChromaStylesCmd() *cobra.Command {
	var (
		style    string
		lineNums bool
	)

	cmd := &cobra.Command{
		Use:   "chromastyles",
		Short: "Generate CSS stylesheet for the code highlighter",
		Long: `Generate CSS stylesheet for the Chroma code highlighter for a given style.
The stylesheet is needed with the default class based highlighting.

See https://xyproto.github.io/splash/docs/all.html for a preview of the
available styles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return highlight.WriteCSS(cmd.OutOrStdout(), style, html.WithLineNumbers(lineNums))
		},
	}

	cmd.Flags().StringVar(&style, "style", highlight.DefaultConfig.Style, "highlighter style")
	cmd.Flags().BoolVar(&lineNums, "line-numbers", false, "include the line number styles")

	return cmd
}
