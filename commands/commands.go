// Package commands implements the pagegen command line.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the command line with args and returns the process exit
// code.
func Execute(args []string) int {
	return execute(args, os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagegen",
		Short: "pagegen builds a static site",
		Long: `pagegen converts a directory of Markdown or HTML documents into a
static site using html/template layouts: one page per document, an index
and optional tag listings.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(
		newBuildCmd().cmd,
		newVersionCmd(),
		newGenCmd(),
	)

	return cmd
}
