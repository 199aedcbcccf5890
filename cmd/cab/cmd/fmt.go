package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cab-lang/cab/format"
	"github.com/cab-lang/cab/noder"
	"github.com/cab-lang/cab/validate"
)

var fmtWatch bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Parenthesize a Cab source file's expression",
	Long: `fmt parses a Cab source file and pretty-prints it with format.Parenthesize:
every operation fully parenthesized, with ANSI bracket coloring by nesting
depth.

With no file argument, fmt reads from standard input. --watch requires a
file argument and re-renders every time the file changes on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtWatch, "watch", false, "re-render whenever the file changes")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWatch {
		if len(args) != 1 {
			return fmt.Errorf("fmt --watch requires a file path")
		}
		out := cmd.OutOrStdout()
		return watchFile(out, args[0], func(src []byte) error {
			return renderParenthesized(out, src)
		})
	}

	src, _, err := readSource(args)
	if err != nil {
		return err
	}
	return renderParenthesized(cmd.OutOrStdout(), src)
}

func renderParenthesized(out io.Writer, src []byte) error {
	var sink validate.Sink
	expr := noder.Parse(src, &sink)
	if err := format.Parenthesize(out, expr); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}
