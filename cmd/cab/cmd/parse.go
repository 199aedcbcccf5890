package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cab-lang/cab/format"
	"github.com/cab-lang/cab/noder"
	"github.com/cab-lang/cab/validate"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Cab source file and print its parenthesized expression tree",
	Long: `Parse builds the concrete syntax tree for a Cab source file, reports
any structural errors the Noder recovers from, and prints the parenthesized
form of the resulting expression (see the fmt command for the same
rendering without the diagnostic preamble).

With no file argument, parse reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(args)
	if err != nil {
		return err
	}

	var sink validate.Sink
	expr := noder.Parse(src, &sink)

	out := cmd.OutOrStdout()
	if len(sink.Reports) > 0 {
		printReports(cmd.ErrOrStderr(), name, sink.Reports)
	}

	if err := format.Parenthesize(out, expr); err != nil {
		return fmt.Errorf("parse: rendering %s: %w", name, err)
	}
	fmt.Fprintln(out)

	if len(sink.Reports) > 0 {
		return fmt.Errorf("%s: %d structural error(s)", name, len(sink.Reports))
	}
	return nil
}
