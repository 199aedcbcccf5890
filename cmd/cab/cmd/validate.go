package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cab-lang/cab/noder"
	"github.com/cab-lang/cab/validate"
)

var validateWatch bool

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse and structurally validate a Cab source file",
	Long: `validate parses a Cab source file, runs the Noder and the Validator
over it, and prints every structural Report either stage collects —
unclosed brackets, malformed stringlikes, non-associative operator chains,
and the rest of spec.md §4.6's checks.

With no file argument, validate reads from standard input. --watch
requires a file argument and re-validates every time the file changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "re-validate whenever the file changes")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateWatch {
		if len(args) != 1 {
			return fmt.Errorf("validate --watch requires a file path")
		}
		out := cmd.OutOrStdout()
		return watchFile(out, args[0], func(src []byte) error {
			return checkSource(out, args[0], src)
		})
	}

	src, name, err := readSource(args)
	if err != nil {
		return err
	}
	return checkSource(cmd.OutOrStdout(), name, src)
}

func checkSource(out io.Writer, name string, src []byte) error {
	var sink validate.Sink
	expr := noder.Parse(src, &sink)
	validate.Validate(expr, &sink)

	if len(sink.Reports) == 0 {
		fmt.Fprintf(out, "%s: ok\n", name)
		return nil
	}
	printReports(out, name, sink.Reports)
	return fmt.Errorf("%s: %d structural error(s)", name, len(sink.Reports))
}
