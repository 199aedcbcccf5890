package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cab-lang/cab/lexer"
)

var (
	tokensShowText bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a Cab source file and print the resulting tokens",
	Long: `Tokenize a Cab program and print the kind of every token the
tokenizer produces, in source order, including trivia and error tokens.

With no file argument, tokens reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensShowText, "show-text", true, "print each token's source text alongside its kind")
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(args)
	if err != nil {
		return err
	}

	logger().Debug("tokenizing", "file", name, "bytes", len(src))

	toks := lexer.New(src).All()
	out := cmd.OutOrStdout()
	for _, tok := range toks {
		if tokensShowText {
			fmt.Fprintf(out, "%-28s %q\n", tok.Kind.String(), tok.Text)
		} else {
			fmt.Fprintln(out, tok.Kind.String())
		}
	}
	return nil
}
