// Package cmd wires cab's cobra command tree: tokens, parse, fmt, validate.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cab-lang/cab/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "cab",
	Short: "Cab language tokenizer, parser, formatter, and validator",
	Long: `cab is the command-line front end for the Cab expression language
front end: a context-sensitive tokenizer, a lossless concrete syntax tree,
a typed expression view, a structural validator, and a parenthesizing
pretty-printer.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override CAB_LOG_LEVEL (info, debug)")
}

// logger builds a logger, letting --log-level override CAB_LOG_LEVEL for
// this process only.
func logger() *slog.Logger {
	if logLevel != "" {
		os.Setenv(logging.LevelEnv, logLevel)
	}
	return logging.New()
}
