// Package logging sets up cab's diagnostic logger: a plain slog text
// handler whose verbosity is env-gated, the same shape the teacher's
// tokenizer (runtime/lexer/lexer.go) sets up for itself rather than taking
// a logger as a dependency.
package logging

import (
	"log/slog"
	"os"
)

// LevelEnv is the environment variable that raises the log level to debug
// when set to "debug", mirroring the teacher's DEVCMD_DEBUG_LEXER switch.
const LevelEnv = "CAB_LOG_LEVEL"

// New returns a logger writing to stderr. CAB_LOG_LEVEL=debug enables debug
// output; anything else (including unset) stays at info. Time and level
// keys are stripped so output stays diffable across runs, matching the
// teacher's ReplaceAttr.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv(LevelEnv) == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey, slog.LevelKey:
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler)
}
