package cmd

import (
	"fmt"
	"io"
	"os"
)

// readSource reads args[0] if present, otherwise stdin, matching every
// subcommand's "file or stdin" convention.
func readSource(args []string) (src []byte, name string, err error) {
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return src, args[0], nil
	}
	src, err = io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("reading stdin: %w", err)
	}
	return src, "<stdin>", nil
}
