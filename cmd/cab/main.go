// Command cab is the command-line front end for the Cab language tools:
// tokenizing, parsing, formatting, and validating source files.
package main

import (
	"fmt"
	"os"

	"github.com/cab-lang/cab/cmd/cab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
