package cmd

import (
	"fmt"
	"io"

	"github.com/cab-lang/cab/validate"
)

// printReports writes one line per Report, in the order the sink collected
// them, labels indented beneath their diagnostic.
func printReports(w io.Writer, name string, reports []validate.Report) {
	for _, r := range reports {
		fmt.Fprintf(w, "%s: %s\n", name, r.Message)
		for _, l := range r.Labels {
			fmt.Fprintf(w, "  at %d..%d: %s\n", l.Span.Start, l.Span.End, l.Message)
		}
		if r.Tip != "" {
			fmt.Fprintf(w, "  tip: %s\n", r.Tip)
		}
		if r.Help != "" {
			fmt.Fprintf(w, "  help: %s\n", r.Help)
		}
	}
}
