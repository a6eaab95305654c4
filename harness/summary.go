package harness

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintResults writes the end-of-run summary block: the attempted, passed,
// and failed counts, the success rate, and one entry per failure in the
// order the failures happened. It only inspects the ledger, never changes
// it, and it cannot itself fail; anything unprintable degrades to a
// placeholder.
func PrintResults(w io.Writer, ledger *Ledger) {
	summary := ledger.Summary()

	fmt.Fprintf(w, "Cases attempted: %d\n", summary.Attempted)
	fmt.Fprintf(w, "Cases passed:    %d\n", summary.Succeeded)
	fmt.Fprintf(w, "Cases failed:    %d\n", summary.Failed)
	if summary.RateDefined {
		fmt.Fprintf(w, "Success rate:    %.1f%%\n", summary.SuccessRate)
	} else {
		fmt.Fprintf(w, "Success rate:    n/a (no cases attempted)\n")
	}

	failures := ledger.Failures()
	if len(failures) == 0 {
		fmt.Fprintln(w)
		color.New(color.FgGreen, color.Bold).Fprintln(w, "All smoke tests passed")
		return
	}

	fmt.Fprintln(w)
	color.New(color.FgRed, color.Bold).Fprintf(w, "Failures (%d):\n", len(failures))
	for i, failure := range failures {
		label := string(failure.Failure)
		if failure.Critical {
			label += ", critical"
		}
		fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, failure.CaseName, label)
		fmt.Fprintf(w, "     %s\n", failure.URL)
		if failure.Detail != "" {
			fmt.Fprintf(w, "     %s\n", failure.Detail)
		}
		if failure.Status.IsDefined() {
			fmt.Fprintf(w, "     response: %s\n", failure.Diagnostic)
		}
	}
}
