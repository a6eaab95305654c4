package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tubesave/api-smoke-tests/harness"
)

// consoleReporter prints one block per case as the run proceeds, in the
// declared order. The final tallies are printed separately by
// harness.PrintResults once the run is over.
type consoleReporter struct {
	out                  io.Writer
	debugOutputOnFailure bool
	debugOutputOnSuccess bool
}

func (c *consoleReporter) CaseStarted(testCase harness.TestCase) {
	fmt.Fprintf(c.out, "[%s]\n", testCase.Name)
}

func (c *consoleReporter) CaseFinished(result harness.TestResult, debugOutput harness.CapturedOutput) {
	if result.Success {
		fmt.Fprintf(c.out, "  %s (status %d)\n", passedLabel(), result.Status.IntValue())
	} else {
		fmt.Fprintf(c.out, "  %s (%s): %s\n", failedLabel(), result.Failure, result.Detail)
	}
	if len(debugOutput) > 0 &&
		((!result.Success && c.debugOutputOnFailure) || (result.Success && c.debugOutputOnSuccess)) {
		debugOutput.Dump(c.out, "    DEBUG ")
	}
}

func (c *consoleReporter) CaseSkipped(testCase harness.TestCase, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out, "  %s\n", skippedLabel())
	} else {
		fmt.Fprintf(c.out, "  %s (%s)\n", skippedLabel(), reason)
	}
}

func passedLabel() string {
	return color.GreenString("PASSED")
}

func failedLabel() string {
	return color.New(color.FgRed, color.Bold).Sprint("FAILED")
}

func skippedLabel() string {
	return color.YellowString("SKIPPED")
}
