package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tubesave/api-smoke-tests/harness"
	"github.com/tubesave/api-smoke-tests/smoketests"
)

// The backend mounts all of its routes under this prefix; case paths are
// joined beneath it.
const apiPathPrefix = "/api"

func main() {
	// A .env file can hold TUBESAVE_BASE_URL for local runs. Absence is fine.
	_ = godotenv.Load()

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	apiBaseURL := strings.TrimSuffix(params.baseURL, "/") + apiPathPrefix

	if params.waitFor > 0 {
		if err := harness.AwaitEndpoint(apiBaseURL+"/", params.waitFor, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Backend not reachable: %s\n", err)
			os.Exit(1)
		}
	}

	fmt.Println()
	if params.filters.MustMatch.IsDefined() || params.filters.MustNotMatch.IsDefined() {
		fmt.Println("Some cases will be skipped based on the filter criteria for this run:")
		if params.filters.MustMatch.IsDefined() {
			fmt.Printf("  skip any not matching %s\n", params.filters.MustMatch)
		}
		if params.filters.MustNotMatch.IsDefined() {
			fmt.Printf("  skip any matching %s\n", params.filters.MustNotMatch)
		}
		fmt.Println()
	}

	fmt.Printf("Running smoke tests against %s\n", apiBaseURL)

	reporter := &consoleReporter{
		out:                  os.Stdout,
		debugOutputOnFailure: params.debug || params.debugAll,
		debugOutputOnSuccess: params.debugAll,
	}

	executor := harness.NewExecutor(apiBaseURL)
	startedAt := time.Now()
	ledger := smoketests.RunSuite(executor, params.filters.AsFilter, reporter)
	finishedAt := time.Now()

	fmt.Println()
	harness.PrintResults(os.Stdout, ledger)

	if params.jsonReport != "" {
		report := harness.NewRunReport(apiBaseURL, startedAt, finishedAt, ledger)
		if err := report.WriteFile(params.jsonReport); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write JSON report: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote JSON report to %s\n", params.jsonReport)
	}

	os.Exit(harness.ExitCode(ledger))
}
