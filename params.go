package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tubesave/api-smoke-tests/harness"
)

// baseURLEnvVar names the environment variable consulted when -url is not
// given, so that CI pipelines can configure the target once. A .env file in
// the working directory is honored too; see main.
const baseURLEnvVar = "TUBESAVE_BASE_URL"

type commandParams struct {
	baseURL    string
	filters    harness.RegexFilters
	waitFor    time.Duration
	jsonReport string
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	// ContinueOnError keeps the exit decision with main, which only ever
	// exits 0 or 1; flag reports the parse error and usage on its own.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.baseURL, "url", "", "base URL of the deployed backend (default $"+baseURLEnvVar+")")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select cases to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select cases not to run")
	fs.DurationVar(&c.waitFor, "wait", 0, "wait up to this long for the backend to answer before running")
	fs.StringVar(&c.jsonReport, "json-report", "", "write a JSON report of the run to this file")
	fs.BoolVar(&c.debug, "debug", false, "show the captured exchange trace for failed cases")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show the captured exchange trace for all cases")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.baseURL == "" {
		c.baseURL = os.Getenv(baseURLEnvVar)
	}
	if c.baseURL == "" {
		fmt.Fprintf(os.Stderr, "-url or $%s is required\n", baseURLEnvVar)
		fs.Usage()
		return false
	}
	return true
}
