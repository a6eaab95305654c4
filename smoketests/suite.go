package smoketests

import (
	"github.com/tubesave/api-smoke-tests/harness"
)

// RunSuite executes the full declared case list against the executor's
// backend and returns the run's ledger.
func RunSuite(
	executor *harness.Executor,
	filter harness.Filter,
	reporter harness.Reporter,
) *harness.Ledger {
	return harness.NewSuite(executor, AllCases()).Run(filter, reporter)
}
