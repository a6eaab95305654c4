package harness

// Process exit codes. The exit code is the run's only machine-readable
// verdict, which is what CI gates on.
const (
	ExitPassed = 0
	ExitFailed = 1
)

// ExitCode decides the process exit code for a finished run.
//
// Two independent conditions escalate to ExitFailed: any failed case marked
// Critical, because the backend is fundamentally broken no matter how the
// rest went; or strictly more than half of the attempted cases failing,
// because that much breakage is unacceptable even if no single piece of it
// is critical. A run with scattered non-critical failures below that line is
// reported in full but still exits ExitPassed.
//
// An empty run, as when a filter excluded everything, passes trivially.
func ExitCode(ledger *Ledger) int {
	failures := ledger.Failures()
	for _, failure := range failures {
		if failure.Critical {
			return ExitFailed
		}
	}
	if 2*len(failures) > ledger.Attempted() {
		return ExitFailed
	}
	return ExitPassed
}
