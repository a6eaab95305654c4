package harness

// Reporter receives progress notifications while a suite runs. The console
// implementation lives in the main package; NullReporter is for callers that
// only care about the finished ledger.
type Reporter interface {
	// CaseStarted is called for every declared case before it executes, or
	// before it is found to be excluded by a filter.
	CaseStarted(testCase TestCase)

	// CaseFinished is called with the result of an executed case, together
	// with the trace the executor logged while running it.
	CaseFinished(result TestResult, debugOutput CapturedOutput)

	// CaseSkipped is called, instead of CaseFinished, for a case that a
	// filter excluded from the run.
	CaseSkipped(testCase TestCase, reason string)
}

type nullReporter struct{}

func (n nullReporter) CaseStarted(TestCase) {}

func (n nullReporter) CaseFinished(TestResult, CapturedOutput) {}

func (n nullReporter) CaseSkipped(TestCase, string) {}

// NullReporter returns a Reporter that discards all notifications.
func NullReporter() Reporter { return nullReporter{} }
