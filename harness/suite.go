package harness

// Suite is an ordered list of cases bound to the executor that will run
// them. Running a suite is a single pass: cases execute strictly in declared
// order, one at a time, and a failure never prevents the cases after it from
// running. Only the exit decision at the end judges the run as a whole.
type Suite struct {
	executor *Executor
	cases    []TestCase
}

// NewSuite pairs an executor with the cases it will drive. The case list is
// copied; the caller's slice is not retained.
func NewSuite(executor *Executor, cases []TestCase) *Suite {
	return &Suite{
		executor: executor,
		cases:    append([]TestCase(nil), cases...),
	}
}

// Run executes the suite once and returns the completed ledger. filter may
// be nil to run every case; reporter may be nil to run silently. Cases the
// filter excludes are announced to the reporter but never executed or
// recorded.
func (s *Suite) Run(filter Filter, reporter Reporter) *Ledger {
	if reporter == nil {
		reporter = NullReporter()
	}
	ledger := &Ledger{}
	for _, testCase := range s.cases {
		reporter.CaseStarted(testCase)
		if filter != nil && !filter(testCase) {
			reporter.CaseSkipped(testCase, "excluded by filter parameters")
			continue
		}
		var debugLogger CapturingLogger
		result := s.executor.Execute(testCase, &debugLogger)
		ledger.Record(result)
		reporter.CaseFinished(result, debugLogger.Output())
	}
	return ledger
}
