package harness

// Ledger is the append-only record of one suite run. It lives exactly as long
// as the run: the Suite creates it empty, records every executed case into it
// in execution order, and hands it to the reporting and exit-code stages when
// the last case is done. Nothing persists between runs.
type Ledger struct {
	attempted int
	succeeded int
	failures  []TestResult
}

// Record appends one result to the ledger. This is the only way a ledger
// changes; recorded results are never removed or overwritten, so at any
// moment attempted equals successes plus failures.
func (l *Ledger) Record(result TestResult) {
	l.attempted++
	if result.Success {
		l.succeeded++
	} else {
		l.failures = append(l.failures, result)
	}
}

// Attempted returns the number of cases executed so far. Cases skipped by a
// filter are never recorded and do not count.
func (l *Ledger) Attempted() int {
	return l.attempted
}

// Succeeded returns the number of cases that passed.
func (l *Ledger) Succeeded() int {
	return l.succeeded
}

// Failures returns the failing results in execution order.
func (l *Ledger) Failures() []TestResult {
	return append([]TestResult(nil), l.failures...)
}

// OK reports whether every attempted case passed.
func (l *Ledger) OK() bool {
	return len(l.failures) == 0
}

// Summary is a read-only tally of a ledger's state, for display and reports.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int

	// SuccessRate is Succeeded over Attempted as a percentage. RateDefined
	// is false when nothing was attempted, in which case SuccessRate is
	// zero and meaningless; callers must check it rather than divide by
	// zero themselves.
	SuccessRate float64
	RateDefined bool
}

// Summary derives the tally from the ledger's current state.
func (l *Ledger) Summary() Summary {
	s := Summary{
		Attempted: l.attempted,
		Succeeded: l.succeeded,
		Failed:    len(l.failures),
	}
	if l.attempted > 0 {
		s.SuccessRate = float64(l.succeeded) / float64(l.attempted) * 100
		s.RateDefined = true
	}
	return s
}
