// Package harness contains the engine of the smoke-test tool: the case and
// result model, the executor that performs HTTP exchanges, the ledger that
// accumulates outcomes for a run, and the policy that turns a finished run
// into a process exit code.
//
// The general model is:
//
// 1. A TestCase is pure configuration describing one request to send to the
// deployed backend and the status code expected in return. Cases are declared
// as data and never modified by execution.
//
// 2. The Executor owns the HTTP boundary. Every way an exchange can go wrong,
// from a refused connection to a wrong status code, is folded into a
// TestResult classification; no error escapes to interrupt the run.
//
// 3. The Suite drives the executor over the declared cases strictly in order,
// records each result in the Ledger, and reports progress through a Reporter.
// When the run is over, ExitCode inspects the ledger and decides whether the
// process reports success or failure to its caller.
//
// The domain-specific code that knows which endpoints exist and what they
// should return lives in the smoketests package; this package knows nothing
// about any particular backend.
package harness
