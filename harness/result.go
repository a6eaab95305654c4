package harness

import (
	"unicode/utf8"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// FailureKind classifies why a case did not pass.
type FailureKind string

const (
	// FailureNone is the zero classification carried by successful results.
	FailureNone FailureKind = ""

	// FailureTimeout means the exchange did not complete within the case's
	// timeout.
	FailureTimeout FailureKind = "timeout"

	// FailureTransport means the exchange broke below the HTTP layer: a
	// refused connection, a DNS failure, a dropped or malformed response.
	FailureTransport FailureKind = "transport-failure"

	// FailureStatusMismatch means the exchange completed but the backend
	// answered with a status code other than the expected one.
	FailureStatusMismatch FailureKind = "status-mismatch"
)

// TestResult is the recorded outcome of executing one TestCase. Results are
// created by the Executor and then owned by the Ledger for the rest of the
// run; nothing modifies a result after it is recorded.
type TestResult struct {
	// CaseName and Critical are carried over from the executed case so that
	// reporting and the exit decision do not need the case list.
	CaseName string
	Critical bool

	// URL is the absolute URL the request was sent to.
	URL string

	// Success is true if and only if a response arrived with the expected
	// status code.
	Success bool

	// Status is the observed status code. It is undefined when the request
	// never completed, as with a timeout or transport failure.
	Status ldvalue.OptionalInt

	// Failure classifies unsuccessful results; it is FailureNone on success.
	Failure FailureKind

	// Detail is a one-line, operator-facing explanation of a failure.
	Detail string

	// Diagnostic is a bounded capture of the response body, kept for
	// inspection only. It never participates in the pass/fail decision.
	Diagnostic Diagnostic
}

// maxDiagnosticLen bounds the rendered length of a captured response body so
// that a huge response cannot bloat console output or reports.
const maxDiagnosticLen = 500

// Diagnostic holds whatever could be salvaged of a response body. Exactly one
// variant is populated: JSON if the body parsed as JSON, Raw otherwise.
type Diagnostic struct {
	IsJSON bool
	JSON   ldvalue.Value
	Raw    string
}

// String renders the diagnostic for display. It cannot fail: an empty capture
// renders as a placeholder rather than as nothing.
func (d Diagnostic) String() string {
	if d.IsJSON {
		return truncate(d.JSON.JSONString(), maxDiagnosticLen)
	}
	if d.Raw == "" {
		return "(no response body)"
	}
	return d.Raw
}

// truncate cuts s after at most max bytes, stepping the cut back so it never
// lands inside a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && cut > max-utf8.UTFMax && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
