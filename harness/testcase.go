package harness

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultTimeoutSec is the per-case request timeout, in seconds, applied when
// a case does not declare its own.
const DefaultTimeoutSec = 30

// TestCase describes one check against the backend: a single request to send
// and the status code expected in return. A TestCase is pure configuration;
// executing it never modifies it.
type TestCase struct {
	// Name identifies the case in progress output and reports. Names should
	// be unique within a suite, though this is not enforced.
	Name string

	// Method is the HTTP method of the request, such as GET or POST.
	Method string

	// Path is the endpoint path relative to the API base URL, without a
	// leading slash. An empty Path targets the API root.
	Path string

	// Payload is the JSON request body. A Null value (the zero value) means
	// the request is sent with no body; note that an empty JSON object is a
	// body, not the absence of one.
	Payload ldvalue.Value

	// ExpectStatus is the status code the backend must answer with for the
	// case to pass. The response body never affects the verdict.
	ExpectStatus int

	// TimeoutSec optionally overrides DefaultTimeoutSec for endpoints that
	// are legitimately slow.
	TimeoutSec ldvalue.OptionalInt

	// Critical marks a case whose failure fails the whole run regardless of
	// how the other cases fare. See ExitCode.
	Critical bool
}

// Timeout returns the effective request timeout for the case.
func (c TestCase) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec.OrElse(DefaultTimeoutSec)) * time.Second
}
