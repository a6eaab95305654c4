package harness

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// maxBodyCaptureBytes caps how much of a response body the executor reads for
// diagnostics. Anything beyond the cap is never buffered.
const maxBodyCaptureBytes = 64 * 1024

// Executor performs one HTTP exchange per test case and classifies the
// outcome. It is the only component that touches the network; everything
// above it deals in TestResults.
type Executor struct {
	apiBaseURL string
	httpClient *http.Client
}

// NewExecutor creates an Executor targeting the given API base URL, normally
// the backend origin plus its API path prefix. Case paths are joined beneath
// it. Per-case timeouts are enforced per request, so the client itself has no
// timeout.
func NewExecutor(apiBaseURL string) *Executor {
	return &Executor{
		apiBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
		httpClient: &http.Client{},
	}
}

// TargetURL resolves the absolute URL a case's request is sent to. An empty
// case path yields the base URL with a trailing slash, which is how the
// backend exposes its API root.
func (e *Executor) TargetURL(testCase TestCase) string {
	return e.apiBaseURL + "/" + strings.TrimPrefix(testCase.Path, "/")
}

// Execute sends the case's request, waits for the response, and classifies
// the outcome. It never returns an error and never panics: timeouts,
// transport faults, and anything else that goes wrong are folded into the
// result, so a broken backend can never interrupt the run. debugLogger, which
// may be nil, receives a line-by-line trace of the exchange.
func (e *Executor) Execute(testCase TestCase, debugLogger Logger) (result TestResult) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}

	result = TestResult{
		CaseName: testCase.Name,
		Critical: testCase.Critical,
		URL:      e.TargetURL(testCase),
	}

	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Failure = FailureTransport
			result.Detail = fmt.Sprintf("unexpected panic during exchange: %+v", r)
		}
	}()

	timeout := testCase.Timeout()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var body io.Reader
	var payloadJSON []byte
	if !testCase.Payload.IsNull() {
		data, err := json.Marshal(testCase.Payload)
		if err != nil {
			result.Failure = FailureTransport
			result.Detail = fmt.Sprintf("could not encode request payload: %s", err)
			return result
		}
		payloadJSON = data
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, testCase.Method, result.URL, body)
	if err != nil {
		result.Failure = FailureTransport
		result.Detail = fmt.Sprintf("could not build request: %s", err)
		return result
	}
	req.Header.Set("Content-Type", "application/json")

	debugLogger.Printf("%s %s (timeout %s)", testCase.Method, result.URL, timeout)
	if payloadJSON != nil {
		debugLogger.Printf("request body: %s", string(payloadJSON))
	}
	debugLogger.Printf("reproduce with: %s", CurlCommand(result.URL, testCase))

	started := time.Now()
	resp, err := e.httpClient.Do(req)
	elapsed := time.Since(started).Round(time.Millisecond)
	if err != nil {
		result.Failure = classifyTransportError(err)
		if result.Failure == FailureTimeout {
			result.Detail = fmt.Sprintf("no response within %s", timeout)
		} else {
			result.Detail = err.Error()
		}
		debugLogger.Printf("exchange failed after %s: %s", elapsed, err)
		return result
	}
	defer resp.Body.Close()

	debugLogger.Printf("status %d after %s", resp.StatusCode, elapsed)

	// The exchange counts as completed only once the body is fully read; a
	// status line followed by a stalled body is still a timeout, not a pass.
	diagnostic, err := captureBody(resp.Body)
	if err != nil {
		result.Failure = classifyTransportError(err)
		if result.Failure == FailureTimeout {
			result.Detail = fmt.Sprintf("response body not fully received within %s", timeout)
		} else {
			result.Detail = fmt.Sprintf("could not read response body: %s", err)
		}
		debugLogger.Printf("body read failed after %s: %s", time.Since(started).Round(time.Millisecond), err)
		return result
	}

	result.Status = ldvalue.NewOptionalInt(resp.StatusCode)
	result.Diagnostic = diagnostic
	debugLogger.Printf("response body: %s", result.Diagnostic)

	if resp.StatusCode != testCase.ExpectStatus {
		result.Failure = FailureStatusMismatch
		result.Detail = fmt.Sprintf("expected status %d, got %d", testCase.ExpectStatus, resp.StatusCode)
		return result
	}

	// A matching status code is a pass no matter what the body contains.
	// The body was captured above for diagnostics only.
	result.Success = true
	return result
}

// classifyTransportError separates a timeout from every other failure below
// the HTTP layer.
func classifyTransportError(err error) FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return FailureTimeout
	}
	return FailureTransport
}

// captureBody reads at most maxBodyCaptureBytes of the response, keeping the
// body in structured form if it parses as JSON and as truncated text if not.
// A read failure means the exchange never completed; the error is returned
// for the caller to classify.
func captureBody(body io.Reader) (Diagnostic, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxBodyCaptureBytes))
	if err != nil {
		return Diagnostic{}, err
	}
	var parsed ldvalue.Value
	if json.Unmarshal(data, &parsed) == nil {
		return Diagnostic{IsJSON: true, JSON: parsed}, nil
	}
	return Diagnostic{Raw: truncate(string(data), maxDiagnosticLen)}, nil
}
