package harness

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const readinessPollInterval = time.Millisecond * 100

// AwaitEndpoint polls url until it answers any HTTP request or timeout
// passes, printing progress dots to output. Running it before the suite
// keeps a backend that is still starting up from being reported as a string
// of transport failures. Any response at all counts as ready; judging status
// codes is the suite's job, not this one's. Each attempt is bounded by the
// time remaining before the deadline, so a backend that accepts connections
// without ever answering still fails within the timeout.
func AwaitEndpoint(url string, timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Waiting for %s", url)
	defer fmt.Fprintln(output)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := boundedClient(deadline).Get(url)
		if err == nil {
			resp.Body.Close()
			return nil
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("gave up after %s, result of last attempt was: %w", timeout, err)
		}
		time.Sleep(readinessPollInterval)
	}
}

// boundedClient caps a single poll attempt at the time remaining before the
// deadline, never less than one poll interval.
func boundedClient(deadline time.Time) *http.Client {
	remaining := time.Until(deadline)
	if remaining < readinessPollInterval {
		remaining = readinessPollInterval
	}
	return &http.Client{Timeout: remaining}
}
