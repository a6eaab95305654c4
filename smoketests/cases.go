package smoketests

import (
	"fmt"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/tubesave/api-smoke-tests/harness"
)

// A stable, always-available public video for the happy-path cases. The
// backend only needs some real watchable URL to resolve metadata for.
const sampleVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// Timeouts in seconds for the endpoints that call out to the video platform,
// which can legitimately take far longer than an ordinary API round trip.
const (
	videoInfoTimeoutSec     = 60
	videoDownloadTimeoutSec = 120
)

// AllCases returns the declared checks in the order they run.
//
// Two cases are critical: if the API root is unreachable or metadata lookup
// for a valid URL is broken, the backend is not usable at all and the run
// must fail outright. Everything else checks one validation or listing
// behavior and is allowed to fail individually without sinking the run.
func AllCases() []harness.TestCase {
	return []harness.TestCase{
		{
			Name:         "root endpoint",
			Method:       "GET",
			Path:         "",
			ExpectStatus: 200,
			Critical:     true,
		},
		{
			Name:         "video info - valid URL",
			Method:       "POST",
			Path:         "video/info",
			Payload:      ldvalue.ObjectBuild().Set("url", ldvalue.String(sampleVideoURL)).Build(),
			ExpectStatus: 200,
			TimeoutSec:   ldvalue.NewOptionalInt(videoInfoTimeoutSec),
			Critical:     true,
		},
		{
			Name:         "video info - invalid URL",
			Method:       "POST",
			Path:         "video/info",
			Payload:      ldvalue.ObjectBuild().Set("url", ldvalue.String("https://invalid-url.com")).Build(),
			ExpectStatus: 400,
		},
		{
			// An empty object, not an absent body: the field itself is what
			// must be reported missing.
			Name:         "video info - missing URL field",
			Method:       "POST",
			Path:         "video/info",
			Payload:      ldvalue.ObjectBuild().Build(),
			ExpectStatus: 422,
		},
		{
			Name:   "contact form - valid submission",
			Method: "POST",
			Path:   "contact",
			Payload: ldvalue.ObjectBuild().
				Set("name", ldvalue.String(fmt.Sprintf("Smoke Test %s", time.Now().Format("150405")))).
				Set("email", ldvalue.String("smoketest@example.com")).
				Set("message", ldvalue.String("This is an automated smoke test message.")).
				Build(),
			ExpectStatus: 200,
		},
		{
			Name:   "contact form - invalid email",
			Method: "POST",
			Path:   "contact",
			Payload: ldvalue.ObjectBuild().
				Set("name", ldvalue.String("Smoke Test")).
				Set("email", ldvalue.String("not-an-email")).
				Set("message", ldvalue.String("This is an automated smoke test message.")).
				Build(),
			ExpectStatus: 422,
		},
		{
			Name:         "contact form - missing fields",
			Method:       "POST",
			Path:         "contact",
			Payload:      ldvalue.ObjectBuild().Set("name", ldvalue.String("Smoke Test")).Build(),
			ExpectStatus: 422,
		},
		{
			Name:         "contact messages - list",
			Method:       "GET",
			Path:         "contact",
			ExpectStatus: 200,
		},
		{
			// No format negotiation happened before this request, so the
			// backend must refuse it cleanly rather than start a download.
			Name:   "video download - unnegotiated format",
			Method: "POST",
			Path:   "video/download",
			Payload: ldvalue.ObjectBuild().
				Set("url", ldvalue.String(sampleVideoURL)).
				Set("format_id", ldvalue.String("18")).
				Set("quality", ldvalue.String("360p")).
				Build(),
			ExpectStatus: 400,
			TimeoutSec:   ldvalue.NewOptionalInt(videoDownloadTimeoutSec),
		},
	}
}
