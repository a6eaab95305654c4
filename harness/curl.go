package harness

import (
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// CurlCommand renders a curl invocation equivalent to the request a case
// sends, so that a failure seen in CI can be reproduced by hand. Every
// argument is shell-quoted; the output is safe to paste as-is.
func CurlCommand(targetURL string, testCase TestCase) string {
	var b commandBuilder
	b.add("curl", "-s", "-X", testCase.Method)
	b.add("-H", "Content-Type: application/json")
	if !testCase.Payload.IsNull() {
		b.add("-d", testCase.Payload.JSONString())
	}
	b.add(targetURL)
	return b.String()
}
