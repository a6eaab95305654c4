package smoketests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubesave/api-smoke-tests/harness"
)

func caseByName(t *testing.T, name string) harness.TestCase {
	for _, c := range AllCases() {
		if c.Name == name {
			return c
		}
	}
	require.Fail(t, "no such case", "case %q is not declared", name)
	return harness.TestCase{}
}

func TestCaseListShape(t *testing.T) {
	cases := AllCases()
	require.Len(t, cases, 9)

	seen := make(map[string]bool)
	for _, c := range cases {
		assert.NotEmpty(t, c.Name)
		assert.False(t, seen[c.Name], "duplicate case name %q", c.Name)
		seen[c.Name] = true
		assert.Contains(t, []string{"GET", "POST"}, c.Method, "case %q", c.Name)
		assert.Contains(t, []int{200, 400, 422}, c.ExpectStatus, "case %q", c.Name)
	}
}

func TestOnlyTheTwoFoundationCasesAreCritical(t *testing.T) {
	var criticals []string
	for _, c := range AllCases() {
		if c.Critical {
			criticals = append(criticals, c.Name)
		}
	}
	assert.Equal(t, []string{"root endpoint", "video info - valid URL"}, criticals)
}

func TestRootCaseTargetsTheAPIRoot(t *testing.T) {
	root := caseByName(t, "root endpoint")
	assert.Equal(t, "GET", root.Method)
	assert.Equal(t, "", root.Path)
	assert.Equal(t, 200, root.ExpectStatus)
}

func TestGetCasesCarryNoPayload(t *testing.T) {
	for _, c := range AllCases() {
		if c.Method == "GET" {
			assert.True(t, c.Payload.IsNull(), "case %q", c.Name)
		}
	}
}

func TestPostCasesCarryAPayload(t *testing.T) {
	for _, c := range AllCases() {
		if c.Method == "POST" {
			assert.False(t, c.Payload.IsNull(), "case %q", c.Name)
		}
	}
}

func TestMissingURLFieldCaseSendsAnEmptyObject(t *testing.T) {
	c := caseByName(t, "video info - missing URL field")
	assert.False(t, c.Payload.IsNull())
	assert.Equal(t, "{}", c.Payload.JSONString())
	assert.Equal(t, 422, c.ExpectStatus)
}

func TestSlowEndpointsGetLongerTimeouts(t *testing.T) {
	info := caseByName(t, "video info - valid URL")
	require.True(t, info.TimeoutSec.IsDefined())
	assert.Equal(t, videoInfoTimeoutSec, info.TimeoutSec.IntValue())

	download := caseByName(t, "video download - unnegotiated format")
	require.True(t, download.TimeoutSec.IsDefined())
	assert.Equal(t, videoDownloadTimeoutSec, download.TimeoutSec.IntValue())

	root := caseByName(t, "root endpoint")
	assert.False(t, root.TimeoutSec.IsDefined())
}

func TestValidationCasesReuseTheHappyPathEndpoints(t *testing.T) {
	valid := caseByName(t, "video info - valid URL")
	invalid := caseByName(t, "video info - invalid URL")
	assert.Equal(t, valid.Path, invalid.Path)

	submit := caseByName(t, "contact form - valid submission")
	list := caseByName(t, "contact messages - list")
	assert.Equal(t, submit.Path, list.Path)
}
