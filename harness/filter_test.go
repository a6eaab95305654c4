package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterNames(filters RegexFilters, names ...string) []string {
	var kept []string
	for _, name := range names {
		if filters.AsFilter(TestCase{Name: name}) {
			kept = append(kept, name)
		}
	}
	return kept
}

func TestRegexFiltersWithNoPatternsKeepEverything(t *testing.T) {
	var filters RegexFilters
	kept := filterNames(filters, "root endpoint", "video info - valid URL")
	assert.Equal(t, []string{"root endpoint", "video info - valid URL"}, kept)
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("video"))

	kept := filterNames(filters, "root endpoint", "video info - valid URL", "video download - unnegotiated format")
	assert.Equal(t, []string{"video info - valid URL", "video download - unnegotiated format"}, kept)
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("contact"))

	kept := filterNames(filters, "root endpoint", "contact form - valid submission", "contact messages - list")
	assert.Equal(t, []string{"root endpoint"}, kept)
}

func TestRegexFiltersCombined(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("video"))
	require.NoError(t, filters.MustNotMatch.Set("download"))

	kept := filterNames(filters, "root endpoint", "video info - valid URL", "video download - unnegotiated format")
	assert.Equal(t, []string{"video info - valid URL"}, kept)
}

func TestRegexFiltersMultiplePatternsAreAlternatives(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^root"))
	require.NoError(t, filters.MustMatch.Set("download"))

	kept := filterNames(filters, "root endpoint", "video info - valid URL", "video download - unnegotiated format")
	assert.Equal(t, []string{"root endpoint", "video download - unnegotiated format"}, kept)
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	err := list.Set("(unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
	assert.False(t, list.IsDefined())
}

func TestRegexListDescribesItself(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("video"))
	require.NoError(t, list.Set("contact"))
	assert.Equal(t, `"video" or "contact"`, list.String())
}
