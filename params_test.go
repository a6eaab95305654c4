package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParamsWithExplicitURL(t *testing.T) {
	var params commandParams
	ok := params.Read([]string{"cmd", "-url", "http://localhost:8000"})

	require.True(t, ok)
	assert.Equal(t, "http://localhost:8000", params.baseURL)
	assert.False(t, params.debug)
	assert.False(t, params.debugAll)
	assert.Equal(t, time.Duration(0), params.waitFor)
	assert.Equal(t, "", params.jsonReport)
}

func TestReadParamsFallsBackToEnvironment(t *testing.T) {
	require.NoError(t, os.Setenv(baseURLEnvVar, "http://backend.internal:8000"))
	defer os.Unsetenv(baseURLEnvVar)

	var params commandParams
	ok := params.Read([]string{"cmd"})

	require.True(t, ok)
	assert.Equal(t, "http://backend.internal:8000", params.baseURL)
}

func TestReadParamsExplicitURLBeatsEnvironment(t *testing.T) {
	require.NoError(t, os.Setenv(baseURLEnvVar, "http://backend.internal:8000"))
	defer os.Unsetenv(baseURLEnvVar)

	var params commandParams
	ok := params.Read([]string{"cmd", "-url", "http://localhost:8000"})

	require.True(t, ok)
	assert.Equal(t, "http://localhost:8000", params.baseURL)
}

func TestReadParamsRequiresATarget(t *testing.T) {
	require.NoError(t, os.Unsetenv(baseURLEnvVar))

	var params commandParams
	assert.False(t, params.Read([]string{"cmd"}))
}

func TestReadParamsCollectsFilterPatterns(t *testing.T) {
	var params commandParams
	ok := params.Read([]string{"cmd", "-url", "http://localhost:8000",
		"-run", "video", "-run", "contact", "-skip", "download"})

	require.True(t, ok)
	assert.True(t, params.filters.MustMatch.IsDefined())
	assert.True(t, params.filters.MustNotMatch.IsDefined())
	assert.Equal(t, `"video" or "contact"`, params.filters.MustMatch.String())
}

func TestReadParamsRunOptions(t *testing.T) {
	var params commandParams
	ok := params.Read([]string{"cmd", "-url", "http://localhost:8000",
		"-debug-all", "-wait", "30s", "-json-report", "out.json"})

	require.True(t, ok)
	assert.True(t, params.debugAll)
	assert.Equal(t, time.Second*30, params.waitFor)
	assert.Equal(t, "out.json", params.jsonReport)
}

func TestReadParamsRejectsUnknownOptions(t *testing.T) {
	// Read must report failure to its caller rather than exiting the
	// process, so that main stays in charge of the exit code.
	var params commandParams
	assert.False(t, params.Read([]string{"cmd", "-url", "http://localhost:8000", "-no-such-option"}))
}

func TestReadParamsRejectsMalformedFilterPattern(t *testing.T) {
	var params commandParams
	assert.False(t, params.Read([]string{"cmd", "-url", "http://localhost:8000", "-run", "(unclosed"}))
}
