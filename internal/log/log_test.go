package log

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFormatting(t *testing.T) {
	var buf strings.Builder
	InitWithWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	Info(CatSearch, "search complete", "category", "music", "results", 5)

	line := buf.String()
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "[search]")
	assert.Contains(t, line, "search complete")
	assert.Contains(t, line, "category=music")
	assert.Contains(t, line, "results=5")
}

func TestLogOddFieldCount(t *testing.T) {
	var buf strings.Builder
	InitWithWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	Warn(CatUI, "odd fields", "orphan")
	assert.Contains(t, buf.String(), "orphan=<missing>")
}

func TestLogLevelFiltering(t *testing.T) {
	var buf strings.Builder
	InitWithWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetMinLevel(LevelWarn)
	Debug(CatCache, "too quiet")
	Info(CatCache, "still too quiet")
	Error(CatCache, "loud enough")

	out := buf.String()
	assert.NotContains(t, out, "too quiet")
	assert.Contains(t, out, "loud enough")
}

func TestLogDisabled(t *testing.T) {
	var buf strings.Builder
	InitWithWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetEnabled(false)
	Info(CatMode, "dropped")
	assert.Empty(t, buf.String())
}

func TestErrorErr(t *testing.T) {
	var buf strings.Builder
	InitWithWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	ErrorErr(CatSearch, "provider failed", assert.AnError)
	require.Contains(t, buf.String(), "error="+assert.AnError.Error())

	buf.Reset()
	ErrorErr(CatSearch, "no cause", nil)
	assert.Contains(t, buf.String(), "error=<nil>")
}

func TestNilLoggerIsSafe(t *testing.T) {
	defaultLogger = nil
	assert.NotPanics(t, func() {
		Info(CatParty, "no logger yet")
		SetEnabled(true)
		SetMinLevel(LevelInfo)
	})
	assert.Nil(t, Broker())
}
