package rosterlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesAndCapturesLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", false)

	l.Info("hello", "key", "value")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "[test]")
	assert.Contains(t, buf.String(), "key=value")
	assert.Contains(t, l.Captured(), "hello")
}

func TestLoggerSetLevelSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", false)

	l.Debug("should be suppressed")
	assert.Empty(t, buf.String())

	l.SetLevel(LevelDebug)
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestLoggerRunIDStableAcrossLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", false)
	l.Info("first")
	l.Warn("second")

	lines := strings.Split(strings.TrimSpace(l.Captured()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "run="+l.RunID())
	}
}

func TestTwoLoggersHaveDistinctRunIDs(t *testing.T) {
	a := New(&bytes.Buffer{}, "a", false)
	b := New(&bytes.Buffer{}, "b", false)
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
}
