package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/carehome/roster-solver/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomicCreatesFileWithDocumentContents(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "result.json")
	doc := render.Document{PeopleOrder: []string{"a"}}

	require.NoError(t, writeAtomic(out, doc))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, []interface{}{"a"}, parsed["peopleOrder"])
}

func TestWriteAtomicLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "result.json")
	require.NoError(t, writeAtomic(out, render.Document{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "result.json", entries[0].Name())
}

func TestWriteAtomicOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "result.json")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0o644))

	require.NoError(t, writeAtomic(out, render.Document{PeopleOrder: []string{"fresh"}}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fresh")
}

func TestDirOf(t *testing.T) {
	assert.Equal(t, "/tmp/x", dirOf("/tmp/x/out.json"))
	assert.Equal(t, ".", dirOf("out.json"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestDefaultTimeLimitFallsBackWhenEnvUnset(t *testing.T) {
	os.Unsetenv("ROSTER_TIME_LIMIT")
	assert.Equal(t, 60.0, defaultTimeLimit())
}

func TestDefaultTimeLimitReadsEnv(t *testing.T) {
	t.Setenv("ROSTER_TIME_LIMIT", "30")
	assert.Equal(t, 30.0, defaultTimeLimit())
}

func TestDefaultTimeLimitIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("ROSTER_TIME_LIMIT", "not-a-number")
	assert.Equal(t, 60.0, defaultTimeLimit())
}

func TestRunSolveRequiresInAndOut(t *testing.T) {
	inPath, outPath = "", ""
	cmd := newRootCmd()
	err := runSolve(cmd, nil)
	assert.Error(t, err)
}
