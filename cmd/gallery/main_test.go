package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elbow/core"
)

func TestRunWritesOneFilePerMode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run("", "svg", dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(core.AllModes()))

	_, err = os.Stat(filepath.Join(dir, "top_to_bottom.svg"))
	assert.NoError(t, err)
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	assert.Error(t, run("", "mermaid", t.TempDir()))
}
