package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Writer: &buf})
	t.Cleanup(func() { Init(Options{Writer: &bytes.Buffer{}}) })

	WithComponent("connections").Debug("routed connector",
		slog.String("mode", "TOP_TO_TOP"),
		slog.String("branch", "same/clear-origin"),
		slog.Float64("dent", 20))

	line := buf.String()
	assert.Contains(t, line, "DBG routed connector")
	assert.Contains(t, line, "app=elbow")
	assert.Contains(t, line, "component=connections")
	assert.Contains(t, line, "mode=TOP_TO_TOP")
	assert.Contains(t, line, "dent=20")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestConsoleQuotesAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(newConsoleHandler(&buf, slog.LevelInfo, false))

	l.WithGroup("scene").Info("loaded", slog.String("title", "two boxes"))
	assert.Contains(t, buf.String(), `scene.title="two boxes"`)

	buf.Reset()
	l.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestConsoleSource(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(newConsoleHandler(&buf, slog.LevelInfo, true))

	l.Info("routed")
	assert.Contains(t, buf.String(), " src=")
	assert.Contains(t, buf.String(), "logger_test.go:")

	// Records built by hand carry no caller.
	buf.Reset()
	h := newConsoleHandler(&buf, slog.LevelInfo, true)
	require.NoError(t, h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "bare", 0)))
	assert.Contains(t, buf.String(), "INF bare")
	assert.NotContains(t, buf.String(), "src=")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "warn", Format: "json", Writer: &buf})
	t.Cleanup(func() { Init(Options{Writer: &bytes.Buffer{}}) })

	L().Info("dropped")
	L().Warn("kept", slog.Int("mode", 42))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "elbow", rec["app"])
	assert.EqualValues(t, 42, rec["mode"])
}

func TestRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elbow.log")
	Init(Options{Level: "info", File: path, Writer: &bytes.Buffer{}})

	L().Info("to file")
	require.NoError(t, Close())
	require.FileExists(t, path)

	Init(Options{Writer: &bytes.Buffer{}})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ELBOW_LOG_LEVEL", "error")
	t.Setenv("ELBOW_LOG_FORMAT", "json")
	t.Setenv("ELBOW_LOG_SOURCE", "TRUE")
	t.Setenv("ELBOW_LOG_FILE", "")

	opts := FromEnv()
	assert.Equal(t, "error", opts.Level)
	assert.Equal(t, "json", opts.Format)
	assert.True(t, opts.AddSource)
	assert.Empty(t, opts.File)
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
