package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf))

	l.Error("save failed",
		String("path", "/tmp/inventory.json"),
		Int("records", 5),
		Bool("strict", false),
		Err(errors.New("disk full")),
	)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "save failed", got["message"])
	assert.Equal(t, "/tmp/inventory.json", got["path"])
	assert.Equal(t, float64(5), got["records"])
	assert.Equal(t, false, got["strict"])
	assert.Equal(t, "disk full", got["error"])
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(&buf, zerolog.WarnLevel)

	l.Debug("hidden")
	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", String("k", "v"))
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestRecorder_CapturesAndFilters(t *testing.T) {
	r := NewRecorder()

	r.Debug("d")
	r.Info("i", Int("n", 1))
	r.Warn("w")
	r.Error("e", Err(errors.New("boom")))

	assert.Len(t, r.Entries(LevelDebug), 4)

	errs := r.Entries(LevelError)
	require.Len(t, errs, 1)
	assert.Equal(t, "e", errs[0].Message)
	v, ok := errs[0].Field("error")
	require.True(t, ok)
	assert.EqualError(t, v.(error), "boom")

	_, ok = errs[0].Field("missing")
	assert.False(t, ok)

	r.Reset()
	assert.Empty(t, r.Entries(LevelDebug))
}

func TestRecorder_Forwards(t *testing.T) {
	inner := NewRecorder()
	outer := NewRecorder(inner)

	outer.Warn("forwarded", String("k", "v"))

	got := inner.Entries(LevelDebug)
	require.Len(t, got, 1)
	assert.Equal(t, LevelWarn, got[0].Level)
	assert.Equal(t, "forwarded", got[0].Message)
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		LevelDebug: "debug",
		LevelInfo:  "info",
		LevelWarn:  "warn",
		LevelError: "error",
		Level(42):  "unknown",
	}
	for level, want := range tests {
		assert.Equal(t, want, level.String())
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x", Err(errors.New("ignored")))
}
