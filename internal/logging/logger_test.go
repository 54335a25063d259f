package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "roster.log")

	result := NewLoggerWithPath(Config{Level: "debug", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Debug().Str("operation", "test").Msg("hello")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"operation":"test"`)
}

func TestNewLoggerWithPath_FallbackOnEmptyFile(t *testing.T) {
	result := NewLoggerWithPath(Config{Output: OutputFile})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestNewLoggerWithPath_InvalidLevelDefaultsToInfo(t *testing.T) {
	result := NewLoggerWithPath(Config{Level: "loud", Output: OutputDiscard})
	assert.Equal(t, zerolog.InfoLevel, result.Logger.GetLevel())
}

func TestFromContext_AttachesTraceID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := base.WithContext(context.Background())
	ctx = ContextWithTraceID(ctx, "trace-123")

	FromContext(ctx).Info().Msg("with trace")

	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
}

func TestFromContext_NoLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(zerolog.New(&buf), "tui")
	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"tui"`)
}

func TestTraceIDs(t *testing.T) {
	id := NewTraceID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx := ContextWithTraceID(context.Background(), id)
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
	assert.NotEmpty(t, GetOrGenerateTraceID(context.Background()))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
