package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"listings-service/internal/core/port"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postedRecord struct {
	tag  string
	data map[string]interface{}
}

type fakePoster struct {
	records []postedRecord
	closed  bool
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.records = append(f.records, postedRecord{tag: tag, data: message.(map[string]interface{})})
	return nil
}

func (f *fakePoster) Close() error {
	f.closed = true
	return nil
}

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelInfo, IsJSON: true})

	logger.WithFields(port.Fields{"component": "test"}).Error("boom", errors.New("disk full"), port.Fields{"attempt": 2})
	logger.Debug("hidden", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "boom", record["msg"])
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "test", record["component"])
	assert.Equal(t, "disk full", record["error"])
	assert.EqualValues(t, 2, record["attempt"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestFluentLoggerAdapter(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelWarn)
	require.NoError(t, err)
	adapter.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	scoped := adapter.WithFields(port.Fields{"trace_id": "abc"})
	scoped.Info("skipped", nil)
	scoped.Warn("slow request", port.Fields{"duration_ms": 1200})
	scoped.Error("failed", errors.New("timeout"), nil)

	require.Len(t, poster.records, 2)
	assert.Equal(t, "warn", poster.records[0].tag)
	assert.Equal(t, "slow request", poster.records[0].data["message"])
	assert.Equal(t, "abc", poster.records[0].data["trace_id"])
	assert.Equal(t, "2024-01-01T12:00:00Z", poster.records[0].data["timestamp"])
	assert.Equal(t, "error", poster.records[1].tag)
	assert.Equal(t, "timeout", poster.records[1].data["error"])

	// поля родителя не изменились
	assert.Empty(t, adapter.fields)

	require.NoError(t, adapter.Close())
	assert.True(t, poster.closed)

	_, err = NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	poster := &fakePoster{}
	fluent, err := NewFluentLoggerAdapter(poster, slog.LevelDebug)
	require.NoError(t, err)

	multi, err := NewMultiLoggerAdapter(NewSlogAdapter(SlogConfig{Writer: &buf, IsJSON: true}), nil, fluent)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"component": "multi"}).Info("hello", nil)

	assert.Contains(t, buf.String(), `"component":"multi"`)
	require.Len(t, poster.records, 1)
	assert.Equal(t, "multi", poster.records[0].data["component"])

	_, err = NewMultiLoggerAdapter(nil)
	assert.Error(t, err)
}
