package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), recorded
}

func selectQuery() (string, int64) {
	return "SELECT * FROM orders WHERE location_mode = 'TABLE'", 1
}

func TestNewGormLoggerDefaults(t *testing.T) {
	gl, _ := newObservedGormLogger(gormlogger.Warn)

	assert.Equal(t, 200*time.Millisecond, gl.slowThreshold)
	assert.True(t, gl.ignoreNotFound)
}

func TestGormLoggerOptions(t *testing.T) {
	gl, _ := newObservedGormLogger(gormlogger.Warn,
		WithSlowThreshold(50*time.Millisecond),
		WithIgnoreRecordNotFoundError(false),
	)

	assert.Equal(t, 50*time.Millisecond, gl.slowThreshold)
	assert.False(t, gl.ignoreNotFound)
}

func TestGormLoggerLogMode(t *testing.T) {
	gl, _ := newObservedGormLogger(gormlogger.Warn)

	changed := gl.LogMode(gormlogger.Info)

	// the original keeps its level, the clone carries the new one
	assert.Equal(t, gormlogger.Warn, gl.level)
	assert.Equal(t, gormlogger.Info, changed.(*GormLogger).level)
}

func TestGormLoggerTraceQuery(t *testing.T) {
	gl, recorded := newObservedGormLogger(gormlogger.Info)

	gl.Trace(context.Background(), time.Now(), selectQuery, nil)

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "SQL Query", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Contains(t, fields["sql"], "SELECT * FROM orders")
	assert.Equal(t, int64(1), fields["rows"])
}

func TestGormLoggerTraceError(t *testing.T) {
	gl, recorded := newObservedGormLogger(gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), selectQuery, errors.New("connection refused"))

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "SQL Error", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "connection refused", entries[0].ContextMap()["error"])
}

func TestGormLoggerTraceRecordNotFound(t *testing.T) {
	t.Run("suppressed by default", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Error)

		gl.Trace(context.Background(), time.Now(), selectQuery, gormlogger.ErrRecordNotFound)

		assert.Empty(t, recorded.All())
	})

	t.Run("logged when suppression disabled", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Error, WithIgnoreRecordNotFoundError(false))

		gl.Trace(context.Background(), time.Now(), selectQuery, gormlogger.ErrRecordNotFound)

		entries := recorded.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "SQL Error", entries[0].Message)
	})
}

func TestGormLoggerTraceSlowQuery(t *testing.T) {
	gl, recorded := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(time.Millisecond))

	begin := time.Now().Add(-10 * time.Millisecond)
	gl.Trace(context.Background(), begin, selectQuery, nil)

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "SLOW SQL")
}

func TestGormLoggerTraceSilent(t *testing.T) {
	gl, recorded := newObservedGormLogger(gormlogger.Silent)

	gl.Trace(context.Background(), time.Now(), selectQuery, errors.New("ignored"))

	assert.Empty(t, recorded.All())
}

func TestGormLoggerTraceRequestID(t *testing.T) {
	gl, recorded := newObservedGormLogger(gormlogger.Info)

	ctx, _ := WithRequestID(context.Background(), zap.NewNop(), "req-42")
	gl.Trace(ctx, time.Now(), selectQuery, nil)

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}

func TestGormLoggerLeveledMessages(t *testing.T) {
	gl, recorded := newObservedGormLogger(gormlogger.Info)

	gl.Info(context.Background(), "migrating %s", "orders")
	gl.Warn(context.Background(), "pool near capacity")
	gl.Error(context.Background(), "dial failed")

	entries := recorded.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "migrating orders", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestGormLoggerLeveledMessagesFiltered(t *testing.T) {
	gl, recorded := newObservedGormLogger(gormlogger.Error)

	gl.Info(context.Background(), "dropped")
	gl.Warn(context.Background(), "dropped")

	assert.Empty(t, recorded.All())
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"bogus", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.in))
		})
	}
}
