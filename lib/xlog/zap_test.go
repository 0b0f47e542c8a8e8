package xlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xcoll/lib/infra"
)

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LogLevelDebug.String())
	require.Equal(t, "INFO", LogLevelInfo.String())
	require.Equal(t, "WARN", LogLevelWarn.String())
	require.Equal(t, "ERROR", LogLevelError.String())
	require.Equal(t, zapcore.DebugLevel, LogLevelDebug.zapLevel())
	require.Equal(t, zapcore.InfoLevel, LogLevelInfo.zapLevel())
	require.Equal(t, zapcore.WarnLevel, LogLevelWarn.zapLevel())
	require.Equal(t, zapcore.ErrorLevel, LogLevelError.zapLevel())
	require.Equal(t, zapcore.DebugLevel, LogLevel("unknown").zapLevel())
}

func TestGetLogLevelOrDefault(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, getLogLevelOrDefault(""))
	require.Equal(t, zapcore.DebugLevel, getLogLevelOrDefault("  "))
	require.Equal(t, zapcore.InfoLevel, getLogLevelOrDefault("info"))
	require.Equal(t, zapcore.WarnLevel, getLogLevelOrDefault("WARN"))
	require.Equal(t, zapcore.ErrorLevel, getLogLevelOrDefault("Error"))
	require.Equal(t, zapcore.DebugLevel, getLogLevelOrDefault("trace"))
}

type testMemOutWriter struct {
	data []byte
}

func (w *testMemOutWriter) Write(p []byte) (n int, err error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *testMemOutWriter) Reset() {
	w.data = make([]byte, 0, 4096)
}

func (w *testMemOutWriter) lines(t *testing.T) []map[string]any {
	res := make([]map[string]any, 0, 8)
	for _, line := range bytes.Split(bytes.TrimSpace(w.data), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &m))
		res = append(res, m)
	}
	return res
}

func TestXLogger_JSON_AllAPIs(t *testing.T) {
	w := &testMemOutWriter{}
	w.Reset()
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriteSyncer(zapcore.AddSync(w)),
		WithXLoggerConsoleCore(),
	)
	require.Equal(t, "DEBUG", logger.Level())

	logger.Debug("debug msg", zap.Int("n", 1))
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error(errors.New("plain error"), "error msg")
	logger.ErrorStack(infra.NewErrorStack("[xlog] stack error"), "error stack msg")
	logger.ErrorStack(errors.New("no stack"), "error without stack msg")
	logger.Logf(zapcore.InfoLevel, "logf %d", 10)
	logger.ErrorStackf(infra.NewErrorStack("[xlog] stackf error"), "error stackf %s", "msg")
	require.NoError(t, logger.Sync())

	lines := w.lines(t)
	require.Len(t, lines, 8)
	require.Equal(t, "DEBUG", lines[0]["lvl"])
	require.Equal(t, "debug msg", lines[0]["msg"])
	require.Equal(t, float64(1), lines[0]["n"])
	require.Equal(t, "INFO", lines[1]["lvl"])
	require.Equal(t, "WARN", lines[2]["lvl"])
	require.Equal(t, "plain error", lines[3]["error"])
	require.Equal(t, "[xlog] stack error", lines[4]["error"])
	require.NotEmpty(t, lines[4]["errorStack"])
	require.Equal(t, "no stack", lines[5]["error"])
	require.Nil(t, lines[5]["errorStack"])
	require.Equal(t, "logf 10", lines[6]["msg"])
	require.Equal(t, "error stackf msg", lines[7]["msg"])
	require.NotEmpty(t, lines[7]["errorStack"])
	for _, line := range lines {
		require.Contains(t, line["callAt"], "zap_test.go")
	}
}

func TestXLogger_IncreaseLogLevel(t *testing.T) {
	w := &testMemOutWriter{}
	w.Reset()
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerWriteSyncer(zapcore.AddSync(w)),
	)
	logger.Debug("visible")
	logger.IncreaseLogLevel(zapcore.WarnLevel)
	require.Equal(t, "WARN", logger.Level())
	logger.Debug("invisible")
	logger.Info("invisible")
	logger.Warn("visible")
	// Decrease is ignored.
	logger.IncreaseLogLevel(zapcore.DebugLevel)
	require.Equal(t, "WARN", logger.Level())
	logger.Debug("invisible")

	lines := w.lines(t)
	require.Len(t, lines, 2)
	require.Equal(t, "visible", lines[0]["msg"])
	require.Equal(t, "visible", lines[1]["msg"])
}

func TestXLogger_PlainText(t *testing.T) {
	w := &testMemOutWriter{}
	w.Reset()
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelInfo),
		WithXLoggerEncoder(PlainText),
		WithXLoggerLevelEncoder(nil),
		WithXLoggerTimeEncoder(nil),
		WithXLoggerWriteSyncer(zapcore.AddSync(w)),
	)
	logger.Debug("hidden")
	logger.Info("plain text msg")
	require.Contains(t, string(w.data), "plain text msg")
	require.NotContains(t, string(w.data), "hidden")
}

func TestXLogger_InvalidOptions(t *testing.T) {
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriter(_writerMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerEncoder(_encMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriteSyncer(nil))
	})
	require.NotPanics(t, func() {
		NewXLogger(WithXLoggerWriter(StdErr), WithXLoggerLevel(LogLevelError))
	})
}

func TestNopXLogger(t *testing.T) {
	logger := NewNopXLogger()
	require.Equal(t, "NONE", logger.Level())
	require.NotPanics(t, func() {
		logger.Debug("nop")
		logger.ErrorStack(infra.NewErrorStack("nop"), "nop")
		logger.IncreaseLogLevel(zapcore.ErrorLevel)
		_ = logger.Sync()
	})
}
