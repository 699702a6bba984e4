package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	logger.With("surface", "abc").Error(errors.New("boom"), "mount failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "abc", entry["surface"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "mount failed", entry["message"])
}

func TestLevelFiltersDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	require.Zero(t, buf.Len())
}

func TestNilLoggerIsSilent(t *testing.T) {
	var logger *Logger
	require.NotPanics(t, func() {
		logger.Debug("x")
		logger.Info("x")
		logger.Warn("x")
		logger.Error(nil, "x")
		require.Nil(t, logger.With("k", "v"))
		require.Nil(t, logger.WithFields(map[string]any{"k": "v"}))
	})
}
