package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrbd/internal/logging"
)

func TestNew_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelDebug, "text", &buf)

	logging.New("conditioning").Info("hello")
	assert.Contains(t, buf.String(), "component=conditioning")
	assert.Contains(t, buf.String(), "hello")
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelInfo, "json", &buf)

	logging.New("availability").Info("pair evaluated")
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"component":"availability"`)
}

func TestInit_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelWarn, "text", &buf)

	logger := logging.New("gate")
	logger.Info("suppressed")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "": slog.LevelInfo,
		"warn": slog.LevelWarn, "warning": slog.LevelWarn, "Error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}
