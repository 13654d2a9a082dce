package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kwhalen/repbook/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for name, want := range cases {
		require.Equal(t, want, Level(name), "level %q", name)
	}
}

func TestSetupLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "repbook.log")

	logger, err := SetupLogger(&config.LoggingConfig{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.Info("started")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"started"`)
}
