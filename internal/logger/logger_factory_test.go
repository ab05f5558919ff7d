package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shelf/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		settings config.LoggerSettings
		wantErr  bool
	}{
		{
			name:     "console logger",
			settings: config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole},
		},
		{
			name: "file logger with rotation",
			settings: config.LoggerSettings{
				LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile,
				FilePath: filepath.Join(t.TempDir(), "app.log"), MaxSize: 10, MaxBackups: 3, MaxAge: 28,
			},
		},
		{
			name:     "invalid log level",
			settings: config.LoggerSettings{LogLevel: "invalid", LogType: config.LogTypeConsole},
			wantErr:  true,
		},
		{
			name:     "file logger missing rotation settings",
			settings: config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: "/tmp/test.log"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(&tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)

			if tt.settings.LogType == config.LogTypeFile {
				log.Info("test message")
				_, err := os.Stat(tt.settings.FilePath)
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsoleLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(config.LogLevelWarning, &buf)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "borrow 1: borrowed", formatArgs("borrow ", 1, ": ", "borrowed"))
}
