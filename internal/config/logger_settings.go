package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Levels accepted by --log-level and SHELF_LOG_LEVEL.
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Sinks accepted by --log-type. A file sink is rotated by size and age.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings says where catalog activity is logged and how much of it.
type LoggerSettings struct {
	LogLevel   string `validate:"required,oneof=debug info warning error"`
	LogType    string `validate:"required,oneof=console file"`
	FilePath   string
	MaxSize    int `validate:"gte=0"` // megabytes per file before rotating
	MaxBackups int `validate:"gte=0"` // rotated files kept
	MaxAge     int `validate:"gte=0"` // days a rotated file is kept
}

// DefaultLoggerSettings logs warnings to stderr only, so lending
// notices do not interleave with the menu.
func DefaultLoggerSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelWarning,
		LogType:    LogTypeConsole,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// Validate rejects unknown levels and sinks, and rotation limits a shelf
// session log has no use for.
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("logger settings: %w", err)
	}
	if s.LogType != LogTypeFile {
		return nil
	}

	switch {
	case s.FilePath == "":
		return fmt.Errorf("logger settings: --log-file is required for file logging")
	case s.MaxSize < 1 || s.MaxSize > 100:
		return fmt.Errorf("logger settings: max size %d MB outside 1..100", s.MaxSize)
	case s.MaxBackups < 1 || s.MaxBackups > 10:
		return fmt.Errorf("logger settings: max backups %d outside 1..10", s.MaxBackups)
	case s.MaxAge < 1 || s.MaxAge > 365:
		return fmt.Errorf("logger settings: max age %d days outside 1..365", s.MaxAge)
	}
	return nil
}
