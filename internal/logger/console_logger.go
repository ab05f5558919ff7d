package logger

import (
	"io"
	"log/slog"
)

// ConsoleLogger writes slog text records to a terminal stream.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a console logger with the specified log level.
func NewConsoleLogger(level string, w io.Writer) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &ConsoleLogger{logger: slog.New(handler)}
}

func (l *ConsoleLogger) Debug(args ...interface{}) { l.logger.Debug(formatArgs(args...)) }
func (l *ConsoleLogger) Info(args ...interface{})  { l.logger.Info(formatArgs(args...)) }
func (l *ConsoleLogger) Warn(args ...interface{})  { l.logger.Warn(formatArgs(args...)) }
func (l *ConsoleLogger) Error(args ...interface{}) { l.logger.Error(formatArgs(args...)) }
