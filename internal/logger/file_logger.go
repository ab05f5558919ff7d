package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON records to a size-rotated file.
type FileLogger struct {
	logger *slog.Logger
}

// NewFileLogger creates a new file logger with rotation settings.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)})
	return &FileLogger{logger: slog.New(handler)}
}

func (l *FileLogger) Debug(args ...interface{}) { l.logger.Debug(formatArgs(args...)) }
func (l *FileLogger) Info(args ...interface{})  { l.logger.Info(formatArgs(args...)) }
func (l *FileLogger) Warn(args ...interface{})  { l.logger.Warn(formatArgs(args...)) }
func (l *FileLogger) Error(args ...interface{}) { l.logger.Error(formatArgs(args...)) }
