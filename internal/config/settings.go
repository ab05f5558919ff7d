package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment fallbacks for the root flags.
const (
	EnvTheme    = "SHELF_THEME"
	EnvLogLevel = "SHELF_LOG_LEVEL"
	EnvLogFile  = "SHELF_LOG_FILE"
)

// Settings is everything the shelf binary is started with.
type Settings struct {
	Theme    string `validate:"required,oneof=classic neon mono"`
	SeedPath string
	TUI      bool
	Logger   LoggerSettings
}

// Default returns settings for a plain interactive session.
func Default() Settings {
	return Settings{
		Theme:  "classic",
		Logger: DefaultLoggerSettings(),
	}
}

// ApplyEnv fills values from the environment. A set log file switches to the file logger.
func (s *Settings) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		s.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.Logger.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		s.Logger.FilePath = v
		s.Logger.LogType = LogTypeFile
	}
}

// Validate checks the top-level fields and the nested logger settings.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return s.Logger.Validate()
}
