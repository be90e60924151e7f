package config

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogFormat selects the zap encoder.
type LogFormat int

const (
	ConsoleLog LogFormat = iota // Human readable, development encoder
	JSONLog                     // Structured, production encoder
)

// String returns the flag spelling of the format.
func (f LogFormat) String() string {
	if f == JSONLog {
		return "json"
	}
	return "console"
}

// ParseLogFormat converts a flag value into a LogFormat.
func ParseLogFormat(s string) (LogFormat, error) {
	switch s {
	case "console", "":
		return ConsoleLog, nil
	case "json":
		return JSONLog, nil
	}
	return ConsoleLog, fmt.Errorf("unknown log format %q: %w", s, errors.ErrInvalidConfig)
}

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is the minimum level written
	Level zapcore.Level

	// Format selects the console or JSON encoder
	Format LogFormat

	// File receives log output
	File io.Writer
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  zapcore.WarnLevel,
		Format: ConsoleLog,
		File:   os.Stderr,
	}
}

// SetLevel parses a level name such as "debug" or "warn".
func (l *LogConfig) SetLevel(name string) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("log level %q: %w", name, errors.ErrInvalidConfig)
	}
	l.Level = level
	return nil
}

// Validate checks that the log configuration is valid.
func (l *LogConfig) Validate() error {
	if l.Level < zapcore.DebugLevel || l.Level > zapcore.FatalLevel {
		return fmt.Errorf("log level %d: %w", l.Level, errors.ErrInvalidConfig)
	}
	if l.File == nil {
		return fmt.Errorf("log file is nil: %w", errors.ErrInvalidConfig)
	}
	return nil
}
