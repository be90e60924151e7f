// Package config provides configuration for chessrules.
package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth is the deepest tree the perft command accepts.
const MaxPerftDepth = 7

// Config holds all program configuration.
type Config struct {
	Log    *LogConfig
	Output *OutputConfig
	Verify *VerifyConfig

	// PerftDepth is the depth used by the perft command
	PerftDepth int

	// FEN is the starting position; empty means the initial position
	FEN string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:        NewLogConfig(),
		Output:     NewOutputConfig(),
		Verify:     NewVerifyConfig(),
		PerftDepth: 3,
	}
}

// SetOutput sets the report writer.
func (c *Config) SetOutput(w io.Writer) {
	c.Output.Writer = w
}

// SetLogFile sets the log writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.Log.File = w
}

// Validate checks every section and returns the first error, which wraps
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Verify.Validate(); err != nil {
		return err
	}
	if c.PerftDepth < 0 || c.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth (%d) outside 0..%d: %w", c.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}
