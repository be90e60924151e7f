package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat represents the report format written by the CLI.
type OutputFormat int

const (
	Text OutputFormat = iota // Plain text board and move lists
	JSON                     // One JSON document per report
	SVG                      // SVG board diagram
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case JSON:
		return "json"
	case SVG:
		return "svg"
	}
	return "text"
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	case "svg":
		return SVG, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to report output.
type OutputConfig struct {
	// Format specifies the report format (Text, JSON, SVG)
	Format OutputFormat

	// Writer receives reports
	Writer io.Writer

	// SquareSize is the edge length of one SVG square in pixels
	SquareSize int

	// Coordinates controls whether file and rank labels are drawn
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Text,
		Writer:      os.Stdout,
		SquareSize:  45,
		Coordinates: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < Text || o.Format > SVG {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.SquareSize <= 0 {
		return fmt.Errorf("square size %d must be positive: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
