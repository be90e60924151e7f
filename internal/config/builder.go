package config

import (
	"io"

	"go.uber.org/zap/zapcore"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithSquareSize sets the SVG square size in pixels.
func (b *ConfigBuilder) WithSquareSize(px int) *ConfigBuilder {
	b.cfg.Output.SquareSize = px
	return b
}

// WithLogLevel sets the minimum log level.
func (b *ConfigBuilder) WithLogLevel(level zapcore.Level) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoder.
func (b *ConfigBuilder) WithLogFormat(format LogFormat) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.Log.File = w
	return b
}

// WithWorkers sets the number of verify workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Verify.Workers = n
	return b
}

// WithBufferSize sets the verify channel capacity.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.Verify.BufferSize = n
	return b
}

// WithOracles sets the reference move generators.
func (b *ConfigBuilder) WithOracles(names ...string) *ConfigBuilder {
	b.cfg.Verify.Oracles = append([]string(nil), names...)
	return b
}

// WithVerifyDepth sets the perft depth compared by verify.
func (b *ConfigBuilder) WithVerifyDepth(depth int) *ConfigBuilder {
	b.cfg.Verify.Depth = depth
	return b
}

// WithDedupe enables skipping of repeated subtrees during verify.
func (b *ConfigBuilder) WithDedupe(enabled bool) *ConfigBuilder {
	b.cfg.Verify.Dedupe = enabled
	return b
}

// WithPerftDepth sets the perft command depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.PerftDepth = depth
	return b
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}
