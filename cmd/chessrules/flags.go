// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	depthFlag = flag.Int("depth", 3, "Perft depth")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("format", "text", "Output format: text, json, svg")
	squareSize   = flag.Int("square", 45, "SVG square size in pixels")
	noCoords     = flag.Bool("nocoords", false, "Omit file and rank labels from SVG diagrams")

	// Logging
	logFile   = flag.String("l", "", "Write logs to file (default: stderr)")
	logLevel  = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "console", "Log format: console, json")

	// Verification
	verifyDepth = flag.Int("verify-depth", 1, "Plies below each position compared by verify")
	workers     = flag.Int("workers", 0, "Number of verify workers (0 = auto-detect based on CPU cores)")
	bufferSize  = flag.Int("buffer", 64, "Verify work queue capacity")
	oracles     = flag.String("oracles", "dragontooth,notnil", "Comma-separated reference move generators")
	failFast    = flag.Bool("failfast", false, "Stop at the first mismatch and skip positions not yet checked")
	dedupe      = flag.Bool("dedupe", false, "Skip subtrees already compared for another position")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.FEN = *fenFlag
	cfg.PerftDepth = *depthFlag

	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	if err := applyLogFlags(cfg); err != nil {
		return err
	}
	applyVerifyFlags(cfg)
	return nil
}

// applyOutputFlags configures the report format.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.SquareSize = *squareSize
	cfg.Output.Coordinates = !*noCoords
	return nil
}

// applyLogFlags configures the logger.
func applyLogFlags(cfg *config.Config) error {
	if err := cfg.Log.SetLevel(*logLevel); err != nil {
		return err
	}
	format, err := config.ParseLogFormat(*logFormat)
	if err != nil {
		return err
	}
	cfg.Log.Format = format
	return nil
}

// applyVerifyFlags configures oracle verification.
func applyVerifyFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Verify.Workers = *workers
	}
	cfg.Verify.BufferSize = *bufferSize
	cfg.Verify.Depth = *verifyDepth
	cfg.Verify.FailFast = *failFast
	cfg.Verify.Dedupe = *dedupe
	cfg.Verify.Oracles = splitList(*oracles)
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
