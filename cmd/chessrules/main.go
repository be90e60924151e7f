// chessrules plays, inspects and verifies chess positions under the standard
// movement rules.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	// Set up logging and output files
	closeLog := setupLogFile(cfg)
	closeOutput := setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	logger := logging.New(cfg.Log)
	code := run(cfg, logger, flag.Args(), os.Stdin, os.Stderr)

	logger.Sync() //nolint:errcheck,gosec // G104: cleanup on exit
	closeOutput()
	closeLog()
	os.Exit(code)
}

// setupLogFile configures the log file based on command-line flags and
// returns a function closing it.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}

	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(exitFailure)
	}
	cfg.SetLogFile(file)
	return func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

// setupOutputFile configures the output file based on command-line flags
// and returns a function closing it.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitFailure)
	}
	cfg.SetOutput(file)
	return func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

// run dispatches args[0] to its command and returns the exit code.
func run(cfg *config.Config, logger *zap.Logger, args []string, stdin io.Reader, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "Error: no command given\n")
		return exitUsage
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n", name)
		return exitUsage
	}

	env := &environment{
		cfg:    cfg,
		logger: logging.Named(logger, name),
		out:    output.NewWriter(cfg.Output),
		stdin:  stdin,
	}
	err := cmd(env, args[1:])
	if closeErr := env.out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(stderr, "chessrules %s: %v\n", name, err)
		return exitFailure
	}
	return exitOK
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] command [arguments...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays and inspects chess positions under the standard movement rules.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  show             Describe the starting position\n")
	fmt.Fprintf(os.Stderr, "  legal squares... Legal destinations of the pieces on the squares\n")
	fmt.Fprintf(os.Stderr, "  play moves...    Play coordinate moves such as f2f3, one outcome per ply\n")
	fmt.Fprintf(os.Stderr, "  perft            Count leaf positions to -depth plies\n")
	fmt.Fprintf(os.Stderr, "  verify [file]    Compare legal moves of each FEN line with reference generators\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}
