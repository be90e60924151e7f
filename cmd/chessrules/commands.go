// commands.go - Subcommand implementations
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// environment carries what every command needs.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	out    output.Writer
	stdin  io.Reader
}

type command func(env *environment, args []string) error

var commands = map[string]command{
	"show":   runShow,
	"legal":  runLegal,
	"play":   runPlay,
	"perft":  runPerft,
	"verify": runVerify,
}

// loadPosition parses the configured FEN, or sets up the initial position.
func (env *environment) loadPosition() (*engine.Position, chess.Colour, error) {
	if env.cfg.FEN == "" {
		return engine.NewInitialPosition(), chess.White, nil
	}
	return engine.NewPositionFromFEN(env.cfg.FEN)
}

func runShow(env *environment, args []string) error {
	if len(args) > 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "show takes no arguments")
	}
	pos, toMove, err := env.loadPosition()
	if err != nil {
		return err
	}
	return env.out.WritePosition(output.NewPositionReport(pos, toMove))
}

func runLegal(env *environment, args []string) error {
	if len(args) == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "legal needs at least one square")
	}
	pos, toMove, err := env.loadPosition()
	if err != nil {
		return err
	}

	for _, name := range args {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			return err
		}
		id := pos.Board().Occupant(sq)
		if id == chess.NoPiece {
			return errors.Wrapf(errors.ErrNoSelection, "no piece on %s", sq)
		}
		dests := pos.LegalDestinations(id)
		env.logger.Debug("destinations computed",
			zap.String("square", sq.String()),
			zap.Int("count", dests.Len()),
		)
		report := output.NewPositionReport(pos, toMove).WithSelection(sq, dests)
		if err := env.out.WritePosition(report); err != nil {
			return err
		}
	}
	return nil
}

func runPlay(env *environment, args []string) error {
	opts := []game.Option{game.WithLogger(env.logger)}
	var g *game.Game
	if env.cfg.FEN == "" {
		g = game.New(opts...)
	} else {
		var err error
		if g, err = game.NewFromFEN(env.cfg.FEN, opts...); err != nil {
			return err
		}
	}

	for _, text := range args {
		if g.State() == game.Over {
			return errors.Wrapf(errors.ErrGameOver, "move %q after the game ended", text)
		}
		ply, mover := g.Ply()+1, g.ToMove()
		out, err := proposeText(g, text)
		if werr := env.out.WritePly(output.NewPlyReport(ply, mover, text, out, err)); werr != nil {
			return werr
		}
	}
	return env.out.WritePosition(output.NewPositionReport(g.Position(), g.ToMove()))
}

// proposeText selects the piece on the move's source square and proposes
// its destination. Unparsable text and empty squares are rejections.
func proposeText(g *game.Game, text string) (game.Outcome, error) {
	rejected := game.Outcome{Kind: game.Rejected, Colour: g.ToMove()}
	from, to, err := chess.ParseCoordinates(text)
	if err != nil {
		return rejected, err
	}
	id, err := g.SelectPiece(from)
	if err != nil {
		return rejected, err
	}
	if id == chess.NoPiece {
		return rejected, errors.Wrapf(errors.ErrNoSelection, "no piece on %s", from)
	}
	return g.ProposeMove(id, to)
}

func runPerft(env *environment, args []string) error {
	if len(args) > 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "perft takes no arguments")
	}
	pos, toMove, err := env.loadPosition()
	if err != nil {
		return err
	}

	depth := env.cfg.PerftDepth
	report := &output.PerftReport{FEN: pos.FEN(toMove), Depth: depth}
	if depth == 0 {
		report.Nodes = engine.Perft(pos, toMove, 0)
	} else {
		report.Divide = engine.Divide(pos, toMove, depth)
		for _, n := range report.Divide {
			report.Nodes += n
		}
	}
	env.logger.Info("perft complete",
		zap.Int("depth", depth),
		zap.Uint64("nodes", report.Nodes),
	)
	return env.out.WritePerft(report)
}

func runVerify(env *environment, args []string) error {
	var in io.Reader = env.stdin
	switch len(args) {
	case 0:
	case 1:
		file, err := os.Open(args[0]) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return err
		}
		defer file.Close() //nolint:errcheck // read-only file
		in = file
	default:
		return errors.Wrap(errors.ErrInvalidConfig, "verify takes at most one file")
	}

	fens, err := readFENs(in)
	if err != nil {
		return err
	}
	if len(fens) == 0 {
		return errors.Wrap(errors.ErrInvalidFEN, "no positions to verify")
	}

	oracles, err := crosscheck.FromConfig(env.cfg.Verify)
	if err != nil {
		return err
	}
	checker := crosscheck.NewChecker(oracles, env.cfg.Verify.Depth, env.logger).
		FailFast(env.cfg.Verify.FailFast)
	var seen *hashing.ThreadSafeDetector
	if env.cfg.Verify.Dedupe {
		seen = hashing.NewThreadSafeDetector(0)
		checker.Dedupe(seen)
	}
	pool := worker.NewPoolWithOptions(checker.ProcessFunc(),
		worker.WithWorkers(env.cfg.Verify.Workers),
		worker.WithBufferSize(env.cfg.Verify.BufferSize),
		worker.WithStopOnFailure(env.cfg.Verify.FailFast),
		worker.WithLogger(env.logger),
	)
	env.logger.Debug("verify started",
		zap.Int("positions", len(fens)),
		zap.Int("workers", pool.NumWorkers()),
	)

	report := output.NewVerifyReport(pool.Run(fens))
	env.logger.Info("verify complete",
		zap.Int("positions", report.Positions),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Bool("stopped", pool.IsStopped()),
	)
	if seen != nil {
		env.logger.Info("dedupe",
			zap.Int("unique", seen.UniqueCount()),
			zap.Int("repeated", seen.DuplicateCount()),
			zap.Bool("full", seen.IsFull()),
		)
	}
	if err := env.out.WriteVerify(report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d positions failed", report.Failed, report.Positions)
	}
	return nil
}

// readFENs reads one FEN per line, skipping blank lines and # comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}
