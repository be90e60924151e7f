// Package crosscheck compares the engine's legal moves against reference
// move generators, position by position.
package crosscheck

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Mismatch is one disagreement between the engine and an oracle.
type Mismatch struct {
	Oracle  string   `json:"oracle"`
	FEN     string   `json:"fen"`
	Missing []string `json:"missing,omitempty"` // Oracle moves the engine lacks
	Extra   []string `json:"extra,omitempty"`   // Engine moves the oracle lacks
}

// Error describes the mismatch and wraps ErrOracleMismatch.
func (m Mismatch) Error() string {
	var parts []string
	if len(m.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(m.Missing, " "))
	}
	if len(m.Extra) > 0 {
		parts = append(parts, "extra "+strings.Join(m.Extra, " "))
	}
	return fmt.Sprintf("%s at %q: %s", m.Oracle, m.FEN, strings.Join(parts, ", "))
}

// Unwrap returns ErrOracleMismatch.
func (m Mismatch) Unwrap() error {
	return errors.ErrOracleMismatch
}

// Report is the result of checking one root position.
type Report struct {
	FEN        string     `json:"fen"`
	Nodes      int        `json:"nodes"`              // Positions compared
	Skipped    int        `json:"skipped"`            // Positions with a pawn on its last rank
	Repeated   int        `json:"repeated,omitempty"` // Subtrees already compared elsewhere
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// OK returns true if no oracle disagreed.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Err returns the first mismatch, or nil.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return r.Mismatches[0]
}

// Seen records position keys already compared. hashing.Detector and
// hashing.ThreadSafeDetector satisfy it; share the latter across workers.
type Seen interface {
	CheckAndAdd(key uint64) bool
}

// Checker walks the engine's move tree from a root position and compares
// each node's legal moves with every oracle.
type Checker struct {
	oracles  []Oracle
	depth    int
	failFast bool
	seen     Seen
	logger   *zap.Logger
}

// NewChecker creates a checker. Depth 0 compares the root position only.
func NewChecker(oracles []Oracle, depth int, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{oracles: oracles, depth: depth, logger: logger}
}

// FailFast stops a walk at its first mismatch.
func (c *Checker) FailFast(enabled bool) *Checker {
	c.failFast = enabled
	return c
}

// Dedupe skips subtrees whose position and remaining depth seen already
// holds. A nil seen compares every node.
func (c *Checker) Dedupe(seen Seen) *Checker {
	c.seen = seen
	return c
}

// Check parses fen and compares the tree below it.
func (c *Checker) Check(fen string) (*Report, error) {
	pos, toMove, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	report := &Report{FEN: fen}
	if err := c.walk(pos, toMove, c.depth, report); err != nil {
		return report, err
	}
	c.logger.Debug("position checked",
		zap.String("fen", fen),
		zap.Int("nodes", report.Nodes),
		zap.Int("skipped", report.Skipped),
		zap.Int("repeated", report.Repeated),
		zap.Int("mismatches", len(report.Mismatches)),
	)
	return report, nil
}

func (c *Checker) walk(pos *engine.Position, toMove chess.Colour, depth int, report *Report) error {
	if c.failFast && !report.OK() {
		return nil
	}
	if c.seen != nil {
		key := hashing.Key(pos.Board(), toMove) ^ hashing.DepthKey(depth)
		if c.seen.CheckAndAdd(key) {
			report.Repeated++
			return nil
		}
	}
	moves := pos.LegalMoves(toMove)

	if hasPawnOnLastRank(pos) {
		report.Skipped++
	} else {
		if err := c.compare(pos, toMove, moves, report); err != nil {
			return err
		}
	}

	if depth <= 0 {
		return nil
	}
	for _, m := range moves {
		applied := pos.Apply(m)
		err := c.walk(pos, toMove.Opposite(), depth-1, report)
		pos.Undo(applied)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) compare(pos *engine.Position, toMove chess.Colour, moves []chess.Move, report *Report) error {
	fen := pos.FEN(toMove)
	ours := MoveStrings(moves)
	report.Nodes++

	for _, o := range c.oracles {
		theirs, err := o.LegalMoves(fen)
		if err != nil {
			return fmt.Errorf("%s: %w", o.Name(), err)
		}
		missing, extra := Diff(ours, theirs)
		if len(missing) == 0 && len(extra) == 0 {
			continue
		}
		m := Mismatch{Oracle: o.Name(), FEN: fen, Missing: missing, Extra: extra}
		c.logger.Warn("oracle mismatch",
			zap.String("oracle", m.Oracle),
			zap.String("fen", fen),
			zap.Strings("missing", missing),
			zap.Strings("extra", extra),
		)
		report.Mismatches = append(report.Mismatches, m)
	}
	return nil
}

// ProcessFunc adapts the checker to the worker pool. The result payload
// is a *Report.
func (c *Checker) ProcessFunc() worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		report, err := c.Check(item.FEN)
		result := worker.ProcessResult{FEN: item.FEN, Index: item.Index, Error: err}
		if report != nil {
			result.Payload = report
			if err == nil {
				result.Passed = report.OK()
				result.Error = report.Err()
			}
		}
		return result
	}
}

// MoveStrings returns the moves in sorted coordinate notation.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

// Diff returns the sorted moves in theirs but not ours, and in ours but
// not theirs.
func Diff(ours, theirs []string) (missing, extra []string) {
	have := make(map[string]bool, len(ours))
	for _, m := range ours {
		have[m] = true
	}
	want := make(map[string]bool, len(theirs))
	for _, m := range theirs {
		want[m] = true
		if !have[m] {
			missing = append(missing, m)
		}
	}
	for _, m := range ours {
		if !want[m] {
			extra = append(extra, m)
		}
	}
	slices.Sort(missing)
	slices.Sort(extra)
	return missing, extra
}

// hasPawnOnLastRank reports a pawn standing where promotion would have
// replaced it. Reference generators do not model such positions.
func hasPawnOnLastRank(pos *engine.Position) bool {
	board := pos.Board()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		last := 0
		if colour == chess.Black {
			last = chess.BoardSize - 1
		}
		for _, id := range pos.Active(colour) {
			piece := board.Piece(id)
			if piece.Kind == chess.Pawn && piece.Square().Rank() == last {
				return true
			}
		}
	}
	return false
}
