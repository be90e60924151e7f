// Package game provides the turn controller that drives a game through
// piece selection and move proposals.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// State is the turn controller state.
type State int

const (
	AwaitingSelection State = iota
	PieceSelected
	Over
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case PieceSelected:
		return "piece-selected"
	case Over:
		return "game-over"
	}
	return "awaiting-selection"
}

// OutcomeKind classifies the result of a move proposal.
type OutcomeKind int

const (
	Applied OutcomeKind = iota
	Rejected
	AppliedThenCheckmate
	AppliedThenStalemate
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Applied:
		return "applied"
	case AppliedThenCheckmate:
		return "checkmate"
	case AppliedThenStalemate:
		return "stalemate"
	}
	return "rejected"
}

// Outcome is the result of ProposeMove.
type Outcome struct {
	Kind OutcomeKind
	// Move is the applied record. Zero for a rejection.
	Move chess.Move
	// Colour is the side now on move, which is the mated or stalemated
	// side for the terminal kinds.
	Colour chess.Colour
	// Check is true if the side now on move is in check.
	Check bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for state transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithListener sets the listener notified of moves and results.
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listener = l
		}
	}
}

// Game is the turn controller. It owns one position and alternates
// the side to move. It is not safe for concurrent use.
type Game struct {
	pos      *engine.Position
	toMove   chess.Colour
	state    State
	selected chess.PieceID
	ply      int
	result   chess.CheckStatus

	logger   *zap.Logger
	listener Listener
}

// New starts a game from the standard initial position with White to move.
func New(opts ...Option) *Game {
	return newGame(engine.NewInitialPosition(), chess.White, opts)
}

// NewFromFEN starts a game from a FEN position. A position that is already
// checkmate or stalemate starts in the Over state.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	pos, toMove, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(pos, toMove, opts), nil
}

func newGame(pos *engine.Position, toMove chess.Colour, opts []Option) *Game {
	g := &Game{
		pos:      pos,
		toMove:   toMove,
		selected: chess.NoPiece,
		result:   chess.NoCheck,
		logger:   zap.NewNop(),
		listener: NopListener{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if status := pos.StatusOf(toMove); status == chess.Checkmate || status == chess.Stalemate {
		g.state = Over
		g.result = status
	}
	g.logger.Debug("game started",
		zap.String("to_move", toMove.String()),
		zap.String("state", g.state.String()),
	)
	return g
}

// Position returns the underlying position. Callers must not mutate it.
func (g *Game) Position() *engine.Position { return g.pos }

// ToMove returns the side on move.
func (g *Game) ToMove() chess.Colour { return g.toMove }

// State returns the controller state.
func (g *Game) State() State { return g.state }

// Selected returns the selected piece, or NoPiece.
func (g *Game) Selected() chess.PieceID { return g.selected }

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int { return g.ply }

// Result returns the terminal status and the side it applies to.
// ok is false while the game is in progress.
func (g *Game) Result() (status chess.CheckStatus, colour chess.Colour, ok bool) {
	if g.state != Over {
		return chess.NoCheck, g.toMove, false
	}
	return g.result, g.toMove, true
}

// IsInCheck returns true if the colour's king is attacked.
func (g *Game) IsInCheck(colour chess.Colour) bool {
	return g.pos.IsInCheck(colour)
}

// Status returns the check status of the side on move.
func (g *Game) Status() chess.CheckStatus {
	return g.pos.StatusOf(g.toMove)
}

// SelectPiece selects the piece on sq. An empty square clears the
// selection and returns NoPiece. A piece of the side not on move is
// refused with ErrWrongTurn and the state is unchanged.
func (g *Game) SelectPiece(sq chess.Square) (chess.PieceID, error) {
	if g.state == Over {
		return chess.NoPiece, errors.ErrGameOver
	}
	if !sq.Valid() {
		return chess.NoPiece, fmt.Errorf("select %d: %w", sq, errors.ErrOutOfBounds)
	}

	id := g.pos.Board().Occupant(sq)
	if id == chess.NoPiece {
		g.ClearSelection()
		return chess.NoPiece, nil
	}
	if colour := g.pos.Board().Piece(id).Colour; colour != g.toMove {
		g.logger.Debug("selection refused",
			zap.String("square", sq.String()),
			zap.String("piece_colour", colour.String()),
			zap.String("to_move", g.toMove.String()),
		)
		return chess.NoPiece, &errors.MoveError{
			Err:      errors.ErrWrongTurn,
			Ply:      g.ply + 1,
			Colour:   g.toMove.String(),
			MoveText: sq.String(),
		}
	}

	g.selected = id
	g.state = PieceSelected
	g.logger.Debug("piece selected",
		zap.String("square", sq.String()),
		zap.String("kind", g.pos.Board().Piece(id).Kind.String()),
	)
	return id, nil
}

// ClearSelection drops the current selection.
func (g *Game) ClearSelection() {
	if g.state == Over {
		return
	}
	g.selected = chess.NoPiece
	g.state = AwaitingSelection
}

// LegalDestinations returns the legal destinations of the piece. Pieces of
// the side not on move, captured pieces and finished games have none.
func (g *Game) LegalDestinations(id chess.PieceID) chess.SquareSet {
	if g.state == Over || !g.owns(id) {
		return 0
	}
	return g.pos.LegalDestinations(id)
}

// ProposeMove plays the piece to dest if the move is legal. A rejected
// proposal clears the selection and leaves the board unchanged; the
// error wraps ErrIllegalMove, ErrWrongTurn or ErrGameOver.
func (g *Game) ProposeMove(id chess.PieceID, dest chess.Square) (Outcome, error) {
	rejected := Outcome{Kind: Rejected, Colour: g.toMove}
	if g.state == Over {
		return rejected, errors.ErrGameOver
	}

	if err := g.checkProposal(id, dest); err != nil {
		g.reject(id, dest, err)
		return rejected, err
	}

	board := g.pos.Board()
	from := board.Piece(id).Square()
	move := chess.NewMove(id, from, dest)
	if !g.pos.TestMove(id, dest) {
		err := &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			Ply:      g.ply + 1,
			Colour:   g.toMove.String(),
			MoveText: move.String(),
		}
		g.reject(id, dest, err)
		return rejected, err
	}

	mover := g.toMove
	move = g.pos.Apply(move)
	g.ply++
	g.toMove = mover.Opposite()
	g.selected = chess.NoPiece
	g.state = AwaitingSelection

	g.logger.Info("move applied",
		zap.Int("ply", g.ply),
		zap.String("colour", mover.String()),
		zap.String("move", move.String()),
		zap.Bool("capture", move.IsCapture()),
	)
	g.listener.MoveApplied(move, mover)

	out := Outcome{Kind: Applied, Move: move, Colour: g.toMove}
	switch status := g.pos.StatusOf(g.toMove); status {
	case chess.Check:
		out.Check = true
		g.logger.Info("check", zap.String("colour", g.toMove.String()))
		g.listener.Check(g.toMove)
	case chess.Checkmate:
		out.Kind = AppliedThenCheckmate
		out.Check = true
		g.finish(status)
	case chess.Stalemate:
		out.Kind = AppliedThenStalemate
		g.finish(status)
	}
	return out, nil
}

// checkProposal rejects proposals that do not name a live piece of the
// side on move or a square on the board.
func (g *Game) checkProposal(id chess.PieceID, dest chess.Square) error {
	wrap := func(err error) error {
		return &errors.MoveError{Err: err, Ply: g.ply + 1, Colour: g.toMove.String()}
	}
	if !dest.Valid() {
		return wrap(fmt.Errorf("destination %d: %w", dest, errors.ErrOutOfBounds))
	}
	if int(id) < 0 || int(id) >= g.pos.Board().NumPieces() {
		return wrap(errors.ErrNoSelection)
	}
	piece := g.pos.Board().Piece(id)
	if !piece.OnBoard() {
		return wrap(fmt.Errorf("piece %d is captured: %w", id, errors.ErrIllegalMove))
	}
	if piece.Colour != g.toMove {
		return wrap(errors.ErrWrongTurn)
	}
	return nil
}

func (g *Game) owns(id chess.PieceID) bool {
	if int(id) < 0 || int(id) >= g.pos.Board().NumPieces() {
		return false
	}
	piece := g.pos.Board().Piece(id)
	return piece.OnBoard() && piece.Colour == g.toMove
}

func (g *Game) reject(id chess.PieceID, dest chess.Square, err error) {
	g.selected = chess.NoPiece
	g.state = AwaitingSelection
	g.logger.Info("move rejected",
		zap.Int("ply", g.ply+1),
		zap.String("colour", g.toMove.String()),
		zap.Int("piece", int(id)),
		zap.Stringer("dest", dest),
		zap.Error(err),
	)
	g.listener.MoveRejected(id, dest, err)
}

func (g *Game) finish(status chess.CheckStatus) {
	g.state = Over
	g.result = status
	g.logger.Info("game over",
		zap.String("result", status.String()),
		zap.String("colour", g.toMove.String()),
		zap.Int("ply", g.ply),
	)
	g.listener.GameOver(status, g.toMove)
}
