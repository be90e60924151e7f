// Package engine provides move generation, move application and check detection.
package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is the game-state container: the board plus each colour's
// active piece set. It is not safe for concurrent use.
type Position struct {
	board  *chess.Board
	active [chess.NumColours][]chess.PieceID
	kings  [chess.NumColours]chess.PieceID
}

// NewPosition builds a position from the placed pieces of a board.
// Active sets follow arena order. Each colour must have exactly one king.
func NewPosition(board *chess.Board) (*Position, error) {
	p := &Position{
		board: board,
		kings: [chess.NumColours]chess.PieceID{chess.NoPiece, chess.NoPiece},
	}
	for i := 0; i < board.NumPieces(); i++ {
		id := chess.PieceID(i)
		piece := board.Piece(id)
		if !piece.OnBoard() {
			continue
		}
		if piece.Kind == chess.King {
			if p.kings[piece.Colour] != chess.NoPiece {
				return nil, fmt.Errorf("%v has more than one king: %w", piece.Colour, errors.ErrInvariantViolation)
			}
			p.kings[piece.Colour] = id
		}
		p.active[piece.Colour] = append(p.active[piece.Colour], id)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if p.kings[colour] == chess.NoPiece {
			return nil, fmt.Errorf("%v has no king: %w", colour, errors.ErrInvariantViolation)
		}
	}
	if err := board.Verify(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	p, err := NewPosition(board)
	if err != nil {
		panic(err)
	}
	return p
}

// Board returns the underlying board.
func (p *Position) Board() *chess.Board {
	return p.board
}

// Active returns a copy of the colour's live pieces.
func (p *Position) Active(colour chess.Colour) []chess.PieceID {
	return slices.Clone(p.active[colour])
}

// King returns the id of the colour's king.
func (p *Position) King(colour chess.Colour) chess.PieceID {
	return p.kings[colour]
}

// kingSquare returns the square of the colour's king.
// A king that is off the board is a bookkeeping bug and panics.
func (p *Position) kingSquare(colour chess.Colour) chess.Square {
	id := p.kings[colour]
	if id == chess.NoPiece {
		panic(fmt.Errorf("%v king not registered: %w", colour, errors.ErrInvariantViolation))
	}
	sq := p.board.Piece(id).Square()
	if sq == chess.NoSquare {
		panic(fmt.Errorf("%v king is not on the board: %w", colour, errors.ErrInvariantViolation))
	}
	return sq
}

// removeActive drops a captured piece from its colour's set.
func (p *Position) removeActive(colour chess.Colour, id chess.PieceID) {
	i := slices.Index(p.active[colour], id)
	if i < 0 {
		panic(fmt.Errorf("piece %d not active for %v: %w", id, colour, errors.ErrInvariantViolation))
	}
	p.active[colour] = slices.Delete(p.active[colour], i, i+1)
}

// restoreActive reinserts an uncaptured piece at the end of its colour's set.
func (p *Position) restoreActive(colour chess.Colour, id chess.PieceID) {
	if slices.Contains(p.active[colour], id) {
		panic(fmt.Errorf("piece %d already active for %v: %w", id, colour, errors.ErrInvariantViolation))
	}
	p.active[colour] = append(p.active[colour], id)
}
