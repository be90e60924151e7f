package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a transient record of one ply, used to apply and undo it.
type Move struct {
	// The piece being moved.
	Piece PieceID

	// Source and destination squares.
	From Square
	To   Square

	// The piece captured on To (NoPiece if none). Filled in when applied.
	Captured PieceID

	// The mover's has-moved flag before the move. Filled in when applied.
	PrevMoved bool
}

// NewMove creates a move record for piece from one square to another.
func NewMove(piece PieceID, from, to Square) Move {
	return Move{Piece: piece, From: from, To: to, Captured: NoPiece}
}

// IsCapture returns true if this move took a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// String returns the move in coordinate notation, e.g. "g1f3".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseCoordinates parses coordinate notation such as "f2f3" into squares.
func ParseCoordinates(text string) (from, to Square, err error) {
	if len(text) != 4 {
		return NoSquare, NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Input:    text,
			Expected: "four characters like e2e4",
			Got:      fmt.Sprintf("%d characters", len(text)),
		}
	}
	if from, err = ParseSquare(text[:2]); err != nil {
		return NoSquare, NoSquare, err
	}
	if to, err = ParseSquare(text[2:]); err != nil {
		return NoSquare, NoSquare, err
	}
	return from, to, nil
}
