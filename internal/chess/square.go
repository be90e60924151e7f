package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square identifies a board square as file + 8*rank.
// Rank 0 is Black's back rank (algebraic rank 8).
type Square int8

// NoSquare is the square reference of a captured piece.
const NoSquare Square = -1

// InBounds reports whether file and rank both lie inside the board.
func InBounds(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// SquareAt returns the square at file, rank.
func SquareAt(file, rank int) (Square, error) {
	if !InBounds(file, rank) {
		return NoSquare, fmt.Errorf("square (%d,%d): %w", file, rank, errors.ErrOutOfBounds)
	}
	return Square(file + rank*BoardSize), nil
}

// MustSquare is SquareAt for coordinates known to be valid.
func MustSquare(file, rank int) Square {
	sq, err := SquareAt(file, rank)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Input:    s,
			Expected: "square a1-h8",
			Got:      fmt.Sprintf("%q", s),
		}
	}
	return Square(int(s[0]-'a') + int('8'-s[1])*BoardSize), nil
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && int(s) < NumSquares
}

// File returns the file index 0-7 (a-h).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index 0-7 (algebraic 8-1).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Shade returns the fixed colour of the square.
func (s Square) Shade() Shade {
	if (s.File()+s.Rank())%2 == 0 {
		return Light
	}
	return Dark
}

// Offset returns the square df files and dr ranks away.
// The second result is false if that probe leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f, r := s.File()+df, s.Rank()+dr
	if !InBounds(f, r) {
		return NoSquare, false
	}
	return Square(f + r*BoardSize), true
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('8' - s.Rank())})
}
