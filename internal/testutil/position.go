package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustPosition parses a FEN string and returns the position and side to move.
// It calls t.Fatal if the FEN is rejected.
func MustPosition(t testing.TB, fen string) (*engine.Position, chess.Colour) {
	t.Helper()
	pos, toMove, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos, toMove
}

// MustSquare parses an algebraic square name such as "e4".
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// SquareNames returns the algebraic names of a set in index order.
func SquareNames(set chess.SquareSet) []string {
	names := []string{}
	for _, sq := range set.Squares() {
		names = append(names, sq.String())
	}
	return names
}

// AssertSquares compares a square set with the wanted names, in any order.
func AssertSquares(t testing.TB, got chess.SquareSet, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	var wantSet chess.SquareSet
	for _, name := range want {
		wantSet = wantSet.Add(MustSquare(t, name))
	}
	AssertEqual(t, SquareNames(got), SquareNames(wantSet), msgAndArgs...)
}
