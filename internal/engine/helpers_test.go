package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustFEN parses fen or fails the test.
func mustFEN(t testing.TB, fen string) (*Position, chess.Colour) {
	t.Helper()
	pos, toMove, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos, toMove
}

// sq parses an algebraic square name.
func sq(t testing.TB, name string) chess.Square {
	t.Helper()
	s, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return s
}

// pieceOn returns the piece on the named square.
func pieceOn(t testing.TB, pos *Position, name string) chess.PieceID {
	t.Helper()
	id := pos.Board().Occupant(sq(t, name))
	if id == chess.NoPiece {
		t.Fatalf("no piece on %s", name)
	}
	return id
}

// squareSet builds a set from algebraic names.
func squareSet(t testing.TB, names ...string) chess.SquareSet {
	t.Helper()
	var s chess.SquareSet
	for _, name := range names {
		s = s.Add(sq(t, name))
	}
	return s
}

// play applies coordinate moves, each of which must be legal, and returns
// the side to move afterwards.
func play(t testing.TB, pos *Position, toMove chess.Colour, moves ...string) chess.Colour {
	t.Helper()
	for _, text := range moves {
		from, to, err := chess.ParseCoordinates(text)
		if err != nil {
			t.Fatalf("ParseCoordinates(%q) error: %v", text, err)
		}
		id := pos.Board().Occupant(from)
		if id == chess.NoPiece || pos.Board().Piece(id).Colour != toMove {
			t.Fatalf("%s: no %v piece on %s", text, toMove, from)
		}
		if !pos.TestMove(id, to) {
			t.Fatalf("%s: move is not legal", text)
		}
		pos.Apply(chess.NewMove(id, from, to))
		toMove = toMove.Opposite()
	}
	return toMove
}

// activeSet returns the colour's live pieces as a membership set.
func activeSet(pos *Position, colour chess.Colour) map[chess.PieceID]bool {
	out := make(map[chess.PieceID]bool)
	for _, id := range pos.Active(colour) {
		out[id] = true
	}
	return out
}
