package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestApplyMovesPiece(t *testing.T) {
	pos := NewInitialPosition()
	knight := pieceOn(t, pos, "g1")

	m := pos.Apply(chess.NewMove(knight, sq(t, "g1"), sq(t, "f3")))

	if got := pos.Board().Occupant(sq(t, "f3")); got != knight {
		t.Errorf("f3 occupant = %d; want %d", got, knight)
	}
	if pos.Board().IsOccupied(sq(t, "g1")) {
		t.Error("g1 still occupied after the move")
	}
	if m.IsCapture() {
		t.Errorf("quiet move recorded capture of %d", m.Captured)
	}
	if pos.Board().Piece(knight).Moved {
		t.Error("knight marked moved; only pawns track the flag")
	}
}

func TestApplyCapture(t *testing.T) {
	pos, _ := mustFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	pawn := pieceOn(t, pos, "e4")
	victim := pieceOn(t, pos, "d5")

	m := pos.Apply(chess.NewMove(pawn, sq(t, "e4"), sq(t, "d5")))

	if m.Captured != victim {
		t.Errorf("Captured = %d; want %d", m.Captured, victim)
	}
	if pos.Board().Piece(victim).OnBoard() {
		t.Error("captured piece still has a square")
	}
	if activeSet(pos, chess.Black)[victim] {
		t.Error("captured piece still in the black active set")
	}

	pos.Undo(m)

	if got := pos.Board().Occupant(sq(t, "d5")); got != victim {
		t.Errorf("d5 occupant after undo = %d; want %d", got, victim)
	}
	if !activeSet(pos, chess.Black)[victim] {
		t.Error("captured piece missing from the black active set after undo")
	}
}

func TestApplyMarksPawnMoved(t *testing.T) {
	pos := NewInitialPosition()
	pawn := pieceOn(t, pos, "e2")

	m := pos.Apply(chess.NewMove(pawn, sq(t, "e2"), sq(t, "e4")))
	if !pos.Board().Piece(pawn).Moved {
		t.Fatal("pawn not marked moved after its first move")
	}
	if m.PrevMoved {
		t.Error("PrevMoved = true; want false")
	}

	pos.Undo(m)
	if pos.Board().Piece(pawn).Moved {
		t.Error("pawn still marked moved after undo")
	}
}

// TestApplyUndoSymmetry applies and undoes every pseudo-legal move of both
// colours and checks the board and active sets are restored exactly.
func TestApplyUndoSymmetry(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"rnbqkbnr/ppp2ppp/8/3pp3/3PP3/8/PPP2PPP/RNBQKBNR w - - 0 1",
		"4k3/8/8/8/8/8/3q4/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		pos, _ := mustFEN(t, fen)
		board := pos.Board()
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, id := range pos.Active(colour) {
				from := board.Piece(id).Square()
				for _, dest := range PseudoLegal(board, id).Squares() {
					before := board.Snapshot()
					white, black := activeSet(pos, chess.White), activeSet(pos, chess.Black)

					m := pos.Apply(chess.NewMove(id, from, dest))
					if err := board.Verify(); err != nil {
						t.Fatalf("%s: %s: board inconsistent after apply: %v", fen, m, err)
					}
					pos.Undo(m)

					if diff := cmp.Diff(before, board.Snapshot()); diff != "" {
						t.Errorf("%s: %s: board mismatch after undo (-want +got):\n%s", fen, m, diff)
					}
					if diff := cmp.Diff(white, activeSet(pos, chess.White)); diff != "" {
						t.Errorf("%s: %s: white active mismatch (-want +got):\n%s", fen, m, diff)
					}
					if diff := cmp.Diff(black, activeSet(pos, chess.Black)); diff != "" {
						t.Errorf("%s: %s: black active mismatch (-want +got):\n%s", fen, m, diff)
					}
				}
			}
		}
	}
}

func TestSimulateRestores(t *testing.T) {
	pos, _ := mustFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	pawn := pieceOn(t, pos, "e4")
	before := pos.Board().Snapshot()
	m := chess.NewMove(pawn, sq(t, "e4"), sq(t, "d5"))

	t.Run("returns error", func(t *testing.T) {
		sentinel := errors.New("stop")
		err := pos.Simulate(m, func(sim *Position) error {
			if got := sim.Board().Occupant(sq(t, "d5")); got != pawn {
				t.Errorf("during simulate d5 occupant = %d; want %d", got, pawn)
			}
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Errorf("Simulate error = %v; want %v", err, sentinel)
		}
		if diff := cmp.Diff(before, pos.Board().Snapshot()); diff != "" {
			t.Errorf("board mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("panics", func(t *testing.T) {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic to propagate")
				}
			}()
			_ = pos.Simulate(m, func(*Position) error {
				panic("boom")
			})
		}()
		if diff := cmp.Diff(before, pos.Board().Snapshot()); diff != "" {
			t.Errorf("board mismatch (-want +got):\n%s", diff)
		}
		if got := len(pos.Active(chess.Black)); got != 2 {
			t.Errorf("black active pieces = %d; want 2", got)
		}
	})
}

func TestApplyInvariantPanics(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"piece not on source", "d2", "d3"},
		{"captures own piece", "e1", "e2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _ := mustFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
			king := pieceOn(t, pos, "e1")

			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, chesserrors.ErrInvariantViolation) {
					t.Errorf("recovered %v; want ErrInvariantViolation", r)
				}
			}()
			pos.Apply(chess.NewMove(king, sq(t, tt.from), sq(t, tt.to)))
		})
	}
}
