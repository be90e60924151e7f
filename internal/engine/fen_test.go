package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewPositionFromFEN(t *testing.T) {
	pos, toMove := mustFEN(t, InitialFEN)
	if toMove != chess.White {
		t.Errorf("toMove = %v; want White", toMove)
	}

	initial := NewInitialPosition()
	if diff := cmp.Diff(initial.Board().String(), pos.Board().String()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if got := len(pos.Active(colour)); got != 16 {
			t.Errorf("len(Active(%v)) = %d; want 16", colour, got)
		}
		if king := pos.Board().Piece(pos.King(colour)); king.Kind != chess.King || king.Colour != colour {
			t.Errorf("King(%v) = %v %v", colour, king.Colour, king.Kind)
		}
	}
}

func TestFENPawnMovedFlag(t *testing.T) {
	pos, _ := mustFEN(t, "4k3/p7/8/8/4P3/8/3P4/4K3 w - - 0 1")

	tests := []struct {
		square string
		want   bool
	}{
		{"a7", false},
		{"e4", true},
		{"d2", false},
	}
	for _, tt := range tests {
		if got := pos.Board().Piece(pieceOn(t, pos, tt.square)).Moved; got != tt.want {
			t.Errorf("pawn on %s Moved = %v; want %v", tt.square, got, tt.want)
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			want: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		},
		{
			name: "castling and en passant dropped",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		},
		{
			name: "sparse position",
			fen:  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			want: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			want: "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, toMove := mustFEN(t, tt.fen)
			if got := pos.FEN(toMove); got != tt.want {
				t.Errorf("FEN() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestNewPositionFromFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1"},
		{"rank overflow", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"digit overflow", "4k3/8/8/8/8/8/8/4K4 w - - 0 1"},
		{"short rank", "4k3/7/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad digit", "4k3/9/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"no kings", "8/8/8/8/8/8/8/8 w - - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/K3K3 w - - 0 1"},
		{"side not on move in check", "4k3/8/8/8/8/8/8/4RK2 w - - 0 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := NewPositionFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewPositionFromFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestFENParseErrorColumn(t *testing.T) {
	_, _, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4K2X w - - 0 1")
	var perr *chesserrors.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v; want *ParseError", err)
	}
	// The column counts from the start of the placement field.
	if perr.Input != "4k3/8/8/8/8/8/8/4K2X" {
		t.Errorf("Input = %q; want the placement field", perr.Input)
	}
	if perr.Column != 20 {
		t.Errorf("Column = %d; want 20", perr.Column)
	}
	if perr.Expected != "piece letter" {
		t.Errorf("Expected = %q; want %q", perr.Expected, "piece letter")
	}
}
