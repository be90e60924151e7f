package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string and returns the
// side to move. Castling, en passant and clock fields are accepted but
// ignored. Pawns off their home rank start as moved. The side not on move
// must not be in check.
func NewPositionFromFEN(fen string) (*Position, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	pos, err := NewPosition(board)
	if err != nil {
		return nil, chess.White, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	if pos.IsInCheck(toMove.Opposite()) {
		return nil, chess.White, fmt.Errorf("%v is in check but not on move: %w", toMove.Opposite(), errors.ErrInvalidFEN)
	}
	return pos, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank, file := 0, 0

	for i, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fenError(positions, i, "8 files per rank", fmt.Sprintf("%d", file))
			}
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fenError(positions, i, "at most 8 files", fmt.Sprintf("%d", file))
			}
		default:
			kind, ok := chess.KindFromLetter(byte(c))
			if !ok {
				return fenError(positions, i, "piece letter", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize || rank >= chess.BoardSize {
				return fenError(positions, i, "square on the board", "overflow")
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			id := board.AddPiece(colour, kind)
			board.Place(id, chess.MustSquare(file, rank))
			if kind == chess.Pawn && rank != chess.HomeRank(colour) {
				board.SetMoved(id, true)
			}
			file++
		}
	}
	if rank != chess.BoardSize-1 || file != chess.BoardSize {
		return fenError(positions, len(positions), "8 full ranks", fmt.Sprintf("%d ranks", rank+1))
	}
	return nil
}

// fenError reports a fault at index of the placement field input, not of
// the whole FEN string.
func fenError(input string, index int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    input,
		Column:   index + 1,
		Expected: expected,
		Got:      got,
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// FEN converts the position to a FEN string with toMove on move.
// Castling and en passant are always "-".
func (p *Position) FEN(toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, p.board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			letter := board.Letter(chess.MustSquare(file, rank))
			if letter == 0 {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
