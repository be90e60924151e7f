package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PieceID addresses a piece in the board's arena.
type PieceID int

// NoPiece marks an empty square or an absent capture.
const NoPiece PieceID = -1

// Piece is a piece's identity and mutable state.
// Its square is changed only through Board.Place and Board.Vacate.
type Piece struct {
	Colour Colour
	Kind   Kind
	Moved  bool

	square Square
}

// Square returns the square the piece stands on, or NoSquare if captured.
func (p Piece) Square() Square {
	return p.square
}

// OnBoard reports whether the piece is still placed.
func (p Piece) OnBoard() bool {
	return p.square != NoSquare
}

// Board is the 8x8 grid together with the arena of every piece in the game.
type Board struct {
	squares [NumSquares]PieceID
	pieces  []Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
	return b
}

// SetupInitialPosition places the standard starting layout on an empty board.
// Pieces are added White first, back rank a-h then pawns a-h, then Black.
func (b *Board) SetupInitialPosition() {
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{White, Black} {
		back, pawns := 7, 6
		if colour == Black {
			back, pawns = 0, 1
		}
		for file, kind := range backRank {
			b.Place(b.AddPiece(colour, kind), MustSquare(file, back))
		}
		for file := 0; file < BoardSize; file++ {
			b.Place(b.AddPiece(colour, Pawn), MustSquare(file, pawns))
		}
	}
}

// AddPiece creates an unplaced piece and returns its id.
func (b *Board) AddPiece(colour Colour, kind Kind) PieceID {
	b.pieces = append(b.pieces, Piece{Colour: colour, Kind: kind, square: NoSquare})
	return PieceID(len(b.pieces) - 1)
}

// NumPieces returns the arena size, captured pieces included.
func (b *Board) NumPieces() int {
	return len(b.pieces)
}

// Piece returns a copy of the piece with the given id.
func (b *Board) Piece(id PieceID) Piece {
	return b.pieces[b.mustID(id)]
}

// SetMoved sets the has-moved flag of a piece.
func (b *Board) SetMoved(id PieceID, moved bool) {
	b.pieces[b.mustID(id)].Moved = moved
}

// SquareAt returns the square at file, rank.
func (b *Board) SquareAt(file, rank int) (Square, error) {
	return SquareAt(file, rank)
}

// Place puts the piece on sq, overwriting any occupant.
// A piece standing elsewhere is lifted from its old square first.
// An overwritten occupant is left detached; callers that need to keep it
// must Vacate the square beforehand.
func (b *Board) Place(id PieceID, sq Square) {
	b.mustSquare(sq)
	p := &b.pieces[b.mustID(id)]
	if p.square != NoSquare {
		b.squares[p.square] = NoPiece
	}
	if old := b.squares[sq]; old != NoPiece && old != id {
		b.pieces[old].square = NoSquare
	}
	b.squares[sq] = id
	p.square = sq
}

// Vacate clears sq and detaches its occupant, which is returned.
func (b *Board) Vacate(sq Square) PieceID {
	b.mustSquare(sq)
	id := b.squares[sq]
	if id != NoPiece {
		b.pieces[id].square = NoSquare
		b.squares[sq] = NoPiece
	}
	return id
}

// IsOccupied reports whether sq holds a piece.
func (b *Board) IsOccupied(sq Square) bool {
	return b.Occupant(sq) != NoPiece
}

// Occupant returns the piece on sq, or NoPiece.
func (b *Board) Occupant(sq Square) PieceID {
	b.mustSquare(sq)
	return b.squares[sq]
}

// Verify checks that every square and piece reference agrees.
func (b *Board) Verify() error {
	for i, id := range b.squares {
		if id == NoPiece {
			continue
		}
		if int(id) < 0 || int(id) >= len(b.pieces) {
			return fmt.Errorf("square %s holds unknown piece %d: %w", Square(i), id, errors.ErrInvariantViolation)
		}
		if b.pieces[id].square != Square(i) {
			return fmt.Errorf("square %s holds piece %d which points at %s: %w",
				Square(i), id, b.pieces[id].square, errors.ErrInvariantViolation)
		}
	}
	for i, p := range b.pieces {
		if p.square == NoSquare {
			continue
		}
		if b.squares[p.square] != PieceID(i) {
			return fmt.Errorf("piece %d points at %s which holds %d: %w",
				i, p.square, b.squares[p.square], errors.ErrInvariantViolation)
		}
	}
	return nil
}

// BoardSnapshot captures occupants and piece state for comparison.
type BoardSnapshot struct {
	Squares [NumSquares]PieceID
	Moved   []bool
	Placed  []Square
}

// Snapshot returns the current occupants and piece flags.
func (b *Board) Snapshot() BoardSnapshot {
	s := BoardSnapshot{
		Squares: b.squares,
		Moved:   make([]bool, len(b.pieces)),
		Placed:  make([]Square, len(b.pieces)),
	}
	for i, p := range b.pieces {
		s.Moved[i] = p.Moved
		s.Placed[i] = p.square
	}
	return s
}

// Letter returns the FEN letter of the piece on sq, or 0 if empty.
func (b *Board) Letter(sq Square) byte {
	id := b.Occupant(sq)
	if id == NoPiece {
		return 0
	}
	p := b.pieces[id]
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns an ASCII diagram with rank 8 on top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		sb.WriteByte(byte('8' - rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			c := b.Letter(MustSquare(file, rank))
			if c == 0 {
				c = '.'
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}

func (b *Board) mustSquare(sq Square) {
	if !sq.Valid() {
		panic(fmt.Errorf("square index %d: %w", sq, errors.ErrOutOfBounds))
	}
}

func (b *Board) mustID(id PieceID) PieceID {
	if int(id) < 0 || int(id) >= len(b.pieces) {
		panic(fmt.Errorf("piece id %d: %w", id, errors.ErrInvariantViolation))
	}
	return id
}
