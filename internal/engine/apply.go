package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Apply plays m on the board. An opposing piece on the destination is
// detached and removed from its active set; a moving pawn is marked moved.
// The returned record carries the captured piece and the prior flag and is
// the value to pass to Undo.
func (p *Position) Apply(m chess.Move) chess.Move {
	board := p.board
	if board.Occupant(m.From) != m.Piece {
		panic(fmt.Errorf("move %s: piece %d is not on %s: %w", m, m.Piece, m.From, errors.ErrInvariantViolation))
	}
	piece := board.Piece(m.Piece)

	m.PrevMoved = piece.Moved
	m.Captured = chess.NoPiece

	if target := board.Occupant(m.To); target != chess.NoPiece {
		captured := board.Piece(target)
		if captured.Colour == piece.Colour {
			panic(fmt.Errorf("move %s captures own %v: %w", m, captured.Kind, errors.ErrInvariantViolation))
		}
		board.Vacate(m.To)
		p.removeActive(captured.Colour, target)
		m.Captured = target
	}

	board.Place(m.Piece, m.To)
	if piece.Kind == chess.Pawn {
		board.SetMoved(m.Piece, true)
	}
	return m
}

// Undo reverses a record returned by Apply.
func (p *Position) Undo(m chess.Move) {
	board := p.board
	if board.Occupant(m.To) != m.Piece {
		panic(fmt.Errorf("undo %s: piece %d is not on %s: %w", m, m.Piece, m.To, errors.ErrInvariantViolation))
	}

	board.Place(m.Piece, m.From)
	if m.Captured != chess.NoPiece {
		board.Place(m.Captured, m.To)
		p.restoreActive(board.Piece(m.Captured).Colour, m.Captured)
	}
	board.SetMoved(m.Piece, m.PrevMoved)
}

// Simulate applies m, runs fn and undoes m before returning, even if fn
// returns an error or panics.
func (p *Position) Simulate(m chess.Move, fn func(*Position) error) error {
	applied := p.Apply(m)
	defer p.Undo(applied)
	return fn(p)
}
