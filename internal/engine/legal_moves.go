package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// TestMove returns true if moving the piece to dest is pseudo-legal and
// does not leave its own king in check. The board is left unchanged.
func (p *Position) TestMove(id chess.PieceID, dest chess.Square) bool {
	if !PseudoLegal(p.board, id).Has(dest) {
		return false
	}
	return p.kingSafeAfter(id, dest)
}

// kingSafeAfter simulates a pseudo-legal move and checks the mover's king.
func (p *Position) kingSafeAfter(id chess.PieceID, dest chess.Square) bool {
	piece := p.board.Piece(id)
	err := p.Simulate(chess.NewMove(id, piece.Square(), dest), func(sim *Position) error {
		if sim.IsInCheck(piece.Colour) {
			return errors.ErrIllegalMove
		}
		return nil
	})
	return err == nil
}

// LegalDestinations returns the pseudo-legal destinations of the piece
// that pass TestMove.
func (p *Position) LegalDestinations(id chess.PieceID) chess.SquareSet {
	var legal chess.SquareSet
	for _, dest := range PseudoLegal(p.board, id).Squares() {
		if p.kingSafeAfter(id, dest) {
			legal = legal.Add(dest)
		}
	}
	return legal
}

// AllowableSquares returns the union of legal destinations over every
// active piece of the colour.
func (p *Position) AllowableSquares(colour chess.Colour) chess.SquareSet {
	var allowed chess.SquareSet
	for _, id := range p.Active(colour) {
		allowed = allowed.Union(p.LegalDestinations(id))
	}
	return allowed
}

// LegalMoves returns every legal move of the colour, piece by piece in
// active-set order and destination by square index.
func (p *Position) LegalMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, id := range p.Active(colour) {
		from := p.board.Piece(id).Square()
		for _, dest := range p.LegalDestinations(id).Squares() {
			moves = append(moves, chess.NewMove(id, from, dest))
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (p *Position) HasLegalMoves(colour chess.Colour) bool {
	for _, id := range p.Active(colour) {
		for _, dest := range PseudoLegal(p.board, id).Squares() {
			if p.kingSafeAfter(id, dest) {
				return true
			}
		}
	}
	return false
}
