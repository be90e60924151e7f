package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if the colour is in check with no legal move.
func (p *Position) IsCheckmate(colour chess.Colour) bool {
	return p.IsInCheck(colour) && !p.HasLegalMoves(colour)
}

// IsStalemate returns true if the colour is not in check and has no legal move.
func (p *Position) IsStalemate(colour chess.Colour) bool {
	return !p.IsInCheck(colour) && !p.HasLegalMoves(colour)
}

// StatusOf classifies the colour's position as one of NoCheck, Check,
// Checkmate or Stalemate.
func (p *Position) StatusOf(colour chess.Colour) chess.CheckStatus {
	inCheck := p.IsInCheck(colour)
	hasMoves := p.HasLegalMoves(colour)
	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate
	case inCheck:
		return chess.Check
	case !hasMoves:
		return chess.Stalemate
	}
	return chess.NoCheck
}
