package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ThreatMap returns every square the colour's active pieces could move to
// on their next turn, king included.
func (p *Position) ThreatMap(colour chess.Colour) chess.SquareSet {
	var threats chess.SquareSet
	for _, id := range p.active[colour] {
		threats = threats.Union(PseudoLegal(p.board, id))
	}
	return threats
}

// IsInCheck returns true if the given colour's king is in check.
// It panics if the colour has no king on the board.
func (p *Position) IsInCheck(colour chess.Colour) bool {
	return p.IsSquareAttacked(p.kingSquare(colour), colour.Opposite())
}

// IsSquareAttacked returns true if sq is in the threat map of byColour.
func (p *Position) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	return p.ThreatMap(byColour).Has(sq)
}
