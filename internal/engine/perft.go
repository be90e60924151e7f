package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth
// with colour on move. Every node is visited through Apply and Undo.
func Perft(p *Position, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves(colour)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		applied := p.Apply(m)
		nodes += Perft(p, colour.Opposite(), depth-1)
		p.Undo(applied)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by
// coordinate notation.
func Divide(p *Position, colour chess.Colour, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range p.LegalMoves(colour) {
		applied := p.Apply(m)
		out[m.String()] = Perft(p, colour.Opposite(), depth-1)
		p.Undo(applied)
	}
	return out
}
