package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// HasInsufficientMaterial returns true if neither side can deliver mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same shade bishops)
// The result is informational; it never ends a game.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [chess.NumColours][]chess.Kind
	var bishopShade [chess.NumColours]chess.Shade

	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.Square(i)
		id := board.Occupant(sq)
		if id == chess.NoPiece {
			continue
		}
		piece := board.Piece(id)

		switch piece.Kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			// Any pawn, rook, or queen means sufficient material
			return false
		case chess.Bishop:
			bishopShade[piece.Colour] = sq.Shade()
		}
		minors[piece.Colour] = append(minors[piece.Colour], piece.Kind)
	}

	white, black := minors[chess.White], minors[chess.Black]

	// K vs K
	if len(white) == 0 && len(black) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(white) == 0 && len(black) == 1 {
		return true
	}
	if len(black) == 0 && len(white) == 1 {
		return true
	}

	// K+B vs K+B (same shade bishops)
	if len(white) == 1 && len(black) == 1 &&
		white[0] == chess.Bishop && black[0] == chess.Bishop {
		return bishopShade[chess.White] == bishopShade[chess.Black]
	}

	return false
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	expected := [chess.NumKinds]int{
		chess.Pawn: 8, chess.Knight: 2, chess.Bishop: 2,
		chess.Rook: 2, chess.Queen: 1, chess.King: 1,
	}
	var actual [chess.NumColours][chess.NumKinds]int

	for i := 0; i < chess.NumSquares; i++ {
		if id := board.Occupant(chess.Square(i)); id != chess.NoPiece {
			piece := board.Piece(id)
			actual[piece.Colour][piece.Kind]++
		}
	}

	return actual[chess.White] == expected && actual[chess.Black] == expected
}

// HasMaterialOdds returns true if the position does not hold the standard
// starting material for both sides.
func HasMaterialOdds(board *chess.Board) bool {
	return !isStandardMaterial(board)
}
