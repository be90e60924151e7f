package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction vectors as (file, rank) steps.
var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	knightMoves  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingMoves    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PseudoLegal returns the squares the piece could move to, ignoring
// whether the move leaves its own king in check. A captured piece has none.
func PseudoLegal(board *chess.Board, id chess.PieceID) chess.SquareSet {
	piece := board.Piece(id)
	if !piece.OnBoard() {
		return 0
	}
	from := piece.Square()

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, from, piece)
	case chess.Knight:
		return stepMoves(board, from, piece.Colour, knightMoves)
	case chess.Bishop:
		return slidingMoves(board, from, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, from, piece.Colour, straightDirs)
	case chess.Queen:
		return slidingMoves(board, from, piece.Colour, queenDirs)
	case chess.King:
		return stepMoves(board, from, piece.Colour, kingMoves)
	}
	return 0
}

// slidingMoves walks each direction until the edge or the first occupied
// square, which is included only if it holds an opposing piece.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) chess.SquareSet {
	var moves chess.SquareSet
	for _, dir := range dirs {
		sq, ok := from.Offset(dir[0], dir[1])
		for ok {
			if id := board.Occupant(sq); id != chess.NoPiece {
				if board.Piece(id).Colour != colour {
					moves = moves.Add(sq)
				}
				break // Blocked
			}
			moves = moves.Add(sq)
			sq, ok = sq.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// stepMoves checks each fixed offset for a knight or king.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) chess.SquareSet {
	var moves chess.SquareSet
	for _, offset := range offsets {
		sq, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		if id := board.Occupant(sq); id == chess.NoPiece || board.Piece(id).Colour != colour {
			moves = moves.Add(sq)
		}
	}
	return moves
}

// pawnMoves generates pushes onto empty squares and diagonal captures.
func pawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece) chess.SquareSet {
	var moves chess.SquareSet
	dir := chess.Forward(pawn.Colour)

	// Forward move
	if one, ok := from.Offset(0, dir); ok && !board.IsOccupied(one) {
		moves = moves.Add(one)
		// Double push needs both squares empty
		if !pawn.Moved {
			if two, ok := from.Offset(0, 2*dir); ok && !board.IsOccupied(two) {
				moves = moves.Add(two)
			}
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		sq, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if id := board.Occupant(sq); id != chess.NoPiece && board.Piece(id).Colour != pawn.Colour {
			moves = moves.Add(sq)
		}
	}
	return moves
}
