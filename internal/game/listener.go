package game

import "github.com/lgbarn/chessrules-go/internal/chess"

// Listener receives notifications from a Game. Implementations are called
// synchronously from the goroutine driving the game.
type Listener interface {
	// MoveApplied is called after a legal move has been played.
	MoveApplied(move chess.Move, mover chess.Colour)
	// MoveRejected is called when a proposal fails. The board is unchanged.
	MoveRejected(id chess.PieceID, dest chess.Square, err error)
	// Check is called when the side now on move is in check but can escape.
	Check(colour chess.Colour)
	// GameOver is called once, when colour is checkmated or stalemated.
	GameOver(status chess.CheckStatus, colour chess.Colour)
}

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) MoveApplied(chess.Move, chess.Colour) {}
func (NopListener) MoveRejected(chess.PieceID, chess.Square, error) {}
func (NopListener) Check(chess.Colour) {}
func (NopListener) GameOver(chess.CheckStatus, chess.Colour) {}
