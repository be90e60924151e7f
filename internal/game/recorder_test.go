package game

import "github.com/lgbarn/chessrules-go/internal/chess"

// Recorder is a Listener that keeps every notification, in order.
type Recorder struct {
	Events []Event
}

// Event is one notification captured by a Recorder.
type Event struct {
	Kind   string
	Move   chess.Move
	Colour chess.Colour
	Status chess.CheckStatus
	Err    error
}

func (r *Recorder) MoveApplied(move chess.Move, mover chess.Colour) {
	r.Events = append(r.Events, Event{Kind: "applied", Move: move, Colour: mover})
}

func (r *Recorder) MoveRejected(id chess.PieceID, dest chess.Square, err error) {
	r.Events = append(r.Events, Event{
		Kind: "rejected",
		Move: chess.Move{Piece: id, From: chess.NoSquare, To: dest, Captured: chess.NoPiece},
		Err:  err,
	})
}

func (r *Recorder) Check(colour chess.Colour) {
	r.Events = append(r.Events, Event{Kind: "check", Colour: colour})
}

func (r *Recorder) GameOver(status chess.CheckStatus, colour chess.Colour) {
	r.Events = append(r.Events, Event{Kind: "gameover", Colour: colour, Status: status})
}

// Kinds returns the kind of each recorded event.
func (r *Recorder) Kinds() []string {
	kinds := make([]string, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind
	}
	return kinds
}
