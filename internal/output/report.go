package output

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// PositionReport describes one position and, optionally, the legal
// destinations of a selected piece.
type PositionReport struct {
	FEN                  string   `json:"fen"`
	ToMove               string   `json:"toMove"`
	Status               string   `json:"status"`
	LegalMoves           int      `json:"legalMoves"`
	InsufficientMaterial bool     `json:"insufficientMaterial,omitempty"`
	MaterialOdds         bool     `json:"materialOdds,omitempty"`
	Selected             string   `json:"selected,omitempty"`
	Destinations         []string `json:"destinations,omitempty"`

	board     *chess.Board
	selected  chess.Square
	highlight chess.SquareSet
}

// NewPositionReport summarises pos with toMove on move.
func NewPositionReport(pos *engine.Position, toMove chess.Colour) *PositionReport {
	board := pos.Board()
	return &PositionReport{
		FEN:                  pos.FEN(toMove),
		ToMove:               toMove.String(),
		Status:               pos.StatusOf(toMove).String(),
		LegalMoves:           len(pos.LegalMoves(toMove)),
		InsufficientMaterial: engine.HasInsufficientMaterial(board),
		MaterialOdds:         engine.HasMaterialOdds(board),
		board:                board,
		selected:             chess.NoSquare,
	}
}

// WithSelection records the piece on sq and its legal destinations.
func (r *PositionReport) WithSelection(sq chess.Square, dests chess.SquareSet) *PositionReport {
	r.Selected = sq.String()
	r.selected = sq
	r.highlight = dests
	r.Destinations = make([]string, 0, dests.Len())
	for _, d := range dests.Squares() {
		r.Destinations = append(r.Destinations, d.String())
	}
	return r
}

// PlyReport describes one proposed move and its outcome.
type PlyReport struct {
	Ply     int    `json:"ply"`
	Colour  string `json:"colour"`
	Move    string `json:"move"`
	Outcome string `json:"outcome"`
	Check   bool   `json:"check,omitempty"`
	Capture bool   `json:"capture,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewPlyReport builds a report from a ProposeMove result.
func NewPlyReport(ply int, mover chess.Colour, text string, out game.Outcome, err error) *PlyReport {
	r := &PlyReport{
		Ply:     ply,
		Colour:  mover.String(),
		Move:    text,
		Outcome: out.Kind.String(),
		Check:   out.Check,
	}
	if out.Kind != game.Rejected {
		r.Capture = out.Move.IsCapture()
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// PerftReport holds a perft count and its per-move breakdown.
type PerftReport struct {
	FEN    string            `json:"fen"`
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
}

// VerifyResult is the outcome for one position of a verify batch.
type VerifyResult struct {
	Index      int                   `json:"index"`
	FEN        string                `json:"fen"`
	Passed     bool                  `json:"passed"`
	Nodes      int                   `json:"nodes"`
	Skipped    int                   `json:"skipped,omitempty"`
	Mismatches []crosscheck.Mismatch `json:"mismatches,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// VerifyReport summarises a verify batch.
type VerifyReport struct {
	Positions int            `json:"positions"`
	Passed    int            `json:"passed"`
	Failed    int            `json:"failed"`
	Results   []VerifyResult `json:"results"`
}

// NewVerifyReport builds a summary from pool results whose payloads are
// *crosscheck.Report values.
func NewVerifyReport(results []worker.ProcessResult) *VerifyReport {
	vr := &VerifyReport{Positions: len(results), Results: make([]VerifyResult, 0, len(results))}
	for _, res := range results {
		r := VerifyResult{Index: res.Index, FEN: res.FEN, Passed: res.Passed}
		if report, ok := res.Payload.(*crosscheck.Report); ok {
			r.Nodes = report.Nodes
			r.Skipped = report.Skipped
			r.Mismatches = report.Mismatches
		}
		if res.Error != nil && len(r.Mismatches) == 0 {
			r.Error = res.Error.Error()
		}
		if r.Passed {
			vr.Passed++
		} else {
			vr.Failed++
		}
		vr.Results = append(vr.Results, r)
	}
	return vr
}
