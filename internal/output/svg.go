package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	highlightFill = "fill:#1f7a1f;fill-opacity:0.5"
	selectedStyle = "fill:none;stroke:#1f4e9a;stroke-width:3"
	coordStyle    = "font-family:sans-serif;fill:#333333"
)

// glyphs maps a piece to its Unicode symbol, indexed by colour then kind.
var glyphs = [chess.NumColours][chess.NumKinds]string{
	chess.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
	chess.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
}

// SVGWriter draws position reports as SVG board diagrams.
// It supports positions only; other reports are rejected.
type SVGWriter struct {
	w           io.Writer
	square      int
	coordinates bool
}

// NewSVGWriter creates a writer drawing squares of the given pixel size.
func NewSVGWriter(w io.Writer, squareSize int, coordinates bool) *SVGWriter {
	if squareSize <= 0 {
		squareSize = 45
	}
	return &SVGWriter{w: w, square: squareSize, coordinates: coordinates}
}

func (sw *SVGWriter) margin() int {
	if sw.coordinates {
		return sw.square / 2
	}
	return 0
}

// WritePosition draws the board, the selected square and its destinations.
func (sw *SVGWriter) WritePosition(r *PositionReport) error {
	if r.board == nil {
		return fmt.Errorf("svg output needs a board: %w", errors.ErrInvalidConfig)
	}
	size := sw.square * chess.BoardSize
	m := sw.margin()

	canvas := svg.New(sw.w)
	canvas.Start(size+m, size+m)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		x, y := m+sq.File()*sw.square, sq.Rank()*sw.square
		fill := lightFill
		if sq.Shade() == chess.Dark {
			fill = darkFill
		}
		canvas.Rect(x, y, sw.square, sw.square, fill)
		if sq == r.selected {
			canvas.Rect(x+1, y+1, sw.square-2, sw.square-2, selectedStyle)
		}
		if id := r.board.Occupant(sq); id != chess.NoPiece {
			p := r.board.Piece(id)
			canvas.Text(x+sw.square/2, y+sw.square*3/4, glyphs[p.Colour][p.Kind],
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", sw.square*3/4))
		}
		if r.highlight.Has(sq) {
			canvas.Circle(x+sw.square/2, y+sw.square/2, sw.square/6, highlightFill)
		}
	}
	if sw.coordinates {
		sw.drawCoordinates(canvas, size, m)
	}
	canvas.End()
	return nil
}

func (sw *SVGWriter) drawCoordinates(canvas *svg.SVG, size, m int) {
	style := fmt.Sprintf("%s;text-anchor:middle;font-size:%dpx", coordStyle, m*2/3)
	for i := 0; i < chess.BoardSize; i++ {
		canvas.Text(m+i*sw.square+sw.square/2, size+m*3/4, string(rune('a'+i)), style)
		canvas.Text(m/2, i*sw.square+sw.square/2+m/4, string(rune('8'-i)), style)
	}
}

func unsupported(kind string) error {
	return fmt.Errorf("svg output cannot draw %s reports: %w", kind, errors.ErrInvalidConfig)
}

// WritePly is not supported.
func (sw *SVGWriter) WritePly(*PlyReport) error { return unsupported("ply") }

// WritePerft is not supported.
func (sw *SVGWriter) WritePerft(*PerftReport) error { return unsupported("perft") }

// WriteVerify is not supported.
func (sw *SVGWriter) WriteVerify(*VerifyReport) error { return unsupported("verify") }

// Flush is a no-op; each diagram is written immediately.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}
