// Package output provides report formatting as text, JSON or SVG.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// Writer is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON, SVG).
type Writer interface {
	WritePosition(r *PositionReport) error
	WritePly(r *PlyReport) error
	WritePerft(r *PerftReport) error
	WriteVerify(r *VerifyReport) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Format, writing to cfg.Writer.
func NewWriter(cfg *config.OutputConfig) Writer {
	switch cfg.Format {
	case config.JSON:
		return NewJSONWriter(cfg.Writer)
	case config.SVG:
		return NewSVGWriter(cfg.Writer, cfg.SquareSize, cfg.Coordinates)
	}
	return NewTextWriter(cfg.Writer)
}

// TextWriter writes plain text reports.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WritePosition writes the board diagram followed by its summary.
func (tw *TextWriter) WritePosition(r *PositionReport) error {
	var sb strings.Builder
	if r.board != nil {
		sb.WriteString(r.board.String())
	}
	fmt.Fprintf(&sb, "fen: %s\n", r.FEN)
	fmt.Fprintf(&sb, "to move: %s\n", r.ToMove)
	fmt.Fprintf(&sb, "status: %s\n", r.Status)
	fmt.Fprintf(&sb, "legal moves: %d\n", r.LegalMoves)
	if r.InsufficientMaterial {
		sb.WriteString("insufficient material\n")
	}
	if r.Selected != "" {
		fmt.Fprintf(&sb, "destinations of %s: %s\n", r.Selected, strings.Join(r.Destinations, " "))
	}
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WritePly writes one line per proposal, e.g. "3. White g2g4 applied".
func (tw *TextWriter) WritePly(r *PlyReport) error {
	line := fmt.Sprintf("%d. %s %s %s", r.Ply, r.Colour, r.Move, r.Outcome)
	if r.Check && r.Outcome == "applied" {
		line += " check"
	}
	if r.Error != "" {
		line += ": " + r.Error
	}
	_, err := fmt.Fprintln(tw.w, line)
	return err
}

// WritePerft writes the divide breakdown in move order and the total.
func (tw *TextWriter) WritePerft(r *PerftReport) error {
	var sb strings.Builder
	moves := maps.Keys(r.Divide)
	slices.Sort(moves)
	for _, m := range moves {
		fmt.Fprintf(&sb, "%s: %d\n", m, r.Divide[m])
	}
	fmt.Fprintf(&sb, "depth %d nodes %d\n", r.Depth, r.Nodes)
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WriteVerify writes one line per position and a summary.
func (tw *TextWriter) WriteVerify(r *VerifyReport) error {
	var sb strings.Builder
	for _, res := range r.Results {
		switch {
		case res.Passed:
			fmt.Fprintf(&sb, "ok   #%d %s (%d nodes)\n", res.Index, res.FEN, res.Nodes)
		case res.Error != "":
			fmt.Fprintf(&sb, "FAIL #%d %s: %s\n", res.Index, res.FEN, res.Error)
		default:
			fmt.Fprintf(&sb, "FAIL #%d %s\n", res.Index, res.FEN)
			for _, m := range res.Mismatches {
				fmt.Fprintf(&sb, "     %s\n", m.Error())
			}
		}
	}
	fmt.Fprintf(&sb, "checked %d positions: %d passed, %d failed\n", r.Positions, r.Passed, r.Failed)
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
