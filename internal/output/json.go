package output

import (
	"encoding/json"
	"io"
)

// JSONOutput holds every report written in batch mode.
type JSONOutput struct {
	Positions []*PositionReport `json:"positions,omitempty"`
	Plies     []*PlyReport      `json:"plies,omitempty"`
	Perft     []*PerftReport    `json:"perft,omitempty"`
	Verify    *VerifyReport     `json:"verify,omitempty"`
}

func (o *JSONOutput) empty() bool {
	return len(o.Positions) == 0 && len(o.Plies) == 0 && len(o.Perft) == 0 && o.Verify == nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as one document on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	out    JSONOutput
	single bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as one document on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WritePosition buffers a position report (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(r *PositionReport) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.out.Positions = append(jw.out.Positions, r)
	return nil
}

// WritePly buffers a ply report (or writes immediately in single mode).
func (jw *JSONWriter) WritePly(r *PlyReport) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.out.Plies = append(jw.out.Plies, r)
	return nil
}

// WritePerft buffers a perft report (or writes immediately in single mode).
func (jw *JSONWriter) WritePerft(r *PerftReport) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.out.Perft = append(jw.out.Perft, r)
	return nil
}

// WriteVerify buffers a verify summary (or writes immediately in single mode).
func (jw *JSONWriter) WriteVerify(r *VerifyReport) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.out.Verify = r
	return nil
}

// Flush writes all buffered reports as one JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || jw.out.empty() {
		return nil
	}
	err := jw.encode(&jw.out)

	// Clear buffer after writing
	jw.out = JSONOutput{}

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
