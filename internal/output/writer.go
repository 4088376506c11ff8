package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// Record is a game ready for output: its id, the position it started
// from and the position it has reached. Final's history extends Start's.
type Record struct {
	ID    string
	Start *chess.Position
	Final *chess.Position
}

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes games as a header, the final board and move text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game as text.
func (tw *TextWriter) WriteGame(rec Record) error {
	if rec.ID != "" {
		if _, err := fmt.Fprintf(tw.w, "Game %s\n", rec.ID); err != nil {
			return err
		}
	}
	if err := WriteBoard(tw.w, rec.Final, tw.cfg.Display); err != nil {
		return err
	}
	if tw.cfg.Display.ShowMoves {
		return WriteMoves(tw.w, rec.Start, rec.Final, tw.cfg.Display)
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	recs   []Record
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:    w,
		recs: make([]Record, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec Record) error {
	if jw.single {
		jg, err := GameToJSON(rec, true)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jg)
	}

	jw.recs = append(jw.recs, rec)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.recs) == 0 {
		return nil
	}

	err := OutputGamesJSON(jw.recs, jw.w)

	// Clear buffer after writing
	jw.recs = jw.recs[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
