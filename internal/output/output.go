// Package output renders positions and games as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// DefaultLineLength is the wrap width for move text.
const DefaultLineLength = 80

// EmptySquare is drawn for squares without a piece.
const EmptySquare = '.'

// OutputWriter handles line-wrapped output.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error, if any.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WriteBoard draws the position with White's back rank at the bottom
// (unless flipped), '.' for empty squares, and the optional coordinate,
// captured-piece and status lines.
func WriteBoard(w io.Writer, pos *chess.Position, opts *config.DisplayConfig) error {
	if opts == nil {
		opts = config.NewDisplayConfig()
	}

	rows, cols := boardOrder(opts.FlipBoard)
	var sb strings.Builder
	for _, row := range rows {
		if opts.ShowCoordinates {
			sb.WriteByte(chess.Sq(row, 0).Rank())
			sb.WriteByte(' ')
		}
		for i, col := range cols {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if piece, ok := pos.PieceAt(chess.Sq(row, col)); ok {
				sb.WriteByte(piece.Tag())
			} else {
				sb.WriteByte(EmptySquare)
			}
		}
		sb.WriteByte('\n')
	}

	if opts.ShowCoordinates {
		sb.WriteString(" ")
		for _, col := range cols {
			sb.WriteByte(' ')
			sb.WriteByte(chess.Sq(0, col).File())
		}
		sb.WriteByte('\n')
	}

	if opts.ShowCaptured {
		for _, line := range capturedLines(pos) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}

	sb.WriteString(Status(pos))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// boardOrder returns the row and column drawing order.
func boardOrder(flip bool) (rows, cols []int) {
	for i := 0; i < chess.Rows; i++ {
		if flip {
			rows = append(rows, chess.Rows-1-i)
		} else {
			rows = append(rows, i)
		}
	}
	for i := 0; i < chess.Cols; i++ {
		if flip {
			cols = append(cols, chess.Cols-1-i)
		} else {
			cols = append(cols, i)
		}
	}
	return rows, cols
}

// capturedLines lists captured pieces by the side that took them.
func capturedLines(pos *chess.Position) []string {
	var taken [chess.NumSides][]string
	for _, piece := range pos.Captured() {
		capturer := piece.Side.Opposite()
		taken[capturer] = append(taken[capturer], string(piece.Tag()))
	}

	var lines []string
	for side := chess.White; side < chess.NumSides; side++ {
		if len(taken[side]) > 0 {
			lines = append(lines, fmt.Sprintf("Captured by %s: %s", side, strings.Join(taken[side], " ")))
		}
	}
	return lines
}

// Status describes whose move it is or how the game ended.
func Status(pos *chess.Position) string {
	if r := pos.Result(); r.IsTerminal() {
		return fmt.Sprintf("%s (%s)", r, r.Score())
	}
	side := pos.Turn()
	if engine.InCheck(pos, side) {
		return fmt.Sprintf("%s to move, in check", side)
	}
	return fmt.Sprintf("%s to move", side)
}

// WriteMoves writes a game's moves as numbered, line-wrapped move text
// followed by the result token.
func WriteMoves(w io.Writer, start, final *chess.Position, opts *config.DisplayConfig) error {
	if opts == nil {
		opts = config.NewDisplayConfig()
	}

	history := final.History()[start.NumMoves():]
	var words []string
	if opts.LongAlgebraic {
		for _, m := range history {
			words = append(words, m.LongAlgebraic())
		}
	} else {
		sans, err := notation.FormatLine(start, history)
		if err != nil {
			return err
		}
		words = sans
	}

	ow := NewOutputWriter(w, DefaultLineLength)
	text := notation.MoveText(words, start.Turn() == chess.Black)
	for _, word := range strings.Fields(text) {
		ow.Write(word)
	}
	ow.Write(final.Result().Score())
	ow.NewLine()
	return ow.Err()
}
