package notation

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Castling tokens.
const (
	KingsideCastle  = "O-O"
	QueensideCastle = "O-O-O"
)

// Format renders a legal move of the side to move in SAN, with the
// minimal disambiguation and a "+" or "#" suffix.
func Format(pos *chess.Position, m chess.Move) string {
	piece, ok := pos.Piece(m.PieceID)
	if !ok {
		return m.LongAlgebraic()
	}

	var sb strings.Builder
	switch {
	case m.IsCastle():
		if m.IsKingside() {
			sb.WriteString(KingsideCastle)
		} else {
			sb.WriteString(QueensideCastle)
		}
	case piece.Kind == chess.Pawn:
		if m.IsCapture() {
			sb.WriteByte(m.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	default:
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(disambiguation(pos, piece, m))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	sb.WriteString(checkSuffix(pos, m))
	return sb.String()
}

// disambiguation returns the from-file, from-rank or whole from-square
// needed to tell the move apart from same-kind moves to the same square.
func disambiguation(pos *chess.Position, piece chess.Piece, m chess.Move) string {
	var rivals []chess.Square
	for _, other := range engine.LegalMoves(pos) {
		if other.PieceID == m.PieceID || other.To != m.To {
			continue
		}
		if p, ok := pos.Piece(other.PieceID); ok && p.Kind == piece.Kind {
			rivals = append(rivals, other.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameCol, sameRow := false, false
	for _, sq := range rivals {
		sameCol = sameCol || sq.Col == m.From.Col
		sameRow = sameRow || sq.Row == m.From.Row
	}
	switch {
	case !sameCol:
		return string(m.From.File())
	case !sameRow:
		return string(m.From.Rank())
	default:
		return m.From.String()
	}
}

// checkSuffix returns "#" for mate, "+" for check and "" otherwise.
func checkSuffix(pos *chess.Position, m chess.Move) string {
	next, err := engine.Advance(pos, m)
	if err != nil {
		return ""
	}
	side := next.Turn()
	if !engine.InCheck(next, side) {
		return ""
	}
	if engine.HasLegalMoves(next, side) {
		return "+"
	}
	return "#"
}

// FormatLine replays moves from a start position and renders each in SAN.
func FormatLine(start *chess.Position, moves []chess.Move) ([]string, error) {
	out := make([]string, 0, len(moves))
	pos := start
	for i, m := range moves {
		out = append(out, Format(pos, m))
		next, err := engine.Advance(pos, m)
		if err != nil {
			return out, errors.Wrapf(err, "formatting move %d", i+1)
		}
		pos = next
	}
	return out, nil
}

// MoveText numbers a SAN list as "1. e4 e5 2. Nf3". When black moves first
// the line opens with "1...".
func MoveText(sans []string, blackFirst bool) string {
	var sb strings.Builder
	number := 1
	offset := 0
	if blackFirst {
		offset = 1
	}
	for i, san := range sans {
		ply := i + offset
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case ply%2 == 0:
			sb.WriteString(strconv.Itoa(number))
			sb.WriteString(". ")
		case i == 0:
			sb.WriteString(strconv.Itoa(number))
			sb.WriteString("... ")
		}
		sb.WriteString(san)
		if ply%2 == 1 {
			number++
		}
	}
	return sb.String()
}
