// Package notation reads and writes chess moves in algebraic notation.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// castleSide distinguishes the two castling tokens.
type castleSide int

const (
	noCastle castleSide = iota
	kingside
	queenside
)

// pattern is what a move text says about the move it names. Unknown
// coordinates are -1 and an unknown kind is NoKind.
type pattern struct {
	kind      chess.PieceKind
	fromCol   int
	fromRow   int
	to        chess.Square
	promotion chess.PieceKind
	castle    castleSide
}

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	_, ok := chess.ColFromFile(c)
	return ok
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	_, ok := chess.RowFromRank(c)
	return ok
}

// isPiece returns the piece kind named by an uppercase letter. Besides the
// English letters it accepts D (queen), T (rook), S (knight) and L (bishop).
func isPiece(c byte) chess.PieceKind {
	switch c {
	case 'K':
		return chess.King
	case 'Q', 'D':
		return chess.Queen
	case 'R', 'T':
		return chess.Rook
	case 'N', 'S':
		return chess.Knight
	case 'B', 'L':
		return chess.Bishop
	}
	return chess.NoKind
}

// isPromotionPiece returns the promotion kind named by a letter of either case.
func isPromotionPiece(c byte) chess.PieceKind {
	switch kind := chess.KindFromLetter(c); kind {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return kind
	}
	return isPiece(c)
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isSuffix returns true for check marks and annotation glyphs.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// decode parses a move text into a pattern.
func decode(text string) (pattern, bool) {
	p := pattern{fromCol: -1, fromRow: -1}

	s := strings.TrimSpace(text)
	s = strings.TrimSuffix(s, "e.p.")
	s = strings.TrimSuffix(s, "ep")
	for len(s) > 0 && isSuffix(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	if s == "" {
		return p, false
	}

	if isCastlingChar(s[0]) {
		return decodeCastling(p, s)
	}

	lettered := false
	if kind := isPiece(s[0]); kind != chess.NoKind {
		p.kind = kind
		lettered = true
		s = s[1:]
	} else {
		p.kind = chess.Pawn
	}

	// Promotion suffix: e8=Q, e8Q, e7e8q
	if n := len(s); n >= 3 && p.kind == chess.Pawn {
		if kind := isPromotionPiece(s[n-1]); kind != chess.NoKind && (s[n-2] == '=' || isRank(s[n-2])) {
			p.promotion = kind
			s = strings.TrimSuffix(s[:n-1], "=")
		}
	}

	// Drop capture marks and separators; what remains is
	// [from file][from rank]<to file><to rank>.
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if !isCapture(s[i]) {
			sb.WriteByte(s[i])
		}
	}
	s = sb.String()

	if len(s) < 2 || len(s) > 4 {
		return p, false
	}
	to, ok := chess.ParseSquare(s[len(s)-2:])
	if !ok {
		return p, false
	}
	p.to = to

	switch from := s[:len(s)-2]; len(from) {
	case 0:
	case 1:
		switch {
		case isCol(from[0]):
			p.fromCol, _ = chess.ColFromFile(from[0])
		case isRank(from[0]):
			p.fromRow, _ = chess.RowFromRank(from[0])
		default:
			return p, false
		}
	case 2:
		sq, ok := chess.ParseSquare(from)
		if !ok {
			return p, false
		}
		p.fromCol, p.fromRow = sq.Col, sq.Row
		// Coordinate form without a piece letter names the piece by its square.
		if !lettered {
			p.kind = chess.NoKind
		}
	}

	return p, true
}

// decodeCastling parses O-O, O-O-O and their 0 and o spellings.
func decodeCastling(p pattern, s string) (pattern, bool) {
	count := 0
	for i := 0; i < len(s); i++ {
		switch {
		case isCastlingChar(s[i]):
			count++
		case s[i] == '-':
		default:
			return p, false
		}
	}
	switch count {
	case 2:
		p.castle = kingside
	case 3:
		p.castle = queenside
	default:
		return p, false
	}
	p.kind = chess.King
	return p, true
}
