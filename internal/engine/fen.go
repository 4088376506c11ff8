package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string.
//
// Pieces get ids in board order from a8 to h1. The castling field only
// decides whether each king counts as unmoved, and an en passant square
// becomes a single history entry for the double pawn push that allowed
// it. The halfmove clock and move number are not carried over.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}

	parseCastlingRights(pos, parts)

	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}

	pos.ResetKeys()
	return pos, nil
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
// It is intended for package-level fixtures and tests.
func MustPositionFromFEN(fen string) *chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.Rows {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.Rows, len(rows), errors.ErrInvalidFEN)
	}

	for row, text := range rows {
		col := 0
		for _, c := range text {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.Cols {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				side := chess.White
				if unicode.IsLower(c) {
					side = chess.Black
				}
				pos.Place(kind, side, chess.Sq(row, col))
				col++
			}
		}
		if col != chess.Cols {
			return fmt.Errorf("rank %q covers %d files: %w", text, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.SetTurn(chess.White)
	case "b":
		pos.SetTurn(chess.Black)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights marks a king as moved unless its side keeps at least
// one castling right.
func parseCastlingRights(pos *chess.Position, parts []string) {
	rights := "-"
	if len(parts) >= 3 {
		rights = parts[2]
	}

	for _, side := range []chess.Side{chess.White, chess.Black} {
		king, ok := pos.KingOf(side)
		if !ok {
			continue
		}
		letters := "KQ"
		if side == chess.Black {
			letters = "kq"
		}
		pos.SetMoved(king.ID, !strings.ContainsAny(rights, letters))
	}
}

// parseEnPassant turns the en passant target square into the double pawn
// push that produced it.
func parseEnPassant(pos *chess.Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	target, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	pusher := pos.Turn().Opposite()
	dir := chess.PawnDirection(pusher)
	landed := chess.Sq(target.Row+dir, target.Col)
	from := chess.Sq(target.Row-dir, target.Col)

	pawn, ok := pos.PieceAt(landed)
	if !ok || pawn.Kind != chess.Pawn || pawn.Side != pusher || from.Row != chess.PawnStartRow(pusher) {
		return fmt.Errorf("no double-pushed pawn behind %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	pos.AppendMove(chess.Move{
		PieceID: pawn.ID,
		From:    from,
		To:      landed,
		Kind:    chess.Pawn,
	})
	return nil
}

// ToFEN converts a position to a FEN string.
//
// Castling rights are derived from unmoved kings on their home row with a
// friendly rook in the corner; the en passant square comes from the last
// move; the halfmove clock is counted back through the history.
func ToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", HalfmoveClock(pos), 1+pos.NumMoves()/2)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for row := 0; row < chess.Rows; row++ {
		emptyCount := 0
		for col := 0; col < chess.Cols; col++ {
			piece, ok := pos.PieceAt(chess.Sq(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Tag())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.Rows-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.Turn() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	hasCastling := false
	for _, side := range []chess.Side{chess.White, chess.Black} {
		kingside, queenside := castlingRights(pos, side)
		letters := []byte{'K', 'Q'}
		if side == chess.Black {
			letters = []byte{'k', 'q'}
		}
		if kingside {
			sb.WriteByte(letters[0])
			hasCastling = true
		}
		if queenside {
			sb.WriteByte(letters[1])
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// castlingRights reports which corners a side could still castle toward.
func castlingRights(pos *chess.Position, side chess.Side) (kingside, queenside bool) {
	king, ok := pos.KingOf(side)
	if !ok || king.HasMoved || king.Row != chess.HomeRow(side) {
		return false, false
	}
	isRook := func(col int) bool {
		rook, ok := pos.PieceAt(chess.Sq(king.Row, col))
		return ok && rook.Kind == chess.Rook && rook.Side == side
	}
	return isRook(chess.Cols - 1), isRook(0)
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	last, ok := pos.LastMove()
	if !ok || !last.IsDoublePawnPush() {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(chess.Sq((last.From.Row+last.To.Row)/2, last.To.Col).String())
}
