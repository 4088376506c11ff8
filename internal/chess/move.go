package chess

import "fmt"

// Move describes a single ply. Moves are immutable once built: the
// executor copies them into the history rather than mutating them.
type Move struct {
	// The piece being moved.
	PieceID int

	// Source and destination squares.
	From Square
	To   Square

	// Id of the piece captured (NoPiece if no capture). For en passant
	// this is not the piece on To, which is empty.
	Taken int

	// The kind promoted to (NoKind if not a promotion).
	Promotion PieceKind

	// The rook's own slide when this is a castling king move.
	Castling *Move

	// Kind of the moved piece at the time it moved. Generators fill it
	// in and the executor stamps it before recording history, so a later
	// promotion never changes how an earlier pawn move is classified.
	Kind PieceKind
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Taken != NoPiece
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastle returns true if this is a castling king move.
func (m Move) IsCastle() bool {
	return m.Castling != nil
}

// IsKingside returns true for castling toward the higher column.
func (m Move) IsKingside() bool {
	return m.IsCastle() && m.To.Col > m.From.Col
}

// IsDoublePawnPush returns true if the move is a pawn advancing two rows.
func (m Move) IsDoublePawnPush() bool {
	return m.Kind == Pawn && abs(m.To.Row-m.From.Row) == 2 && m.To.Col == m.From.Col
}

// Equal compares two moves field by field, following the castling slide.
func (m Move) Equal(other Move) bool {
	if m.PieceID != other.PieceID || m.From != other.From || m.To != other.To ||
		m.Taken != other.Taken || m.Promotion != other.Promotion {
		return false
	}
	if (m.Castling == nil) != (other.Castling == nil) {
		return false
	}
	if m.Castling != nil {
		return m.Castling.Equal(*other.Castling)
	}
	return true
}

// LongAlgebraic returns the coordinate form of the move, e.g. "e7e8q".
func (m Move) LongAlgebraic() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// String returns a debugging description of the move.
func (m Move) String() string {
	s := fmt.Sprintf("Move: ID %d from %s to %s", m.PieceID, m.From, m.To)
	if m.IsCapture() {
		s += fmt.Sprintf(" taking %d", m.Taken)
	}
	if m.IsPromotion() {
		s += fmt.Sprintf(" promoting to %s", m.Promotion)
	}
	if m.IsCastle() {
		s += " castling"
	}
	return s
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
