package notation

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Resolve finds the legal move of the side to move that a move text names.
// It accepts SAN ("Nf3", "exd5", "e8=Q+", "O-O") and coordinate form
// ("g1f3", "e7e8q").
func Resolve(pos *chess.Position, text string) (chess.Move, error) {
	p, ok := decode(text)
	if !ok {
		return chess.Move{}, &errors.NotationError{Err: errors.ErrUnresolvableNotation, Text: text}
	}

	var candidates []chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if p.matches(pos, m) {
			candidates = append(candidates, m)
		}
	}

	switch len(candidates) {
	case 0:
		return chess.Move{}, &errors.NotationError{Err: errors.ErrUnresolvableNotation, Text: text}
	case 1:
		return candidates[0], nil
	}

	names := make([]string, 0, len(candidates))
	for _, m := range candidates {
		names = append(names, m.LongAlgebraic())
	}
	return chess.Move{}, &errors.NotationError{
		Err:        errors.ErrAmbiguousNotation,
		Text:       text,
		Candidates: names,
	}
}

// matches reports whether a legal move fits the pattern.
func (p pattern) matches(pos *chess.Position, m chess.Move) bool {
	if p.castle != noCastle {
		return m.IsCastle() && m.IsKingside() == (p.castle == kingside)
	}

	if m.To != p.to {
		return false
	}
	// A missing promotion letter matches every choice, which leaves the
	// text ambiguous rather than unresolvable.
	if p.promotion != chess.NoKind && m.Promotion != p.promotion {
		return false
	}
	if p.fromCol >= 0 && m.From.Col != p.fromCol {
		return false
	}
	if p.fromRow >= 0 && m.From.Row != p.fromRow {
		return false
	}
	if p.kind == chess.NoKind {
		return true
	}
	piece, ok := pos.Piece(m.PieceID)
	return ok && piece.Kind == p.kind
}
