package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates advances, captures, en passant and promotions.
func pawnMoves(pos *chess.Position, pawn chess.Piece) []chess.Move {
	var moves []chess.Move
	dir := chess.PawnDirection(pawn.Side)

	// Forward moves
	one := chess.Sq(pawn.Row+dir, pawn.Col)
	if pos.IsEmpty(one) {
		moves = appendPawnMove(moves, pawn, one, chess.NoPiece)

		// Double push from starting row
		two := chess.Sq(pawn.Row+2*dir, pawn.Col)
		if pawn.Row == chess.PawnStartRow(pawn.Side) && pos.IsEmpty(two) {
			moves = append(moves, newMove(pawn, two, chess.NoPiece))
		}
	}

	// Captures
	for _, dc := range []int{-1, 1} {
		diag := chess.Sq(pawn.Row+dir, pawn.Col+dc)
		if !diag.OnBoard() {
			continue
		}
		if occupant, ok := pos.PieceAt(diag); ok {
			if occupant.Side != pawn.Side {
				moves = appendPawnMove(moves, pawn, diag, occupant.ID)
			}
			continue
		}
		if victim, ok := enPassantVictim(pos, pawn, diag.Col); ok {
			moves = appendPawnMove(moves, pawn, diag, victim)
		}
	}

	return moves
}

// appendPawnMove appends a pawn move, expanded into one move per
// promotion choice when it lands on the promotion row.
func appendPawnMove(moves []chess.Move, pawn chess.Piece, to chess.Square, taken int) []chess.Move {
	if to.Row != chess.PromotionRow(pawn.Side) {
		return append(moves, newMove(pawn, to, taken))
	}
	for _, kind := range chess.PromotionKinds {
		m := newMove(pawn, to, taken)
		m.Promotion = kind
		moves = append(moves, m)
	}
	return moves
}

// enPassantVictim returns the pawn that can be taken en passant by moving
// diagonally into col. Only the last move in the history is consulted: it
// must be an enemy pawn's double push that landed beside this pawn.
func enPassantVictim(pos *chess.Position, pawn chess.Piece, col int) (int, bool) {
	last, ok := pos.LastMove()
	if !ok || !last.IsDoublePawnPush() {
		return chess.NoPiece, false
	}
	if last.To != chess.Sq(pawn.Row, col) {
		return chess.NoPiece, false
	}
	victim, ok := pos.Piece(last.PieceID)
	if !ok || victim.Side == pawn.Side || victim.Square() != last.To {
		return chess.NoPiece, false
	}
	return victim.ID, true
}
