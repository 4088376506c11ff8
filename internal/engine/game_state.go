package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Evaluate decides the game result after a move has been executed and the
// turn flipped. The rules are checked in a fixed order: insufficient
// material, threefold repetition, the fifty-move rule, then checkmate or
// stalemate for the side now to move.
func Evaluate(pos *chess.Position) chess.Result {
	if HasInsufficientMaterial(pos) {
		return chess.DrawByInsufficientMaterial
	}
	if IsThreefoldRepetition(pos) {
		return chess.DrawByRepetition
	}
	if IsFiftyMoveDraw(pos) {
		return chess.DrawByFiftyMove
	}

	side := pos.Turn()
	if HasLegalMoves(pos, side) {
		return chess.Ongoing
	}
	if InCheck(pos, side) {
		return chess.WinFor(side.Opposite())
	}
	return chess.DrawByStalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	side := pos.Turn()
	return InCheck(pos, side) && !HasLegalMoves(pos, side)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	side := pos.Turn()
	return !InCheck(pos, side) && !HasLegalMoves(pos, side)
}
