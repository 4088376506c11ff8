package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// InCheck returns true if the given side's king is attacked.
// A side without a king is never in check.
func InCheck(pos *chess.Position, side chess.Side) bool {
	king, ok := pos.KingOf(side)
	if !ok {
		return false
	}
	return len(attackersOf(pos, king.ID, side.Opposite(), true)) > 0
}

// Attackers returns the pieces of the opposing side that could capture
// the piece with the given id, in ascending id order.
func Attackers(pos *chess.Position, id int) []chess.Piece {
	target, ok := pos.Piece(id)
	if !ok {
		return nil
	}
	return attackersOf(pos, id, target.Side.Opposite(), false)
}

// attackersOf scans the pseudo-legal moves of every piece of side by for a
// capture of target. With firstOnly it stops at the first attacker.
func attackersOf(pos *chess.Position, target int, by chess.Side, firstOnly bool) []chess.Piece {
	var attackers []chess.Piece
	for _, piece := range pos.PiecesOf(by) {
		for _, m := range generate(pos, piece, attacksOnly) {
			if m.Taken != target {
				continue
			}
			attackers = append(attackers, piece)
			if firstOnly {
				return attackers
			}
			break
		}
	}
	return attackers
}
