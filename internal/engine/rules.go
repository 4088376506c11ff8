package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// RepetitionLimit is the number of occurrences of a position key that draws.
const RepetitionLimit = 3

// FiftyMoveWindow is the number of half-moves the fifty-move rule inspects.
const FiftyMoveWindow = 100

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// HasInsufficientMaterial is true if neither side can force mate.
	HasInsufficientMaterial bool

	// HasThreefoldRepetition is true if any position key occurred three or more times.
	HasThreefoldRepetition bool

	// HasFiftyMoveRule is true if the last 100 half-moves had no capture and no pawn move.
	HasFiftyMoveRule bool
}

// Any reports whether any draw rule applies.
func (d DrawRuleResult) Any() bool {
	return d.HasInsufficientMaterial || d.HasThreefoldRepetition || d.HasFiftyMoveRule
}

// AnalyzeDrawRules evaluates every draw rule against the position.
func AnalyzeDrawRules(pos *chess.Position) DrawRuleResult {
	return DrawRuleResult{
		HasInsufficientMaterial: HasInsufficientMaterial(pos),
		HasThreefoldRepetition:  IsThreefoldRepetition(pos),
		HasFiftyMoveRule:        IsFiftyMoveDraw(pos),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material. Insufficient material is:
// - two pieces left (the kings)
// - three pieces left where the extra piece is a bishop or knight
func HasInsufficientMaterial(pos *chess.Position) bool {
	switch pos.NumPieces() {
	case 2:
		return true
	case 3:
		for _, piece := range pos.Pieces() {
			if piece.Kind == chess.Bishop || piece.Kind == chess.Knight {
				return true
			}
		}
	}
	return false
}

// IsThreefoldRepetition returns true if any recorded position key occurs
// three or more times. Keys cover the board only, so positions that differ
// just in side to move or castling rights count as the same.
func IsThreefoldRepetition(pos *chess.Position) bool {
	counts := make(map[string]int)
	for _, key := range pos.Keys() {
		counts[key]++
		if counts[key] >= RepetitionLimit {
			return true
		}
	}
	return false
}

// IsFiftyMoveDraw returns true if the last 100 half-moves contain no
// capture and no pawn move. Pawn moves are recognised by the kind the
// piece had when it moved, so a pawn that later promoted still counts.
func IsFiftyMoveDraw(pos *chess.Position) bool {
	history := pos.History()
	if len(history) < FiftyMoveWindow {
		return false
	}
	for _, m := range history[len(history)-FiftyMoveWindow:] {
		if m.IsCapture() || m.Kind == chess.Pawn {
			return false
		}
	}
	return true
}

// HalfmoveClock counts the half-moves since the last capture or pawn move.
func HalfmoveClock(pos *chess.Position) int {
	history := pos.History()
	clock := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].IsCapture() || history[i].Kind == chess.Pawn {
			break
		}
		clock++
	}
	return clock
}
