// Package processing replays recorded games to validate them and to
// report the rule-relevant features they contain.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Final *chess.Position

	PlyCount int
	Captures int
	Checks   int
	Castles  int

	HasFiftyMoveRule        bool
	HasRepetition           bool
	HasUnderpromotion       bool
	HasInsufficientMaterial bool // at the final position
}

// FiftyMoveTriggered returns true if the game triggered the fifty-move rule.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int // 1-based ply of the first bad move
	ErrorMsg string
}

// AnalyzeGame replays moves from start and records what happened along
// the way. Replay stops at the first move that cannot be played; the
// analysis then covers the moves before it and the error is returned.
func AnalyzeGame(start *chess.Position, moves []chess.Move) (*GameAnalysis, error) {
	analysis := &GameAnalysis{}
	pos := start
	seen := make(map[string]int)
	for _, key := range start.Keys() {
		seen[key]++
	}

	for i, m := range moves {
		next, err := engine.Play(pos, m)
		if err != nil {
			analysis.Final = pos
			return analysis, fmt.Errorf("analyzing ply %d: %w", i+1, err)
		}
		pos = next
		analysis.PlyCount++

		if m.IsCapture() {
			analysis.Captures++
		}
		if m.IsCastle() {
			analysis.Castles++
		}
		if m.IsPromotion() && m.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}
		if engine.InCheck(pos, pos.Turn()) {
			analysis.Checks++
		}
		if engine.IsFiftyMoveDraw(pos) {
			analysis.HasFiftyMoveRule = true
		}

		seen[pos.Key()]++
		if seen[pos.Key()] >= engine.RepetitionLimit {
			analysis.HasRepetition = true
		}
	}

	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(pos)
	analysis.Final = pos
	return analysis, nil
}

// ValidateGame checks that every move is legal in the position it is
// played from, which is stricter than what the executor itself enforces.
func ValidateGame(start *chess.Position, moves []chess.Move) *ValidationResult {
	pos := start
	for i, m := range moves {
		if !isLegal(pos, m) {
			return &ValidationResult{
				ErrorPly: i + 1,
				ErrorMsg: fmt.Sprintf("illegal move at ply %d: %s", i+1, m.LongAlgebraic()),
			}
		}
		next, err := engine.Play(pos, m)
		if err != nil {
			return &ValidationResult{
				ErrorPly: i + 1,
				ErrorMsg: fmt.Sprintf("ply %d: %v", i+1, err),
			}
		}
		pos = next
	}
	return &ValidationResult{Valid: true}
}

func isLegal(pos *chess.Position, m chess.Move) bool {
	for _, legal := range engine.LegalMoves(pos) {
		if legal.Equal(m) {
			return true
		}
	}
	return false
}
