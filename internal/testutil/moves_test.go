package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestFindMove(t *testing.T) {
	moves := []chess.Move{
		{PieceID: 1, From: chess.Sq(6, 4), To: chess.Sq(5, 4)},
		{PieceID: 1, From: chess.Sq(6, 4), To: chess.Sq(4, 4)},
		{PieceID: 2, From: chess.Sq(1, 0), To: chess.Sq(0, 0), Promotion: chess.Knight},
		{PieceID: 2, From: chess.Sq(1, 0), To: chess.Sq(0, 0), Promotion: chess.Queen},
	}

	m, ok := FindMove(moves, "e2e4")
	AssertTrue(t, ok, "e2e4 should be found")
	AssertEqual(t, m.To, chess.Sq(4, 4))

	m, ok = FindMove(moves, "a7a8q")
	AssertTrue(t, ok, "a7a8q should be found")
	AssertEqual(t, m.Promotion, chess.Queen)

	_, ok = FindMove(moves, "a7a8")
	AssertFalse(t, ok, "promotion moves need a promotion letter")

	_, ok = FindMove(moves, "zz")
	AssertFalse(t, ok)

	AssertEqual(t, Destinations(moves[:2]), []string{"e3", "e4"})
	AssertEqual(t, Coordinates(moves[2:]), []string{"a7a8n", "a7a8q"})
}
