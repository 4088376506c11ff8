package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// FindMove returns the first move in the list going from one square to
// another, both given in algebraic form. A promotion letter may follow the
// destination ("e7e8q") to pick one of the promotion choices.
func FindMove(moves []chess.Move, coord string) (chess.Move, bool) {
	if len(coord) < 4 {
		return chess.Move{}, false
	}
	from, ok := chess.ParseSquare(coord[0:2])
	if !ok {
		return chess.Move{}, false
	}
	to, ok := chess.ParseSquare(coord[2:4])
	if !ok {
		return chess.Move{}, false
	}
	promotion := chess.NoKind
	if len(coord) == 5 {
		promotion = chess.KindFromLetter(coord[4])
	}
	for _, m := range moves {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, true
		}
	}
	return chess.Move{}, false
}

// MustFindMove is FindMove that fails the test when no move matches.
func MustFindMove(t *testing.T, moves []chess.Move, coord string) chess.Move {
	t.Helper()
	m, ok := FindMove(moves, coord)
	if !ok {
		t.Fatalf("no move %s among %d candidates", coord, len(moves))
	}
	return m
}

// Destinations lists the destination squares of the moves in order.
func Destinations(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To.String())
	}
	return out
}

// Coordinates lists the moves in long algebraic form, in order.
func Coordinates(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.LongAlgebraic())
	}
	return out
}
