package perft

import (
	"context"
	"sort"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Mismatch is a root move whose count differs from the reference generator.
// A move missing on one side shows a zero count there.
type Mismatch struct {
	Move      string
	Nodes     uint64
	Reference uint64
}

// Reference counts leaves with the dragontoothmg bitboard generator.
// fen must be well formed; check it with engine.NewPositionFromFEN first.
func Reference(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return referenceCount(&board, depth)
}

// ReferenceDivide is Reference broken down by root move.
func ReferenceDivide(fen string, depth int) map[string]uint64 {
	board := dragontoothmg.ParseFen(fen)
	counts := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		counts[m.String()] = referenceCount(&board, depth-1)
		unapply()
	}
	return counts
}

func referenceCount(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var total uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		total += referenceCount(b, depth-1)
		unapply()
	}
	return total
}

// SecondReference counts leaves with the notnil/chess generator. It is
// much slower than Reference and meant for shallow confirmations.
func SecondReference(fen string, depth int) (uint64, error) {
	opt, err := notnil.FEN(fen)
	if err != nil {
		return 0, err
	}
	return secondCount(notnil.NewGame(opt).Position(), depth), nil
}

func secondCount(pos *notnil.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var total uint64
	for _, m := range moves {
		total += secondCount(pos.Update(m), depth-1)
	}
	return total
}

// CrossCheck divides pos with both generators and reports the root moves
// whose counts disagree, sorted by move. An empty result means the two
// generators agree.
func CrossCheck(ctx context.Context, pos *chess.Position, depth, workers int) ([]Mismatch, error) {
	entries, err := Divide(ctx, pos, depth, workers)
	if err != nil {
		return nil, err
	}
	ref := ReferenceDivide(engine.ToFEN(pos), depth)

	var mismatches []Mismatch
	for _, e := range entries {
		want, ok := ref[e.Move]
		delete(ref, e.Move)
		if ok && want == e.Nodes {
			continue
		}
		mismatches = append(mismatches, Mismatch{Move: e.Move, Nodes: e.Nodes, Reference: want})
	}
	for move, want := range ref {
		mismatches = append(mismatches, Mismatch{Move: move, Reference: want})
	}
	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].Move < mismatches[j].Move })
	return mismatches, nil
}
