// Package perft counts the leaves of the legal move tree. The counts are
// the standard way to check a move generator against known values or
// against another generator.
package perft

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Entry is the leaf count below one root move.
type Entry struct {
	Move  string // Long algebraic form, e.g. "e2e4" or "a7a8q"
	Nodes uint64
}

// Total sums the node counts of a divide listing.
func Total(entries []Entry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}

// Count returns the number of leaf positions depth plies below pos.
// Draw rules are ignored; only positions without legal moves end a line.
func Count(pos *chess.Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := engine.LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var total uint64
	for _, m := range moves {
		next, err := engine.Advance(pos, m)
		if err != nil {
			return 0, err
		}
		n, err := Count(next, depth-1)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// Divide counts the leaves below each root move, searching the root
// moves in parallel. Entries come back in move generation order.
func Divide(ctx context.Context, pos *chess.Position, depth, workers int) ([]Entry, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	moves := engine.LegalMoves(pos)
	pool := worker.NewPoolWithOptions(searchSubtree,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)+1),
	)
	pool.Start()
	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	submitErr := make(chan error, 1)
	go func() {
		defer pool.Close()
		for i, m := range moves {
			if pool.IsStopped() {
				break
			}
			next, err := engine.Advance(pos, m)
			if err != nil {
				pool.Stop()
				submitErr <- errors.Wrapf(err, "dividing on %s", m.LongAlgebraic())
				return
			}
			pool.Submit(worker.WorkItem{Index: i, Move: m, Position: next, Depth: depth - 1})
		}
		submitErr <- nil
	}()

	results := make([]worker.ProcessResult, 0, len(moves))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil && firstErr == nil {
			firstErr = r.Error
			pool.Stop()
		}
		results = append(results, r)
	}
	if err := <-submitErr; err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = Entry{Move: r.Move.LongAlgebraic(), Nodes: r.Nodes}
	}
	return entries, nil
}

// searchSubtree is the pool's process function.
func searchSubtree(item worker.WorkItem) worker.ProcessResult {
	n, err := Count(item.Position, item.Depth)
	return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: n, Error: err}
}
