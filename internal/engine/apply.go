package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Apply makes a move on a copy of the position and returns the copy.
//
// The mover is relocated, a captured piece moves to the captured table
// (its square is cleared only if it still holds it, which is what makes en
// passant work), a promotion replaces the mover's kind, a king is marked
// as moved, the move is recorded in the history with the mover's kind
// stamped on it, and a castling move also slides its rook. Legality is
// not checked and the turn is not changed. The only failure is a move
// whose start square does not hold the piece it names.
func Apply(pos *chess.Position, move chess.Move) (*chess.Position, error) {
	mover, ok := pos.Piece(move.PieceID)
	if !ok || pos.IDAt(move.From) == chess.NoPiece || mover.Square() != move.From || !move.To.OnBoard() {
		return nil, invalidMove(pos, move)
	}

	next := pos.Clone()

	// Move the piece
	next.Relocate(move.PieceID, move.To)

	// Handle capture
	if move.Taken != chess.NoPiece {
		next.Remove(move.Taken)
	}

	// Handle promotion
	if move.Promotion != chess.NoKind {
		next.Replace(move.PieceID, move.Promotion)
	}

	if mover.Kind == chess.King {
		next.SetMoved(move.PieceID, true)
	}

	recorded := move
	recorded.Kind = mover.Kind
	next.AppendMove(recorded)

	// The rook's slide rides on the king's history entry.
	if move.Castling != nil {
		rook := *move.Castling
		if _, ok := next.Piece(rook.PieceID); !ok || !rook.To.OnBoard() {
			return nil, invalidMove(pos, rook)
		}
		next.Relocate(rook.PieceID, rook.To)
	}

	return next, nil
}

// Advance applies a move and hands the turn to the other side.
func Advance(pos *chess.Position, move chess.Move) (*chess.Position, error) {
	next, err := Apply(pos, move)
	if err != nil {
		return nil, err
	}
	next.SetTurn(pos.Turn().Opposite())
	return next, nil
}

// Play executes a move as a ply of the game: it applies the move, flips
// the turn, records the new position key and evaluates the game-ending
// rules. Once the result is terminal no further moves are accepted.
func Play(pos *chess.Position, move chess.Move) (*chess.Position, error) {
	if pos.Result().IsTerminal() {
		return nil, &errors.MoveError{
			Err:    errors.ErrGameOver,
			PlyNum: pos.NumMoves() + 1,
			From:   move.From.String(),
			To:     move.To.String(),
		}
	}

	next, err := Advance(pos, move)
	if err != nil {
		return nil, err
	}
	next.AppendKey()
	next.SetResult(Evaluate(next))
	return next, nil
}

// Replay plays a move list from the standard starting position.
func Replay(moves []chess.Move) (*chess.Position, error) {
	return ReplayFrom(chess.NewInitialPosition(), moves)
}

// ReplayFrom plays a move list from the given position.
func ReplayFrom(start *chess.Position, moves []chess.Move) (*chess.Position, error) {
	pos := start
	for i, m := range moves {
		next, err := Play(pos, m)
		if err != nil {
			return nil, errors.Wrapf(err, "replaying move %d", i+1)
		}
		pos = next
	}
	return pos, nil
}

// invalidMove builds the error for a move that cannot be executed.
func invalidMove(pos *chess.Position, move chess.Move) error {
	return &errors.MoveError{
		Err:    errors.ErrInvalidMove,
		PlyNum: pos.NumMoves() + 1,
		From:   move.From.String(),
		To:     move.To.String(),
	}
}
