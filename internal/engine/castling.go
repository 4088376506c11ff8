package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMoves returns the castling candidates of an unmoved king: one
// per friendly rook standing in a corner of the king's row with nothing in
// between. The king goes two squares toward the rook and the rook lands on
// the square the king passed over.
//
// A king in check may not castle, and the square it passes over must not
// be attacked. The destination square is left to the legality filter.
func castlingMoves(pos *chess.Position, king chess.Piece) []chess.Move {
	if king.HasMoved || InCheck(pos, king.Side) {
		return nil
	}

	var moves []chess.Move
	for _, corner := range []int{0, chess.Cols - 1} {
		rook, ok := pos.PieceAt(chess.Sq(king.Row, corner))
		if !ok || rook.Kind != chess.Rook || rook.Side != king.Side {
			continue
		}

		step := sign(corner - king.Col)
		passed := chess.Sq(king.Row, king.Col+step)
		dest := chess.Sq(king.Row, king.Col+2*step)
		if step == 0 || !dest.OnBoard() {
			continue
		}
		if !isRowClear(pos, king.Row, king.Col, corner) {
			continue
		}
		if passesThroughCheck(pos, king, passed) {
			continue
		}

		rookMove := chess.Move{
			PieceID: rook.ID,
			From:    rook.Square(),
			To:      passed,
			Kind:    chess.Rook,
		}
		m := newMove(king, dest, chess.NoPiece)
		m.Castling = &rookMove
		moves = append(moves, m)
	}
	return moves
}

// isRowClear checks that every square strictly between two columns of a row is empty.
func isRowClear(pos *chess.Position, row, fromCol, toCol int) bool {
	step := sign(toCol - fromCol)
	for col := fromCol + step; col != toCol; col += step {
		if !pos.IsEmpty(chess.Sq(row, col)) {
			return false
		}
	}
	return true
}

// passesThroughCheck simulates the king stepping onto sq and asks the
// oracle whether it would stand in check there.
func passesThroughCheck(pos *chess.Position, king chess.Piece, sq chess.Square) bool {
	sim, err := Apply(pos, newMove(king, sq, chess.NoPiece))
	if err != nil {
		return true
	}
	return InCheck(sim, king.Side)
}
