package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMovesFor returns the legal moves of one piece. Each pseudo-legal
// candidate is applied to a throwaway copy of the position and dropped if
// the mover's own king is in check afterwards.
func LegalMovesFor(pos *chess.Position, id int) []chess.Move {
	piece, ok := pos.Piece(id)
	if !ok {
		return nil
	}

	var legal []chess.Move
	for _, m := range generate(pos, piece, withCastling) {
		if leavesKingSafe(pos, m, piece.Side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves returns the legal moves of the side to move.
func LegalMoves(pos *chess.Position) []chess.Move {
	return LegalMovesForSide(pos, pos.Turn())
}

// LegalMovesForSide returns the legal moves of every piece of a side,
// pieces taken in ascending id order.
func LegalMovesForSide(pos *chess.Position, side chess.Side) []chess.Move {
	var moves []chess.Move
	for _, piece := range pos.PiecesOf(side) {
		moves = append(moves, LegalMovesFor(pos, piece.ID)...)
	}
	return moves
}

// HasLegalMoves returns true if the given side has at least one legal move.
func HasLegalMoves(pos *chess.Position, side chess.Side) bool {
	for _, piece := range pos.PiecesOf(side) {
		for _, m := range generate(pos, piece, withCastling) {
			if leavesKingSafe(pos, m, side) {
				return true
			}
		}
	}
	return false
}

// leavesKingSafe makes the move on a copy and checks the mover's king.
// Candidates come from the generator, so a failed simulation only means
// the candidate is discarded.
func leavesKingSafe(pos *chess.Position, m chess.Move, side chess.Side) bool {
	sim, err := Apply(pos, m)
	if err != nil {
		return false
	}
	return !InCheck(sim, side)
}
