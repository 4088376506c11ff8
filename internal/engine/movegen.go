// Package engine provides chess move generation, validation and board manipulation.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// genMode selects whether king moves include castling candidates.
// Attack detection uses attacksOnly so that castling, which itself asks
// whether squares are attacked, never recurses.
type genMode int

const (
	withCastling genMode = iota
	attacksOnly
)

// offset is a (row, col) delta.
type offset [2]int

// Ray and step tables. Their order fixes the order moves are generated in.
var (
	rookRays   = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopRays = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenRays  = append(append([]offset{}, rookRays...), bishopRays...)

	knightOffsets = []offset{{-1, -2}, {-1, 2}, {-2, -1}, {-2, 1}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PseudoLegalMoves returns every move the piece could make by movement
// geometry and occupancy alone, without checking whether the mover's king
// would be left in check.
func PseudoLegalMoves(pos *chess.Position, id int) []chess.Move {
	piece, ok := pos.Piece(id)
	if !ok {
		return nil
	}
	return generate(pos, piece, withCastling)
}

// generate dispatches on the piece kind.
func generate(pos *chess.Position, piece chess.Piece, mode genMode) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(pos, piece)

	case chess.Knight:
		return stepMoves(pos, piece, knightOffsets)

	case chess.Bishop:
		return slidingMoves(pos, piece, bishopRays)

	case chess.Rook:
		return slidingMoves(pos, piece, rookRays)

	case chess.Queen:
		return slidingMoves(pos, piece, queenRays)

	case chess.King:
		moves := stepMoves(pos, piece, kingOffsets)
		if mode == withCastling {
			moves = append(moves, castlingMoves(pos, piece)...)
		}
		return moves
	}

	return nil
}

// slidingMoves walks each ray outward until the edge or a blocker.
func slidingMoves(pos *chess.Position, piece chess.Piece, rays []offset) []chess.Move {
	var moves []chess.Move
	for _, dir := range rays {
		sq := chess.Sq(piece.Row+dir[0], piece.Col+dir[1])
		for sq.OnBoard() {
			occupant, occupied := pos.PieceAt(sq)
			if !occupied {
				moves = append(moves, newMove(piece, sq, chess.NoPiece))
				sq = chess.Sq(sq.Row+dir[0], sq.Col+dir[1])
				continue
			}
			if occupant.Side != piece.Side {
				moves = append(moves, newMove(piece, sq, occupant.ID))
			}
			break // Blocked
		}
	}
	return moves
}

// stepMoves emits a move for each fixed offset landing on an empty or enemy square.
func stepMoves(pos *chess.Position, piece chess.Piece, offsets []offset) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		sq := chess.Sq(piece.Row+off[0], piece.Col+off[1])
		if taken, ok := landing(pos, piece, sq); ok {
			moves = append(moves, newMove(piece, sq, taken))
		}
	}
	return moves
}

// landing reports whether the piece may land on sq, and which piece it
// would capture there.
func landing(pos *chess.Position, piece chess.Piece, sq chess.Square) (int, bool) {
	if !sq.OnBoard() {
		return chess.NoPiece, false
	}
	occupant, occupied := pos.PieceAt(sq)
	if !occupied {
		return chess.NoPiece, true
	}
	if occupant.Side == piece.Side {
		return chess.NoPiece, false
	}
	return occupant.ID, true
}

// newMove builds a plain move of piece to sq.
func newMove(piece chess.Piece, to chess.Square, taken int) chess.Move {
	return chess.Move{
		PieceID: piece.ID,
		From:    piece.Square(),
		To:      to,
		Taken:   taken,
		Kind:    piece.Kind,
	}
}
