package chess

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Position represents a chess position with all state needed for the game.
//
// The piece table is the single source of truth for piece fields; the
// board grid only holds ids so that square lookup is O(1). Engine
// operations never mutate a Position they were given: they Clone it and
// use the mutators below on the copy.
type Position struct {
	// The board squares, board[row][col], holding piece ids (NoPiece when empty).
	board [Rows][Cols]int

	// Live pieces and removed pieces, keyed by id.
	pieces   map[int]Piece
	captured map[int]Piece

	// Next id to hand out. Ids are never reused.
	nextID int

	// Every move played, oldest first.
	history []Move

	// Who has the next move.
	turn Side

	result Result

	// Position keys, one per ply, starting with the initial position.
	keys []string
}

// NewPosition creates a new empty position with White to move.
func NewPosition() *Position {
	return &Position{
		pieces:   make(map[int]Piece),
		captured: make(map[int]Piece),
		nextID:   NoPiece + 1,
		turn:     White,
	}
}

// NewInitialPosition creates a position with the standard starting layout.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition places both armies in the standard rank layout.
// It is meant for a freshly created position.
func (p *Position) SetupInitialPosition() {
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, side := range []Side{White, Black} {
		home := HomeRow(side)
		for col, kind := range backRank {
			p.Place(kind, side, Sq(home, col))
		}
		for col := 0; col < Cols; col++ {
			p.Place(Pawn, side, Sq(PawnStartRow(side), col))
		}
	}
	p.turn = White
	p.result = Ongoing
	p.keys = []string{p.Key()}
}

// AddPiece returns a copy of the position with a new piece placed on sq,
// along with the id it was given.
func (p *Position) AddPiece(kind PieceKind, side Side, sq Square) (*Position, int) {
	next := p.Clone()
	id := next.Place(kind, side, sq)
	return next, id
}

// Clone creates a deep copy of the position.
func (p *Position) Clone() *Position {
	return &Position{
		board:    p.board,
		pieces:   maps.Clone(p.pieces),
		captured: maps.Clone(p.captured),
		nextID:   p.nextID,
		history:  slices.Clone(p.history),
		turn:     p.turn,
		result:   p.result,
		keys:     slices.Clone(p.keys),
	}
}

// PieceAt returns the piece on the square, if any.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return Piece{}, false
	}
	id := p.board[sq.Row][sq.Col]
	if id == NoPiece {
		return Piece{}, false
	}
	return p.pieces[id], true
}

// IDAt returns the id held by the square (NoPiece if empty or off the board).
func (p *Position) IDAt(sq Square) int {
	if !sq.OnBoard() {
		return NoPiece
	}
	return p.board[sq.Row][sq.Col]
}

// IsEmpty reports whether an on-board square holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return sq.OnBoard() && p.board[sq.Row][sq.Col] == NoPiece
}

// Piece returns the live piece with the given id.
func (p *Position) Piece(id int) (Piece, bool) {
	piece, ok := p.pieces[id]
	return piece, ok
}

// CapturedPiece returns a removed piece by id.
func (p *Position) CapturedPiece(id int) (Piece, bool) {
	piece, ok := p.captured[id]
	return piece, ok
}

// Pieces returns all live pieces in ascending id order.
func (p *Position) Pieces() []Piece {
	return sortedPieces(p.pieces)
}

// PiecesOf returns the live pieces of one side in ascending id order.
func (p *Position) PiecesOf(side Side) []Piece {
	all := sortedPieces(p.pieces)
	out := all[:0]
	for _, piece := range all {
		if piece.Side == side {
			out = append(out, piece)
		}
	}
	return out
}

// Captured returns all removed pieces in ascending id order.
func (p *Position) Captured() []Piece {
	return sortedPieces(p.captured)
}

// NumPieces returns the number of live pieces.
func (p *Position) NumPieces() int {
	return len(p.pieces)
}

// KingOf returns the king of the given side.
func (p *Position) KingOf(side Side) (Piece, bool) {
	for _, piece := range sortedPieces(p.pieces) {
		if piece.Kind == King && piece.Side == side {
			return piece, true
		}
	}
	return Piece{}, false
}

// History returns a copy of the moves played so far.
func (p *Position) History() []Move {
	return slices.Clone(p.history)
}

// NumMoves returns the number of moves in the history.
func (p *Position) NumMoves() int {
	return len(p.history)
}

// LastMove returns the most recent move, if any.
func (p *Position) LastMove() (Move, bool) {
	if len(p.history) == 0 {
		return Move{}, false
	}
	return p.history[len(p.history)-1], true
}

// Turn returns the side to move.
func (p *Position) Turn() Side {
	return p.turn
}

// Result returns the game result recorded on the position.
func (p *Position) Result() Result {
	return p.result
}

// Keys returns a copy of the recorded position keys.
func (p *Position) Keys() []string {
	return slices.Clone(p.keys)
}

// Place puts a new piece on sq and returns its id. It is a low-level
// mutator: use it only on a position nobody else holds.
func (p *Position) Place(kind PieceKind, side Side, sq Square) int {
	id := p.nextID
	p.nextID++
	p.pieces[id] = Piece{ID: id, Kind: kind, Side: side, Row: sq.Row, Col: sq.Col}
	p.board[sq.Row][sq.Col] = id
	return id
}

// Relocate moves a live piece to sq, clearing its old square.
// Whatever id sq held before is overwritten.
func (p *Position) Relocate(id int, sq Square) {
	piece := p.pieces[id]
	if p.board[piece.Row][piece.Col] == id {
		p.board[piece.Row][piece.Col] = NoPiece
	}
	piece.Row, piece.Col = sq.Row, sq.Col
	p.pieces[id] = piece
	p.board[sq.Row][sq.Col] = id
}

// Remove takes a live piece off the board and into the captured table.
// Its square is only cleared if it still holds the piece's id.
func (p *Position) Remove(id int) {
	piece, ok := p.pieces[id]
	if !ok {
		return
	}
	if p.board[piece.Row][piece.Col] == id {
		p.board[piece.Row][piece.Col] = NoPiece
	}
	delete(p.pieces, id)
	p.captured[id] = piece
}

// Replace swaps the kind of a live piece, keeping id, side and square.
func (p *Position) Replace(id int, kind PieceKind) {
	piece, ok := p.pieces[id]
	if !ok {
		return
	}
	p.pieces[id] = Piece{ID: id, Kind: kind, Side: piece.Side, Row: piece.Row, Col: piece.Col}
}

// SetMoved records whether a piece has moved.
func (p *Position) SetMoved(id int, moved bool) {
	piece, ok := p.pieces[id]
	if !ok {
		return
	}
	piece.HasMoved = moved
	p.pieces[id] = piece
}

// AppendMove records a move in the history.
func (p *Position) AppendMove(m Move) {
	p.history = append(p.history, m)
}

// SetTurn sets the side to move.
func (p *Position) SetTurn(side Side) {
	p.turn = side
}

// SetResult records the game result.
func (p *Position) SetResult(r Result) {
	p.result = r
}

// AppendKey records the key of the current board layout.
func (p *Position) AppendKey() {
	p.keys = append(p.keys, p.Key())
}

// ResetKeys makes the current layout the only recorded key.
func (p *Position) ResetKeys() {
	p.keys = []string{p.Key()}
}

// Key returns the board-only position key: rows from White's back rank to
// Black's, runs of empty squares as counts, pieces as their tags, rows
// joined by '/'. Side to move, castling rights and en passant are not part
// of the key.
func (p *Position) Key() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < Cols; col++ {
			id := p.board[row][col]
			if id == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.pieces[id].Tag())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Validate checks that the board grid and the piece table agree.
func (p *Position) Validate() error {
	seen := make(map[int]bool, len(p.pieces))
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			id := p.board[row][col]
			if id == NoPiece {
				continue
			}
			piece, ok := p.pieces[id]
			if !ok {
				return fmt.Errorf("square %s holds unknown piece id %d", Sq(row, col), id)
			}
			if piece.Row != row || piece.Col != col {
				return fmt.Errorf("square %s holds %s", Sq(row, col), piece)
			}
			if seen[id] {
				return fmt.Errorf("piece id %d occupies more than one square", id)
			}
			seen[id] = true
		}
	}
	for id, piece := range p.pieces {
		if !seen[id] {
			return fmt.Errorf("piece %s is not on the board", piece)
		}
	}
	return nil
}

// sortedPieces returns the map's values ordered by id.
func sortedPieces(table map[int]Piece) []Piece {
	ids := maps.Keys(table)
	slices.Sort(ids)
	out := make([]Piece, 0, len(ids))
	for _, id := range ids {
		out = append(out, table[id])
	}
	return out
}
