// Package chess provides core chess types and operations.
package chess

import "fmt"

// Side represents the colour of a piece or player.
// The ordinal doubles as an array index and alternates each ply.
type Side int

const (
	White Side = iota
	Black
	NumSides
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota // Absent kind (e.g. no promotion)
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// PromotionKinds lists promotion choices in the order they are generated.
var PromotionKinds = [...]PieceKind{Knight, Bishop, Rook, Queen}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter tag of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a tag letter of either case to a piece kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Board dimensions.
const (
	Rows = 8
	Cols = 8

	FileBase = 'a'
	RankBase = '1'
)

// NoPiece is the empty-square marker and the "nothing captured" id.
const NoPiece = 0

// Square identifies a board cell. Row 0 is Black's back rank and
// column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies within the board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

// File returns the file letter of the square.
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit of the square.
func (s Square) Rank() byte {
	return byte(RankBase + Rows - 1 - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	col, ok := ColFromFile(name[0])
	if !ok {
		return Square{}, false
	}
	row, ok := RowFromRank(name[1])
	if !ok {
		return Square{}, false
	}
	return Sq(row, col), true
}

// ColFromFile converts a file letter to a column index.
func ColFromFile(file byte) (int, bool) {
	if file < FileBase || file >= FileBase+Cols {
		return 0, false
	}
	return int(file - FileBase), true
}

// RowFromRank converts a rank digit to a row index.
func RowFromRank(rank byte) (int, bool) {
	if rank < RankBase || rank >= RankBase+Rows {
		return 0, false
	}
	return Rows - 1 - int(rank-RankBase), true
}

// HomeRow returns the back-rank row of a side.
func HomeRow(side Side) int {
	if side == White {
		return Rows - 1
	}
	return 0
}

// PawnDirection returns the row delta of a pawn advance: -1 for White, +1 for Black.
func PawnDirection(side Side) int {
	if side == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row a side's pawns start on.
func PawnStartRow(side Side) int {
	if side == White {
		return Rows - 2
	}
	return 1
}

// PromotionRow returns the row on which a side's pawns promote.
func PromotionRow(side Side) int {
	return HomeRow(side.Opposite())
}

// Piece is the identity record of a piece on the board.
type Piece struct {
	ID   int
	Kind PieceKind
	Side Side
	Row  int
	Col  int

	// HasMoved is tracked for kings only; it gates castling.
	HasMoved bool
}

// Square returns the square the piece stands on.
func (p Piece) Square() Square {
	return Sq(p.Row, p.Col)
}

// Tag returns the kind letter, uppercase for White and lowercase for Black.
func (p Piece) Tag() byte {
	letter := p.Kind.Letter()
	if p.Side == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short description such as "N#7 at f3".
func (p Piece) String() string {
	return fmt.Sprintf("%c#%d at %s", p.Tag(), p.ID, p.Square())
}

// Result is the outcome state of a game.
type Result int

const (
	Ongoing Result = iota
	WhiteWin
	BlackWin
	DrawByInsufficientMaterial
	DrawByRepetition
	DrawByFiftyMove
	DrawByStalemate
)

// String returns the name of the result.
func (r Result) String() string {
	switch r {
	case Ongoing:
		return "Ongoing"
	case WhiteWin:
		return "White wins"
	case BlackWin:
		return "Black wins"
	case DrawByInsufficientMaterial:
		return "Draw by insufficient material"
	case DrawByRepetition:
		return "Draw by threefold repetition"
	case DrawByFiftyMove:
		return "Draw by fifty-move rule"
	case DrawByStalemate:
		return "Draw by stalemate"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further moves are accepted.
func (r Result) IsTerminal() bool {
	return r != Ongoing
}

// IsDraw reports whether the result is any kind of draw.
func (r Result) IsDraw() bool {
	switch r {
	case DrawByInsufficientMaterial, DrawByRepetition, DrawByFiftyMove, DrawByStalemate:
		return true
	default:
		return false
	}
}

// Winner returns the winning side of a decisive result.
func (r Result) Winner() (Side, bool) {
	switch r {
	case WhiteWin:
		return White, true
	case BlackWin:
		return Black, true
	default:
		return White, false
	}
}

// Score returns the PGN result token ("1-0", "0-1", "1/2-1/2" or "*").
func (r Result) Score() string {
	switch {
	case r == WhiteWin:
		return "1-0"
	case r == BlackWin:
		return "0-1"
	case r.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// WinFor returns the decisive result for the given side.
func WinFor(side Side) Result {
	if side == White {
		return WhiteWin
	}
	return BlackWin
}
