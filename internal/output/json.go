package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id,omitempty"`
	Moves      []JSONMove `json:"moves"`
	Result     string     `json:"result"`
	Outcome    string     `json:"outcome"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Captured   []string   `json:"captured,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castling   bool   `json:"castling,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game record to JSON form. With includeFEN every
// move carries the FEN of the position it leads to.
func GameToJSON(rec Record, includeFEN bool) (*JSONGame, error) {
	history := rec.Final.History()[rec.Start.NumMoves():]
	jg := &JSONGame{
		ID:         rec.ID,
		Moves:      make([]JSONMove, 0, len(history)),
		Result:     rec.Final.Result().Score(),
		Outcome:    rec.Final.Result().String(),
		PlyCount:   len(history),
		InitialFEN: engine.ToFEN(rec.Start),
		FinalFEN:   engine.ToFEN(rec.Final),
	}
	for _, piece := range rec.Final.Captured() {
		jg.Captured = append(jg.Captured, string(piece.Tag()))
	}

	pos := rec.Start
	for i, m := range history {
		jm, next, err := convertMove(pos, m, includeFEN)
		if err != nil {
			return nil, err
		}
		jm.MoveNumber = (rec.Start.NumMoves()+i)/2 + 1
		jg.Moves = append(jg.Moves, jm)
		pos = next
	}
	return jg, nil
}

// convertMove converts one move and returns the position after it.
func convertMove(pos *chess.Position, m chess.Move, includeFEN bool) (JSONMove, *chess.Position, error) {
	piece, _ := pos.Piece(m.PieceID)
	jm := JSONMove{
		Color:    strings.ToLower(piece.Side.String()),
		SAN:      notation.Format(pos, m),
		UCI:      m.LongAlgebraic(),
		From:     m.From.String(),
		To:       m.To.String(),
		Piece:    piece.Kind.String(),
		Castling: m.IsCastle(),
	}
	if victim, ok := pos.Piece(m.Taken); ok && m.IsCapture() {
		jm.Captured = victim.Kind.String()
	}
	if m.IsPromotion() {
		jm.Promotion = m.Promotion.String()
	}

	next, err := engine.Advance(pos, m)
	if err != nil {
		return jm, nil, err
	}
	if includeFEN {
		jm.FEN = engine.ToFEN(next)
	}
	return jm, next, nil
}

// OutputGamesJSON writes several games as one JSON document.
func OutputGamesJSON(recs []Record, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, 0, len(recs))}
	for _, rec := range recs {
		jg, err := GameToJSON(rec, false)
		if err != nil {
			return err
		}
		out.Games = append(out.Games, jg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
