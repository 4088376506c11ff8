package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// singlePiece returns a position holding one piece and its id.
func singlePiece(kind chess.PieceKind, side chess.Side, square string) (*chess.Position, int) {
	sq, _ := chess.ParseSquare(square)
	return chess.NewPosition().AddPiece(kind, side, sq)
}

func TestSlidingMoves_EmptyBoard(t *testing.T) {
	tests := []struct {
		name   string
		kind   chess.PieceKind
		square string
		want   []string
	}{
		{
			name:   "rook d4",
			kind:   chess.Rook,
			square: "d4",
			want:   []string{"d5", "d6", "d7", "d8", "d3", "d2", "d1", "c4", "b4", "a4", "e4", "f4", "g4", "h4"},
		},
		{
			name:   "bishop d4",
			kind:   chess.Bishop,
			square: "d4",
			want:   []string{"c5", "b6", "a7", "e5", "f6", "g7", "h8", "c3", "b2", "a1", "e3", "f2", "g1"},
		},
		{
			name:   "rook a8 corner",
			kind:   chess.Rook,
			square: "a8",
			want:   []string{"a7", "a6", "a5", "a4", "a3", "a2", "a1", "b8", "c8", "d8", "e8", "f8", "g8", "h8"},
		},
		{
			name:   "bishop h1 corner",
			kind:   chess.Bishop,
			square: "h1",
			want:   []string{"g2", "f3", "e4", "d5", "c6", "b7", "a8"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, id := singlePiece(tt.kind, chess.White, tt.square)
			got := testutil.Destinations(PseudoLegalMoves(pos, id))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestQueenMoves_EmptyBoard(t *testing.T) {
	pos, id := singlePiece(chess.Queen, chess.Black, "d4")
	moves := PseudoLegalMoves(pos, id)
	testutil.AssertLen(t, moves, 27)

	// Rook rays come before bishop rays.
	testutil.AssertEqual(t, moves[0].To.String(), "d5")
	testutil.AssertEqual(t, moves[14].To.String(), "c5")
}

func TestSlidingMoves_Blocked(t *testing.T) {
	pos := MustPositionFromFEN("8/8/3p4/8/3R4/8/3P4/8 w - - 0 1")
	rook, _ := pos.PieceAt(chess.Sq(4, 3))
	enemy, _ := pos.PieceAt(chess.Sq(2, 3))

	moves := PseudoLegalMoves(pos, rook.ID)
	testutil.AssertEqual(t, testutil.Destinations(moves),
		[]string{"d5", "d6", "d3", "c4", "b4", "a4", "e4", "f4", "g4", "h4"})

	capture := testutil.MustFindMove(t, moves, "d4d6")
	testutil.AssertEqual(t, capture.Taken, enemy.ID)
	for _, m := range moves {
		if m.To.String() != "d6" && m.IsCapture() {
			t.Errorf("unexpected capture %v", m)
		}
	}
}

func TestKnightMoves(t *testing.T) {
	t.Run("b1 in initial position", func(t *testing.T) {
		pos := chess.NewInitialPosition()
		knight, _ := pos.PieceAt(chess.Sq(7, 1))
		got := testutil.Destinations(PseudoLegalMoves(pos, knight.ID))
		testutil.AssertEqual(t, got, []string{"a3", "c3"})
	})

	t.Run("corner", func(t *testing.T) {
		pos, id := singlePiece(chess.Knight, chess.White, "a1")
		testutil.AssertEqual(t, testutil.Destinations(PseudoLegalMoves(pos, id)), []string{"c2", "b3"})
	})

	t.Run("centre", func(t *testing.T) {
		pos, id := singlePiece(chess.Knight, chess.Black, "e5")
		got := testutil.Destinations(PseudoLegalMoves(pos, id))
		testutil.AssertEqual(t, got, []string{"c6", "g6", "d7", "f7", "c4", "g4", "d3", "f3"})
	})
}

func TestKingMoves_Adjacent(t *testing.T) {
	pos, id := singlePiece(chess.King, chess.White, "e4")
	got := testutil.Destinations(PseudoLegalMoves(pos, id))
	testutil.AssertEqual(t, got, []string{"d5", "e5", "f5", "d4", "f4", "d3", "e3", "f3"})
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{"white double push", InitialFEN, "e2", []string{"e2e3", "e2e4"}},
		{"black double push", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", "e7", []string{"e7e6", "e7e5"}},
		{"blocked", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", nil},
		{"double blocked", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", "e2", []string{"e2e3"}},
		{"no double push off start row", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", []string{"e3e4"}},
		{"captures", "4k3/8/8/3r1b2/4P3/8/8/4K3 w - - 0 1", "e4", []string{"e4e5", "e4d5", "e4f5"}},
		{"no capture of own piece", "4k3/8/8/3R4/4P3/8/8/4K3 w - - 0 1", "e4", []string{"e4e5"}},
		{
			"promotion with capture",
			"1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			"a7",
			[]string{"a7a8n", "a7a8b", "a7a8r", "a7a8q", "a7b8n", "a7b8b", "a7b8r", "a7b8q"},
		},
		{
			"black promotion",
			"4k3/8/8/8/8/8/7p/4K3 b - - 0 1",
			"h2",
			[]string{"h2h1n", "h2h1b", "h2h1r", "h2h1q"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustPositionFromFEN(tt.fen)
			sq, _ := chess.ParseSquare(tt.square)
			pawn, ok := pos.PieceAt(sq)
			if !ok {
				t.Fatalf("no piece on %s", tt.square)
			}
			got := testutil.Coordinates(PseudoLegalMoves(pos, pawn.ID))
			if tt.want == nil {
				testutil.AssertLen(t, got, 0)
				return
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPawnMoves_PromotionsShareFields(t *testing.T) {
	pos := MustPositionFromFEN("1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	pawn, _ := pos.PieceAt(chess.Sq(1, 0))
	knight, _ := pos.PieceAt(chess.Sq(0, 1))

	var captures []chess.Move
	for _, m := range PseudoLegalMoves(pos, pawn.ID) {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	testutil.AssertLen(t, captures, 4)
	for i, m := range captures {
		testutil.AssertEqual(t, m.Taken, knight.ID)
		testutil.AssertEqual(t, m.Promotion, chess.PromotionKinds[i])
		testutil.AssertEqual(t, m.Kind, chess.Pawn)
	}
}

func TestEnPassant(t *testing.T) {
	pos := playMoves(t, chess.NewInitialPosition(), "h2h3", "d7d5", "h3h4", "d5d4", "e2e4")

	whitePawn, ok := pos.PieceAt(chess.Sq(4, 4))
	if !ok || whitePawn.Kind != chess.Pawn {
		t.Fatalf("expected white pawn on e4, got %v", whitePawn)
	}
	blackPawn, _ := pos.PieceAt(chess.Sq(4, 3))

	moves := LegalMovesFor(pos, blackPawn.ID)
	testutil.AssertEqual(t, testutil.Coordinates(moves), []string{"d4d3", "d4e3"})

	var enPassant []chess.Move
	for _, m := range moves {
		if m.IsCapture() {
			enPassant = append(enPassant, m)
		}
	}
	testutil.AssertLen(t, enPassant, 1, "exactly one en passant capture")
	testutil.AssertEqual(t, enPassant[0].Taken, whitePawn.ID)
	testutil.AssertEqual(t, enPassant[0].To.String(), "e3")

	t.Run("apply removes the passed pawn", func(t *testing.T) {
		next, err := Play(pos, enPassant[0])
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, next.IsEmpty(chess.Sq(4, 4)), "e4 should be empty")
		got, _ := next.PieceAt(chess.Sq(5, 4))
		testutil.AssertEqual(t, got.ID, blackPawn.ID)
		_, captured := next.CapturedPiece(whitePawn.ID)
		testutil.AssertTrue(t, captured, "white pawn should be in the captured table")
		testutil.AssertNoError(t, next.Validate())
	})

	t.Run("only the last move counts", func(t *testing.T) {
		later := playMoves(t, pos, "a7a6", "a2a3")
		got := testutil.Coordinates(LegalMovesFor(later, blackPawn.ID))
		testutil.AssertEqual(t, got, []string{"d4d3"})
	})
}

func TestEnPassant_NotAfterSingleSteps(t *testing.T) {
	// The e-pawn reaches e4 in two single steps.
	pos := playMoves(t, chess.NewInitialPosition(), "e2e3", "d7d5", "h2h3", "d5d4", "e3e4")
	blackPawn, _ := pos.PieceAt(chess.Sq(4, 3))
	got := testutil.Coordinates(LegalMovesFor(pos, blackPawn.ID))
	testutil.AssertEqual(t, got, []string{"d4d3"})
}

func TestCastling(t *testing.T) {
	t.Run("both sides available", func(t *testing.T) {
		pos := MustPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		king, _ := pos.KingOf(chess.White)
		got := testutil.Coordinates(LegalMovesFor(pos, king.ID))
		testutil.AssertEqual(t, got, []string{"e1d2", "e1e2", "e1f2", "e1d1", "e1f1", "e1c1", "e1g1"})
	})

	t.Run("exactly one castling move toward the rook", func(t *testing.T) {
		pos := MustPositionFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
		king, _ := pos.KingOf(chess.White)
		rook, _ := pos.PieceAt(chess.Sq(7, 7))

		var castles []chess.Move
		for _, m := range LegalMovesFor(pos, king.ID) {
			if m.IsCastle() {
				castles = append(castles, m)
			}
		}
		testutil.AssertLen(t, castles, 1)
		testutil.AssertEqual(t, castles[0].To.String(), "g1")
		testutil.AssertEqual(t, *castles[0].Castling, chess.Move{
			PieceID: rook.ID,
			From:    chess.Sq(7, 7),
			To:      chess.Sq(7, 5),
			Kind:    chess.Rook,
		})
	})

	tests := []struct {
		name string
		fen  string
		want []string // castling destinations among the king's legal moves
	}{
		{"queenside blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", []string{"g1"}},
		{"king has moved", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", nil},
		{"passing square attacked", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"c1"}},
		{"destination attacked", "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"c1"}},
		{"king in check", "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1", nil},
		{"rook square b1 attacked is fine", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"c1", "g1"}},
		{"enemy rook in corner", "4k3/8/8/8/8/8/8/rN2K2R w K - 0 1", []string{"g1"}},
		{"black castles", "r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", []string{"c8", "g8"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustPositionFromFEN(tt.fen)
			king, _ := pos.KingOf(pos.Turn())
			var got []string
			for _, m := range LegalMovesFor(pos, king.ID) {
				if m.IsCastle() {
					got = append(got, m.To.String())
				}
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestCastling_DestinationFilteredOnlyByLegality(t *testing.T) {
	pos := MustPositionFromFEN("4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	king, _ := pos.KingOf(chess.White)
	_, pseudo := testutil.FindMove(PseudoLegalMoves(pos, king.ID), "e1g1")
	testutil.AssertTrue(t, pseudo, "kingside castle should be pseudo-legal")
	_, legal := testutil.FindMove(LegalMovesFor(pos, king.ID), "e1g1")
	testutil.AssertFalse(t, legal, "kingside castle into check should be filtered")
}

func TestPseudoLegalMoves_UnknownPiece(t *testing.T) {
	testutil.AssertLen(t, PseudoLegalMoves(chess.NewInitialPosition(), 999), 0)
}
