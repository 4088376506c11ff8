package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// playMoves plays coordinate moves ("e2e4", "e7e8q") through Play.
func playMoves(t *testing.T, pos *chess.Position, coords ...string) *chess.Position {
	t.Helper()
	for _, coord := range coords {
		m := testutil.MustFindMove(t, LegalMoves(pos), coord)
		next, err := Play(pos, m)
		if err != nil {
			t.Fatalf("Play(%s) error = %v", coord, err)
		}
		pos = next
	}
	return pos
}

func TestApply_SimpleMove(t *testing.T) {
	pos := chess.NewInitialPosition()
	m := testutil.MustFindMove(t, LegalMoves(pos), "e2e4")

	next, err := Apply(pos, m)
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, next.IsEmpty(chess.Sq(6, 4)), "e2 should be empty")
	pawn, ok := next.PieceAt(chess.Sq(4, 4))
	testutil.AssertTrue(t, ok, "e4 should be occupied")
	testutil.AssertEqual(t, pawn.ID, m.PieceID)
	testutil.AssertEqual(t, next.NumMoves(), 1)
	testutil.AssertEqual(t, next.Turn(), chess.White, "Apply does not flip the turn")

	last, _ := next.LastMove()
	testutil.AssertEqual(t, last.Kind, chess.Pawn)
	testutil.AssertTrue(t, last.IsDoublePawnPush())
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	pos := chess.NewInitialPosition()
	before := pos.Key()
	m := testutil.MustFindMove(t, LegalMoves(pos), "g1f3")

	_, err := Apply(pos, m)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, pos.Key(), before)
	testutil.AssertEqual(t, pos.NumMoves(), 0)
	testutil.AssertTrue(t, pos.IsEmpty(chess.Sq(5, 5)), "f3 should still be empty")
}

func TestApply_Capture(t *testing.T) {
	pos := MustPositionFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	pawn, _ := pos.PieceAt(chess.Sq(4, 4))
	victim, _ := pos.PieceAt(chess.Sq(3, 3))
	m := testutil.MustFindMove(t, LegalMovesFor(pos, pawn.ID), "e4d5")

	next, err := Apply(pos, m)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, next.NumPieces(), 3)
	got, _ := next.PieceAt(chess.Sq(3, 3))
	testutil.AssertEqual(t, got.ID, pawn.ID)
	captured, ok := next.CapturedPiece(victim.ID)
	testutil.AssertTrue(t, ok, "victim should be captured")
	testutil.AssertEqual(t, captured.Kind, chess.Pawn)
	testutil.AssertNoError(t, next.Validate())
}

func TestApply_Promotion(t *testing.T) {
	pos := MustPositionFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	pawn, _ := pos.PieceAt(chess.Sq(1, 0))
	m := testutil.MustFindMove(t, LegalMovesFor(pos, pawn.ID), "a7a8q")

	next, err := Apply(pos, m)
	testutil.AssertNoError(t, err)

	queen, _ := next.Piece(pawn.ID)
	testutil.AssertEqual(t, queen.Kind, chess.Queen)
	testutil.AssertEqual(t, queen.Square(), chess.Sq(0, 0))

	// The history keeps the kind the piece had when it moved.
	last, _ := next.LastMove()
	testutil.AssertEqual(t, last.Kind, chess.Pawn)
	testutil.AssertEqual(t, last.Promotion, chess.Queen)
}

func TestApply_Castling(t *testing.T) {
	tests := []struct {
		name    string
		coord   string
		kingTo  chess.Square
		rookAt  chess.Square
		rookWas chess.Square
	}{
		{"kingside", "e1g1", chess.Sq(7, 6), chess.Sq(7, 5), chess.Sq(7, 7)},
		{"queenside", "e1c1", chess.Sq(7, 2), chess.Sq(7, 3), chess.Sq(7, 0)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			rook, _ := pos.PieceAt(tt.rookWas)
			m := testutil.MustFindMove(t, LegalMoves(pos), tt.coord)

			next, err := Apply(pos, m)
			testutil.AssertNoError(t, err)

			king, _ := next.KingOf(chess.White)
			testutil.AssertEqual(t, king.Square(), tt.kingTo)
			testutil.AssertTrue(t, king.HasMoved, "king should be marked as moved")

			moved, _ := next.Piece(rook.ID)
			testutil.AssertEqual(t, moved.Square(), tt.rookAt)
			testutil.AssertTrue(t, next.IsEmpty(tt.rookWas), "rook corner should be empty")

			testutil.AssertEqual(t, next.NumMoves(), 1, "the rook rides on the king's history entry")
			last, _ := next.LastMove()
			testutil.AssertTrue(t, last.IsCastle())
			testutil.AssertNoError(t, next.Validate())
		})
	}
}

func TestApply_KingMoveClearsCastling(t *testing.T) {
	pos := MustPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	pos = playMoves(t, pos, "e1f1", "e8f8", "f1e1", "f8e8")

	king, _ := pos.KingOf(chess.White)
	for _, m := range LegalMovesFor(pos, king.ID) {
		if m.IsCastle() {
			t.Errorf("castling offered after the king moved: %v", m)
		}
	}
}

func TestApply_InvalidMove(t *testing.T) {
	pos := chess.NewInitialPosition()
	knight, _ := pos.PieceAt(chess.Sq(7, 1))

	tests := []struct {
		name string
		move chess.Move
	}{
		{"empty start square", chess.Move{PieceID: knight.ID, From: chess.Sq(4, 4), To: chess.Sq(3, 4)}},
		{"unknown piece", chess.Move{PieceID: 999, From: chess.Sq(7, 1), To: chess.Sq(5, 2)}},
		{"wrong piece on start square", chess.Move{PieceID: knight.ID, From: chess.Sq(6, 4), To: chess.Sq(4, 4)}},
		{"destination off board", chess.Move{PieceID: knight.ID, From: chess.Sq(7, 1), To: chess.Sq(8, 2)}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(pos, tt.move)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)

			var moveErr *errors.MoveError
			testutil.AssertTrue(t, stderrors.As(err, &moveErr), "expected *MoveError")
			testutil.AssertEqual(t, moveErr.PlyNum, 1)
		})
	}
}

func TestAdvance_FlipsTurn(t *testing.T) {
	pos := chess.NewInitialPosition()
	m := testutil.MustFindMove(t, LegalMoves(pos), "d2d4")

	next, err := Advance(pos, m)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.Turn(), chess.Black)
	testutil.AssertLen(t, next.Keys(), 1, "Advance does not record keys")
}

func TestPlay_RecordsKeyAndResult(t *testing.T) {
	pos := playMoves(t, chess.NewInitialPosition(), "e2e4", "e7e5")

	testutil.AssertEqual(t, pos.Turn(), chess.White)
	testutil.AssertEqual(t, pos.Result(), chess.Ongoing)
	testutil.AssertLen(t, pos.Keys(), 3)
	testutil.AssertEqual(t, pos.Keys()[2], pos.Key())
}

func TestPlay_AfterGameOver(t *testing.T) {
	pos := playMoves(t, chess.NewInitialPosition(), "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertEqual(t, pos.Result(), chess.BlackWin)

	king, _ := pos.KingOf(chess.White)
	m := chess.Move{PieceID: king.ID, From: king.Square(), To: chess.Sq(6, 5)}
	_, err := Play(pos, m)
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestReplay(t *testing.T) {
	coords := []string{"e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4", "f3d4", "g8f6", "b1c3", "a7a6"}
	played := playMoves(t, chess.NewInitialPosition(), coords...)

	replayed, err := Replay(played.History())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, replayed.Key(), played.Key())
	testutil.AssertEqual(t, replayed.Keys(), played.Keys())
	testutil.AssertEqual(t, replayed.Turn(), played.Turn())
	testutil.AssertEqual(t, replayed.History(), played.History())
}

func TestReplay_BadMove(t *testing.T) {
	played := playMoves(t, chess.NewInitialPosition(), "e2e4", "e7e5")
	history := played.History()
	history[1].From = chess.Sq(3, 0)

	_, err := Replay(history)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
	testutil.AssertContains(t, err.Error(), "replaying move 2")
}

func TestPlay_PreservesInvariants(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			pos := MustPositionFromFEN(fen)
			for _, m := range LegalMoves(pos) {
				next, err := Play(pos, m)
				if err != nil {
					t.Fatalf("Play(%v) error = %v", m, err)
				}
				if InCheck(next, pos.Turn()) {
					t.Errorf("%v leaves the mover in check", m)
				}
				if err := next.Validate(); err != nil {
					t.Errorf("%v broke the position: %v", m, err)
				}
				testutil.AssertEqual(t, next.NumPieces()+len(next.Captured()), pos.NumPieces()+len(pos.Captured()))
			}
		})
	}
}
