// Package game tracks a single game being played: the position it started
// from, the position it has reached and the moves in between.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// Session is one game in progress. A Session is not safe for concurrent
// use; Manager serializes access to the sessions it holds.
type Session struct {
	id    uuid.UUID
	cfg   *config.Config
	start *chess.Position
	pos   *chess.Position
}

// NewSession starts a game from cfg.StartFEN, or from the standard
// starting position when that is empty.
func NewSession(cfg *config.Config) (*Session, error) {
	start := chess.NewInitialPosition()
	if cfg.StartFEN != "" {
		pos, err := engine.NewPositionFromFEN(cfg.StartFEN)
		if err != nil {
			return nil, errors.Wrap(err, "starting session")
		}
		start = pos
	}
	start.SetResult(engine.Evaluate(start))

	s := &Session{id: uuid.New(), cfg: cfg, start: start, pos: start}
	cfg.Logf(config.Moves, "game %s: started from %s\n", s.id, engine.ToFEN(start))
	return s, nil
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Position returns the current position. Positions are never modified
// in place, so the caller may keep it.
func (s *Session) Position() *chess.Position {
	return s.pos
}

// Start returns the position the game started from.
func (s *Session) Start() *chess.Position {
	return s.start
}

// Result returns the game's current result.
func (s *Session) Result() chess.Result {
	return s.pos.Result()
}

// LegalMoves returns the moves available to the side to move, or none
// once the game is over.
func (s *Session) LegalMoves() []chess.Move {
	if s.pos.Result().IsTerminal() {
		return nil
	}
	return engine.LegalMoves(s.pos)
}

// Play plays a move. It must be one of LegalMoves; the executor itself
// only checks that the moving piece stands on the start square.
func (s *Session) Play(m chess.Move) error {
	san := notation.Format(s.pos, m)
	next, err := engine.Play(s.pos, m)
	if err != nil {
		return err
	}
	s.pos = next

	s.cfg.Logf(config.Moves, "game %s: ply %d, %s plays %s\n", s.id, next.NumMoves(), next.Turn().Opposite(), san)
	if r := next.Result(); r.IsTerminal() {
		s.cfg.Logf(config.Results, "game %s: %s (%s)\n", s.id, r, r.Score())
	}
	return nil
}

// PlayText resolves move text in algebraic or coordinate notation against
// the legal moves and plays the match. It returns the move played.
func (s *Session) PlayText(text string) (chess.Move, error) {
	if s.pos.Result().IsTerminal() {
		return chess.Move{}, errors.Wrapf(errors.ErrGameOver, "playing %q", text)
	}
	m, err := notation.Resolve(s.pos, text)
	if err != nil {
		return chess.Move{}, err
	}
	if err := s.Play(m); err != nil {
		return chess.Move{}, err
	}
	return m, nil
}

// Moves returns the game's moves in SAN.
func (s *Session) Moves() ([]string, error) {
	return notation.FormatLine(s.start, s.played())
}

// Record returns the game in the form the output writers take.
func (s *Session) Record() output.Record {
	return output.Record{ID: s.id.String(), Start: s.start, Final: s.pos}
}

// Analyze replays the game and reports its rule-relevant features.
func (s *Session) Analyze() (*processing.GameAnalysis, error) {
	return processing.AnalyzeGame(s.start, s.played())
}

// Audit replays the game's moves from the start position, checking that
// each was legal where it was played and that every position key matches
// the recorded one.
func (s *Session) Audit() error {
	if v := processing.ValidateGame(s.start, s.played()); !v.Valid {
		return errors.Wrapf(errors.ErrInvalidMove, "game %s: %s", s.id, v.ErrorMsg)
	}
	replayed, err := engine.ReplayFrom(s.start, s.played())
	if err != nil {
		return errors.Wrapf(err, "auditing game %s", s.id)
	}

	want, got := s.pos.Keys(), replayed.Keys()
	if len(want) != len(got) {
		return errors.Wrapf(errors.ErrHistoryMismatch, "game %s: %d keys recorded, %d replayed",
			s.id, len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			return errors.Wrapf(errors.ErrHistoryMismatch, "game %s: position %d differs", s.id, i)
		}
	}
	if replayed.Result() != s.pos.Result() {
		return errors.Wrapf(errors.ErrHistoryMismatch, "game %s: result %s, replayed %s",
			s.id, s.pos.Result(), replayed.Result())
	}
	return nil
}

// played returns the moves made since the start position.
func (s *Session) played() []chess.Move {
	return s.pos.History()[s.start.NumMoves():]
}
