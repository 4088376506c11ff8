package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// command is a word the player understands besides move text.
type command struct {
	name string
	help string
	run  func(p *player) (quit bool)
}

var commands []command

func init() {
	commands = []command{
		{"board", "Show the board", (*player).showBoard},
		{"moves", "List the legal moves", (*player).showMoves},
		{"history", "Show the moves played so far", (*player).showHistory},
		{"fen", "Show the position as FEN", (*player).showFEN},
		{"stats", "Summarize the game so far", (*player).showStats},
		{"help", "List the commands", (*player).showHelp},
		{"quit", "Stop and write the game", func(*player) bool { return true }},
	}
}

// player reads commands and moves for one session and answers on out.
type player struct {
	s   *game.Session
	cfg *config.Config
	out io.Writer
}

func newPlayer(s *game.Session, cfg *config.Config, out io.Writer) *player {
	return &player{s: s, cfg: cfg, out: out}
}

// playLine plays whitespace-separated moves, stopping at the first one
// that cannot be played.
func (p *player) playLine(line string) error {
	for _, text := range strings.Fields(line) {
		if _, err := p.s.PlayText(text); err != nil {
			return err
		}
	}
	return nil
}

// run reads lines until input ends, the player quits or the game is over.
func (p *player) run(in io.Reader) error {
	if p.s.Result().IsTerminal() {
		p.showBoard()
		return nil
	}

	p.showBoard()
	scanner := bufio.NewScanner(in)
	fmt.Fprint(p.out, "> ")
	for scanner.Scan() {
		if p.handle(strings.TrimSpace(scanner.Text())) {
			return nil
		}
		fmt.Fprint(p.out, "> ")
	}
	return scanner.Err()
}

// handle runs a command or plays a move. It reports whether to stop.
func (p *player) handle(line string) bool {
	if line == "" {
		return false
	}
	for _, c := range commands {
		if strings.EqualFold(line, c.name) {
			return c.run(p)
		}
	}

	if _, err := p.s.PlayText(line); err != nil {
		p.reportMoveError(line, err)
		return false
	}
	p.showBoard()
	return p.s.Result().IsTerminal()
}

func (p *player) reportMoveError(text string, err error) {
	var notationErr *errors.NotationError
	switch {
	case stderrors.As(err, &notationErr) && len(notationErr.Candidates) > 0:
		fmt.Fprintf(p.out, "%q is ambiguous: %s\n", text, strings.Join(notationErr.Candidates, ", "))
	case stderrors.Is(err, errors.ErrUnresolvableNotation):
		fmt.Fprintf(p.out, "%q is not a legal move\n", text)
	default:
		fmt.Fprintf(p.out, "Cannot play %q: %v\n", text, err)
	}
}

func (p *player) showBoard() bool {
	if err := output.WriteBoard(p.out, p.s.Position(), p.cfg.Display); err != nil {
		p.cfg.Logf(config.Results, "writing board: %v\n", err)
	}
	return false
}

func (p *player) showMoves() bool {
	pos := p.s.Position()
	var names []string
	for _, m := range p.s.LegalMoves() {
		if p.cfg.Display.LongAlgebraic {
			names = append(names, m.LongAlgebraic())
		} else {
			names = append(names, notation.Format(pos, m))
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(p.out, "No legal moves")
		return false
	}
	fmt.Fprintln(p.out, strings.Join(names, " "))
	return false
}

func (p *player) showHistory() bool {
	sans, err := p.s.Moves()
	if err != nil {
		fmt.Fprintf(p.out, "Cannot list moves: %v\n", err)
		return false
	}
	fmt.Fprintln(p.out, notation.MoveText(sans, p.s.Start().Turn() == chess.Black))
	return false
}

func (p *player) showFEN() bool {
	fmt.Fprintln(p.out, engine.ToFEN(p.s.Position()))
	return false
}

func (p *player) showStats() bool {
	a, err := p.s.Analyze()
	if err != nil {
		fmt.Fprintf(p.out, "Cannot analyze game: %v\n", err)
		return false
	}
	fmt.Fprintf(p.out, "Plies: %d, captures: %d, checks: %d, castles: %d\n",
		a.PlyCount, a.Captures, a.Checks, a.Castles)
	return false
}

func (p *player) showHelp() bool {
	for _, c := range commands {
		fmt.Fprintf(p.out, "%-8s %s\n", c.name, c.help)
	}
	return false
}
