// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	// Game setup
	startFEN = flag.String("fen", "", "Start from this FEN position (default: standard starting position)")
	moveList = flag.String("moves", "", "Moves to play before reading input (e.g., 'e4 e5 Nf3')")
	batch    = flag.Bool("batch", false, "Play only the -moves line; don't read standard input")

	// Output options
	outputFile   = flag.String("o", "", "Write the finished game to this file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Write the finished game in JSON format")
	outputFormat = flag.String("W", "san", "Move format: san, lalg")
	flipBoard    = flag.Bool("flip", false, "Draw the board from Black's side")
	noCaptured   = flag.Bool("nocaptured", false, "Don't list captured pieces")
	noCoords     = flag.Bool("nocoords", false, "Don't print rank and file labels")
	noMoves      = flag.Bool("nomoves", false, "Don't print the move list with the finished game")

	// Logging
	logFile   = flag.String("l", "", "Write the game log to this file")
	appendLog = flag.String("L", "", "Append the game log to this file")
	quiet     = flag.Bool("s", false, "Silent mode (no result log)")
	verbose   = flag.Bool("v", false, "Log every move")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.StartFEN = *startFEN

	if err := applyDisplayFlags(cfg.Display); err != nil {
		return err
	}

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Moves
	}
	return cfg.Validate()
}

// applyDisplayFlags configures board and move rendering.
func applyDisplayFlags(d *config.DisplayConfig) error {
	long, err := parseMoveFormat(*outputFormat)
	if err != nil {
		return err
	}
	d.LongAlgebraic = long
	d.FlipBoard = *flipBoard
	d.ShowCaptured = !*noCaptured
	d.ShowCoordinates = !*noCoords
	d.ShowMoves = !*noMoves
	return nil
}

// parseMoveFormat reports whether a -W value selects long algebraic moves.
func parseMoveFormat(format string) (bool, error) {
	switch format {
	case "", "san":
		return false, nil
	case "lalg", "uci":
		return true, nil
	}
	return false, fmt.Errorf("move format %q: %w", format, errors.ErrInvalidConfig)
}
