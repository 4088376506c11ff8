// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	startFEN  = flag.String("fen", "", "Position to count from (default: standard starting position)")
	depth     = flag.Int("depth", 3, "Number of plies to enumerate")
	divide    = flag.Bool("divide", false, "Print the node count below each root move")
	reference = flag.Bool("reference", false, "Cross-check counts against the dragontoothmg generator")
	second    = flag.Bool("second", false, "Confirm the total with the notnil/chess generator (slow)")
	workers   = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	outputFile = flag.String("o", "", "Output file (default: stdout)")
	quiet      = flag.Bool("s", false, "Silent mode (no timing line)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.StartFEN = *startFEN
	cfg.Workers = *workers
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Reference = *reference
	cfg.Perft.SecondOpinion = *second
	if *quiet {
		cfg.Verbosity = config.Silent
	}
	return cfg.Validate()
}
