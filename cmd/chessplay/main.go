// chessplay plays a game of chess from the command line: moves are read
// one per line in algebraic or coordinate notation and the finished game
// is written as text or JSON.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	session, err := game.NewSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := newPlayer(session, cfg, os.Stdout)
	if err := p.playLine(*moveList); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !*batch {
		if err := p.run(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}
	}

	if err := writeGame(newGameWriter(cfg), session.Record()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing game: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// newGameWriter picks the writer for the finished game.
func newGameWriter(cfg *config.Config) output.GameWriter {
	if *jsonOutput {
		return output.NewJSONWriterSingle(cfg.OutputFile)
	}
	return output.NewTextWriter(cfg.OutputFile, cfg)
}

// writeGame writes one game and closes the writer.
func writeGame(w output.GameWriter, rec output.Record) error {
	if err := w.WriteGame(rec); err != nil {
		return err
	}
	return w.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a game of chess, one move per line of input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.help)
	}
	fmt.Fprintf(os.Stderr, "\nAnything else is read as a move: e4, Nxf3, O-O, e7e8q, ...\n")
}
