// perft counts the leaf positions of the legal move tree to a fixed
// depth, optionally per root move and cross-checked against an
// independent move generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
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
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		defer file.Close()
		cfg.SetOutput(file)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run counts from the configured position and writes the report.
func run(ctx context.Context, cfg *config.Config) error {
	pos := chess.NewInitialPosition()
	if cfg.StartFEN != "" {
		p, err := engine.NewPositionFromFEN(cfg.StartFEN)
		if err != nil {
			return err
		}
		pos = p
	}

	n := cfg.Workers
	if n == 0 {
		n = runtime.NumCPU()
	}

	start := time.Now()
	entries, err := perft.Divide(ctx, pos, cfg.Perft.Depth, n)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	total := perft.Total(entries)

	w := cfg.OutputFile
	if cfg.Perft.Divide {
		for _, e := range entries {
			fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Nodes: %d\n", total)
	cfg.Logf(config.Results, "depth %d: %d nodes in %s with %d workers (%.0f nodes/s)\n",
		cfg.Perft.Depth, total, elapsed.Round(time.Millisecond), n, float64(total)/elapsed.Seconds())

	if cfg.Perft.Reference {
		if err := crossCheck(ctx, cfg, pos, n); err != nil {
			return err
		}
	}
	if cfg.Perft.SecondOpinion {
		return secondOpinion(cfg, pos, total)
	}
	return nil
}

// secondOpinion recounts the total with the notnil/chess generator.
func secondOpinion(cfg *config.Config, pos *chess.Position, total uint64) error {
	want, err := perft.SecondReference(engine.ToFEN(pos), cfg.Perft.Depth)
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "Second opinion: %d\n", want)
	if want != total {
		return fmt.Errorf("second opinion counts %d nodes, engine counts %d", want, total)
	}
	return nil
}

// crossCheck compares every root move's count with the reference generator.
func crossCheck(ctx context.Context, cfg *config.Config, pos *chess.Position, n int) error {
	mismatches, err := perft.CrossCheck(ctx, pos, cfg.Perft.Depth, n)
	if err != nil {
		return err
	}
	w := cfg.OutputFile
	if len(mismatches) == 0 {
		fmt.Fprintln(w, "Reference: agree")
		return nil
	}
	for _, m := range mismatches {
		fmt.Fprintf(w, "Reference: %s: %d, reference %d\n", m.Move, m.Nodes, m.Reference)
	}
	return fmt.Errorf("%d root moves differ from the reference generator", len(mismatches))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the positions reachable in a fixed number of plies.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
