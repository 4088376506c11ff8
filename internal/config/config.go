// Package config provides configuration for the rules engine tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels for log output.
const (
	Silent  = 0 // nothing
	Results = 1 // game results and summaries
	Moves   = 2 // running commentary of every move
)

// MaxWorkers bounds the worker count accepted by Validate.
const MaxWorkers = 256

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=every move

	// StartFEN is the position new games start from; empty means the
	// standard starting position.
	StartFEN string

	// Workers is the number of goroutines used for parallel work.
	// Zero means one per CPU.
	Workers int

	// Embedded sub-configs
	Display *DisplayConfig
	Perft   *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Results,
		Display:    NewDisplayConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a log line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Moves {
		return fmt.Errorf("verbosity %d out of range [%d, %d]: %w",
			c.Verbosity, Silent, Moves, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers %d out of range [0, %d]: %w",
			c.Workers, MaxWorkers, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	if c.Perft != nil {
		if err := c.Perft.Validate(); err != nil {
			return err
		}
	}
	return nil
}
