package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithStartFEN sets the starting position of new games.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithShowCaptured controls whether captured pieces are listed.
func (b *ConfigBuilder) WithShowCaptured(show bool) *ConfigBuilder {
	b.cfg.Display.ShowCaptured = show
	return b
}

// WithLongAlgebraic switches move lists to long algebraic notation.
func (b *ConfigBuilder) WithLongAlgebraic(enabled bool) *ConfigBuilder {
	b.cfg.Display.LongAlgebraic = enabled
	return b
}

// WithFlippedBoard draws the board from Black's side.
func (b *ConfigBuilder) WithFlippedBoard(flip bool) *ConfigBuilder {
	b.cfg.Display.FlipBoard = flip
	return b
}

// WithPerftDepth sets the perft depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables per-root-move perft output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithReference enables cross-checking perft counts.
func (b *ConfigBuilder) WithReference(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Reference = enabled
	return b
}

// WithSecondOpinion confirms perft totals with a second generator.
func (b *ConfigBuilder) WithSecondOpinion(enabled bool) *ConfigBuilder {
	b.cfg.Perft.SecondOpinion = enabled
	return b
}
