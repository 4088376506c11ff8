package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the depth accepted by PerftConfig.Validate.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate
	Depth int

	// Divide reports the node count below each root move
	Divide bool

	// Reference cross-checks counts against an independent generator
	Reference bool

	// SecondOpinion confirms the total with a second, slower generator
	SecondOpinion bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Depth: 3}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range [1, %d]: %w",
			p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}
