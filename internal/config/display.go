package config

// DisplayConfig holds settings for rendering positions and move lists.
type DisplayConfig struct {
	// ShowCoordinates prints rank and file labels around the board
	ShowCoordinates bool

	// ShowCaptured lists captured pieces under the board
	ShowCaptured bool

	// ShowMoves prints the move list under the board
	ShowMoves bool

	// LongAlgebraic prints moves as e2e4 instead of SAN
	LongAlgebraic bool

	// FlipBoard draws Black's side at the bottom
	FlipBoard bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowCoordinates: true,
		ShowCaptured:    true,
		ShowMoves:       true,
	}
}
