// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move whose start square holds no piece.
	ErrInvalidMove = errors.New("invalid move")

	// ErrGameOver indicates a move was offered after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrAmbiguousNotation indicates move text matching more than one legal move.
	ErrAmbiguousNotation = errors.New("ambiguous notation")

	// ErrUnresolvableNotation indicates move text matching no legal move.
	ErrUnresolvableNotation = errors.New("unresolvable notation")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates a game id with no session behind it.
	ErrGameNotFound = errors.New("game not found")

	// ErrHistoryMismatch indicates replaying the history did not reach the recorded position.
	ErrHistoryMismatch = errors.New("history replay mismatch")
)

// MoveError wraps errors with move context: the ply at which the move
// was offered and its coordinates.
type MoveError struct {
	Err    error  // The underlying error
	PlyNum int    // 1-based ply number (0 if not applicable)
	From   string // Start square in algebraic form (if known)
	To     string // Destination square in algebraic form (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// NotationError represents a failure to map move text onto a legal move.
type NotationError struct {
	Err        error    // The underlying error
	Text       string   // The move text as given
	Candidates []string // Matching moves, when ambiguous
}

// Error returns a formatted error message with the move text and candidates.
func (e *NotationError) Error() string {
	msg := fmt.Sprintf("move %q", e.Text)
	if len(e.Candidates) > 0 {
		msg += fmt.Sprintf(" (candidates: %s)", strings.Join(e.Candidates, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
