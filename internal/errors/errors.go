// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the rejection reasons a move request can report and the input
// errors of the surrounding tools, while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalPattern indicates a destination the piece's movement rules
	// cannot reach, including an attempt to move from an empty square.
	ErrIllegalPattern = errors.New("illegal move pattern")

	// ErrLeavesKingInCheck indicates a pattern-legal move that would leave
	// the mover's own king attacked.
	ErrLeavesKingInCheck = errors.New("move would leave own king in check")

	// ErrOutOfBounds indicates a square outside the 8x8 board. Direct grid
	// access with such a square is a caller bug.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name that is not a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidColour indicates an unrecognised side name.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidNotation indicates move text that could not be decoded.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError reports a rejected move request. It carries the squares and the
// moving piece so a caller can render a message, and unwraps to one of the
// sentinel errors above.
type MoveError struct {
	Err   error  // The underlying sentinel
	From  string // Start square name, e.g. "e2"
	To    string // Destination square name
	Piece string // Description of the moving piece, empty if none
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	context := strings.Join(parts, ": ")
	if e.Err == nil {
		if context == "" {
			return "move rejected"
		}
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
