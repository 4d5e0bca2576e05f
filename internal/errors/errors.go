// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrIllegalMove indicates a move absent from the mover's legal-move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPromotionRequired indicates a promoting pawn move submitted without a piece choice.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrInvalidPromotion indicates a promotion choice other than queen, rook, bishop or knight.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvariantViolation indicates a broken board invariant. It is a programming
	// error and is raised as a panic, never returned for ordinary flow.
	ErrInvariantViolation = errors.New("board invariant violated")

	// ErrInvalidSnapshot indicates a persisted board that cannot be reconstructed.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrGameOver indicates a move submitted after checkmate.
	ErrGameOver = errors.New("game is over")

	// ErrGameNotFound indicates an unknown game ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameExists indicates a game ID that is already in use.
	ErrGameExists = errors.New("game already exists")

	// ErrTooManyGames indicates the live-game limit has been reached.
	ErrTooManyGames = errors.New("too many games")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with the squares involved and the reason
// it was refused. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Origin square, e.g. "(1,4)"
	To     string // Destination square
	Reason string // Short human readable reason (if any)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s -> %s", e.From, e.To))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// EntryError reports a problem with a single persisted piece tuple.
type EntryError struct {
	Err    error // The underlying error
	Index  int   // Position of the tuple in the persisted list
	Square int   // Square index carried by the tuple
}

// Error returns a formatted error message with the tuple position.
func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (square %d): %v", e.Index, e.Square, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
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

// Invariantf builds an ErrInvariantViolation carrying a stack trace.
// Callers panic with the result; the stack is printed with %+v.
func Invariantf(format string, args ...interface{}) error {
	return pkgerrors.WithStack(Wrapf(ErrInvariantViolation, format, args...))
}
