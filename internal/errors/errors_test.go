package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrPromotionRequired", ErrPromotionRequired, ErrPromotionRequired},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrInvariantViolation", ErrInvariantViolation, ErrInvariantViolation},
		{"ErrInvalidSnapshot", ErrInvalidSnapshot, ErrInvalidSnapshot},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrGameExists", ErrGameExists, ErrGameExists},
		{"ErrTooManyGames", ErrTooManyGames, ErrTooManyGames},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				From:   "(0,4)",
				To:     "(2,4)",
				Reason: "destination not in legal moves",
			},
			contains: []string{"(0,4)", "(2,4)", "destination not in legal moves", "illegal move"},
		},
		{
			name:     "bare error",
			err:      &MoveError{Err: ErrPromotionRequired},
			contains: []string{"promotion piece required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works through further wrapping
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, From: "(6,0)", To: "(3,0)"}
	wrapped := fmt.Errorf("apply failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.To != "(3,0)" {
		t.Errorf("extracted.To = %q, want %q", extracted.To, "(3,0)")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestEntryError(t *testing.T) {
	err := &EntryError{Err: ErrOutOfBounds, Index: 3, Square: 70}

	if !errors.Is(err, ErrOutOfBounds) {
		t.Error("errors.Is(entryErr, ErrOutOfBounds) = false, want true")
	}
	msg := err.Error()
	if !strings.Contains(msg, "entry 3") || !strings.Contains(msg, "square 70") {
		t.Errorf("EntryError.Error() = %q, want entry and square context", msg)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrGameNotFound, "game %s", "abc")
	if !errors.Is(err, ErrGameNotFound) {
		t.Error("errors.Is(Wrapf(...), ErrGameNotFound) = false, want true")
	}
	if !strings.HasPrefix(err.Error(), "game abc: ") {
		t.Errorf("Wrapf() = %q, want prefix %q", err.Error(), "game abc: ")
	}
}

func TestInvariantf(t *testing.T) {
	err := Invariantf("no %s king on board", "white")

	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatal("errors.Is(Invariantf(...), ErrInvariantViolation) = false, want true")
	}
	if !strings.Contains(err.Error(), "no white king on board") {
		t.Errorf("Invariantf() = %q, want message text", err.Error())
	}
	// %+v prints the captured stack.
	if verbose := fmt.Sprintf("%+v", err); !strings.Contains(verbose, "TestInvariantf") {
		t.Errorf("Invariantf() %%+v output lacks stack frame:\n%s", verbose)
	}
}
