package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestHashConsistency(t *testing.T) {
	hash1 := Hash(chess.NewInitialBoard(), chess.White)
	hash2 := Hash(chess.NewInitialBoard(), chess.White)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
	if hash1 == 0 {
		t.Error("Hash() = 0 for the initial board")
	}
}

func TestHashDistinguishesPositions(t *testing.T) {
	base := func() *chess.Board {
		return testutil.BoardWith(t,
			testutil.W(chess.King, 0, 4), testutil.W(chess.Rook, 0, 7), testutil.W(chess.Pawn, 3, 4),
			testutil.B(chess.King, 7, 4), testutil.B(chess.Pawn, 4, 3),
		)
	}
	want := Hash(base(), chess.White)

	tests := []struct {
		name   string
		toMove chess.Colour
		change func(b *chess.Board)
	}{
		{"side to move", chess.Black, func(b *chess.Board) {}},
		{"pawn advanced", chess.White, func(b *chess.Board) {
			b.Relocate(testutil.At(3, 4), testutil.At(4, 4))
		}},
		{"rook has moved", chess.White, func(b *chess.Board) {
			b.PieceAt(testutil.At(0, 7)).HasMoved = true
		}},
		{"king has moved", chess.White, func(b *chess.Board) {
			b.PieceAt(testutil.At(0, 4)).HasMoved = true
		}},
		{"en passant", chess.White, func(b *chess.Board) {
			b.PieceAt(testutil.At(4, 3)).EnPassantVulnerable = true
		}},
		{"piece kind", chess.White, func(b *chess.Board) {
			b.Remove(testutil.At(0, 7))
			b.Place(chess.NewPiece(chess.Queen, chess.White, testutil.At(0, 7)))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base()
			tt.change(b)
			if got := Hash(b, tt.toMove); got == want {
				t.Errorf("Hash() = %x, same as the unchanged position", got)
			}
		})
	}
}

func TestHashIgnoresStaleEnPassant(t *testing.T) {
	// White's pawn double-stepped, Black replied; the flag survives until
	// White moves again but can no longer be used.
	b := testutil.BoardWith(t,
		testutil.W(chess.King, 0, 4), testutil.W(chess.Pawn, 3, 4),
		testutil.B(chess.King, 7, 4),
	)
	want := Hash(b, chess.White)

	b.PieceAt(testutil.At(3, 4)).EnPassantVulnerable = true
	testutil.AssertEqual(t, Hash(b, chess.White), want)
	if Hash(b, chess.Black) == Hash(testutil.BoardWith(t,
		testutil.W(chess.King, 0, 4), testutil.W(chess.Pawn, 3, 4),
		testutil.B(chess.King, 7, 4),
	), chess.Black) {
		t.Error("Hash() ignores a live en-passant flag")
	}
}

func TestHashIgnoresMovedFlagOnOtherKinds(t *testing.T) {
	b := testutil.BoardWith(t, testutil.W(chess.King, 0, 4), testutil.B(chess.King, 7, 4), testutil.W(chess.Knight, 0, 1))
	want := Hash(b, chess.White)

	b.PieceAt(testutil.At(0, 1)).HasMoved = true
	testutil.AssertEqual(t, Hash(b, chess.White), want)
}

func TestHashIgnoresMoveLists(t *testing.T) {
	b := chess.NewInitialBoard()
	want := Hash(b, chess.White)

	b.PieceAt(testutil.At(0, 1)).Moves = testutil.Moves([2]int{2, 0}, [2]int{2, 2})
	testutil.AssertEqual(t, Hash(b, chess.White), want)
}

func TestHistory(t *testing.T) {
	h := NewHistory()

	testutil.AssertEqual(t, h.Record(1), 1)
	testutil.AssertEqual(t, h.Record(2), 1)
	testutil.AssertEqual(t, h.Record(1), 2)
	testutil.AssertEqual(t, h.Count(1), 2)
	testutil.AssertEqual(t, h.Count(3), 0)
	testutil.AssertEqual(t, h.Len(), 3)
	testutil.AssertEqual(t, h.UniqueCount(), 2)

	c := h.Copy()
	c.Record(1)
	testutil.AssertEqual(t, h.Count(1), 2, "copy is independent")
	testutil.AssertEqual(t, c.Count(1), 3)
	testutil.AssertEqual(t, c.Len(), 4)
}
