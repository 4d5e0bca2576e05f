package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// At is shorthand for a coordinate.
func At(rank, file int) chess.Coord {
	return chess.Coord{Rank: rank, File: file}
}

// Moves builds a move list from (rank, file) pairs.
func Moves(pairs ...[2]int) []chess.Coord {
	moves := make([]chess.Coord, 0, len(pairs))
	for _, p := range pairs {
		moves = append(moves, At(p[0], p[1]))
	}
	return moves
}

// Placement names a piece to put on a test board.
type Placement struct {
	Kind   chess.Kind
	Colour chess.Colour
	Rank   int
	File   int
}

// W places a white piece.
func W(kind chess.Kind, rank, file int) Placement {
	return Placement{Kind: kind, Colour: chess.White, Rank: rank, File: file}
}

// B places a black piece.
func B(kind chess.Kind, rank, file int) Placement {
	return Placement{Kind: kind, Colour: chess.Black, Rank: rank, File: file}
}

// BoardWith returns an empty board holding the given pieces.
// It calls t.Fatal on an off-board or doubly occupied square.
func BoardWith(t *testing.T, placements ...Placement) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, pl := range placements {
		c, ok := chess.NewCoord(pl.Rank, pl.File)
		if !ok {
			t.Fatalf("BoardWith: (%d,%d) is off the board", pl.Rank, pl.File)
		}
		if !b.At(c).Empty() {
			t.Fatalf("BoardWith: %v placed twice", c)
		}
		b.Place(chess.NewPiece(pl.Kind, pl.Colour, c))
	}
	return b
}

// MustPiece returns the piece at (rank, file) or fails the test.
func MustPiece(t *testing.T, b *chess.Board, rank, file int) *chess.Piece {
	t.Helper()
	p := b.PieceAt(At(rank, file))
	if p == nil {
		t.Fatalf("no piece at (%d,%d)", rank, file)
	}
	return p
}
