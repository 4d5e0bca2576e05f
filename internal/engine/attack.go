package engine

import (
	"math/bits"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SquareSet is a set of board squares, one bit per square index (a1 = bit 0).
type SquareSet uint64

// Add returns the set with c included. Off-board coordinates are ignored.
func (s SquareSet) Add(c chess.Coord) SquareSet {
	if !c.Valid() {
		return s
	}
	return s | 1<<uint(c.Index())
}

// Has reports whether c is in the set.
func (s SquareSet) Has(c chess.Coord) bool {
	return c.Valid() && s&(1<<uint(c.Index())) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Coords returns the members in index order.
func (s SquareSet) Coords() []chess.Coord {
	coords := make([]chess.Coord, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		c, _ := chess.CoordFromIndex(bits.TrailingZeros64(rest))
		coords = append(coords, c)
	}
	return coords
}

// setOf collects coords into a SquareSet.
func setOf(coords []chess.Coord) SquareSet {
	var s SquareSet
	for _, c := range coords {
		s = s.Add(c)
	}
	return s
}

// AttackedSquares returns every square attacked by the pieces of colour by.
// It is the union of each piece's current move list, plus the forward
// diagonals of every pawn whether or not anything stands there. A king
// contributes its whole adjacency ring, so the result does not depend on
// the order in which the two kings were finalized.
//
// Move lists must be fresh: call after the non-king pass of RecomputeAll.
func AttackedSquares(b *chess.Board, by chess.Colour) SquareSet {
	var attacked SquareSet
	for _, p := range b.PiecesOf(by) {
		switch p.Kind {
		case chess.King:
			attacked |= kingRing(p.Position)
		case chess.Pawn:
			attacked |= setOf(p.Moves) | setOf(pawnAttacks(p))
		default:
			attacked |= setOf(p.Moves)
		}
	}
	return attacked
}

// kingRing returns the on-board squares adjacent to c.
func kingRing(c chess.Coord) SquareSet {
	var ring SquareSet
	for _, d := range allDirections {
		if n, ok := c.Offset(d.dr, d.df); ok {
			ring = ring.Add(n)
		}
	}
	return ring
}
