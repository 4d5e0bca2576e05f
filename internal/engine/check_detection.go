package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// KingLocation returns where colour's king stands. A missing king is a broken
// invariant and panics.
func KingLocation(b *chess.Board, colour chess.Colour) chess.Coord {
	at, ok := b.KingLocation(colour)
	if !ok {
		panic(errors.Invariantf("no %s king in the king index", colour))
	}
	return at
}

// InCheck returns true if the given colour's king is attacked.
// Move lists must be fresh.
func InCheck(b *chess.Board, colour chess.Colour) bool {
	return AttackedSquares(b, colour.Opposite()).Has(KingLocation(b, colour))
}

// IsCheckmate returns true if colour is in check and its king has no moves.
// Blocking or capturing the checking piece with another piece is not considered.
func IsCheckmate(b *chess.Board, colour chess.Colour) bool {
	if !InCheck(b, colour) {
		return false
	}
	return len(b.PieceAt(KingLocation(b, colour)).Moves) == 0
}
