// Package engine provides chess move generation, legality evaluation and
// board mutation on top of the types in package chess.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// View is the read-only board access move generation needs.
// *chess.Board implements it.
type View interface {
	At(c chess.Coord) chess.Square
}

// direction is a (rank, file) step.
type direction struct {
	dr, df int
}

// Direction sets, in generation order.
var (
	// up, down, left, right
	orthogonal = []direction{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}

	// up-left, up-right, down-left, down-right
	diagonal = []direction{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}

	allDirections = append(append([]direction{}, orthogonal...), diagonal...)
)

// knightOffsets run clockwise starting from the top-right L.
var knightOffsets = []direction{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// validMove reports whether p may land on (rank, file): the square must be on
// the board and either empty or held by an opposing piece.
func validMove(v View, p *chess.Piece, rank, file int) bool {
	if !chess.InBounds(rank, file) {
		return false
	}
	target := v.At(chess.Coord{Rank: rank, File: file})
	if target.Empty() {
		return true
	}
	return target.Piece().Colour != p.Colour
}

// PseudoLegalMoves returns the squares p could move to on v, ignoring
// whether the move exposes its own king. For kings it returns the raw
// adjacent squares only; castling and safety pruning happen in RecomputeAll.
func PseudoLegalMoves(v View, p *chess.Piece) []chess.Coord {
	switch p.Kind {
	case chess.Pawn:
		return pawnMoves(v, p)
	case chess.Knight:
		return stepMoves(v, p, knightOffsets)
	case chess.Bishop:
		return slidingMoves(v, p, diagonal)
	case chess.Rook:
		return slidingMoves(v, p, orthogonal)
	case chess.Queen:
		return slidingMoves(v, p, allDirections)
	case chess.King:
		return stepMoves(v, p, allDirections)
	}
	return nil
}

// stepMoves tests each single offset independently.
func stepMoves(v View, p *chess.Piece, offsets []direction) []chess.Coord {
	moves := make([]chess.Coord, 0, len(offsets))
	for _, d := range offsets {
		rank, file := p.Position.Rank+d.dr, p.Position.File+d.df
		if validMove(v, p, rank, file) {
			moves = append(moves, chess.Coord{Rank: rank, File: file})
		}
	}
	return moves
}

// slidingMoves finds the open directions first, then walks each one outward
// until it leaves the board, meets a friendly piece, or makes a capture.
func slidingMoves(v View, p *chess.Piece, dirs []direction) []chess.Coord {
	moves := []chess.Coord{}
	for _, d := range openings(v, p, dirs) {
		rank, file := p.Position.Rank+d.dr, p.Position.File+d.df
		for validMove(v, p, rank, file) {
			c := chess.Coord{Rank: rank, File: file}
			moves = append(moves, c)
			if !v.At(c).Empty() {
				break
			}
			rank += d.dr
			file += d.df
		}
	}
	return moves
}

// openings returns the directions whose first square is a valid move.
// An adjacent enemy piece counts as an opening.
func openings(v View, p *chess.Piece, dirs []direction) []direction {
	var open []direction
	for _, d := range dirs {
		if validMove(v, p, p.Position.Rank+d.dr, p.Position.File+d.df) {
			open = append(open, d)
		}
	}
	return open
}
