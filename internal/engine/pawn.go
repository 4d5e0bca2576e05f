package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates forward steps, the double step from the home rank,
// diagonal captures and en passant, in that order. Diagonals are tried
// towards the lower file first.
func pawnMoves(v View, p *chess.Piece) []chess.Coord {
	moves := []chess.Coord{}
	dir := chess.ColourOffset(p.Colour)
	pos := p.Position

	if one, ok := pos.Offset(dir, 0); ok && v.At(one).Empty() {
		moves = append(moves, one)
		if pos.Rank == chess.PawnRank(p.Colour) {
			if two, ok := pos.Offset(2*dir, 0); ok && v.At(two).Empty() {
				moves = append(moves, two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		target, ok := pos.Offset(dir, df)
		if !ok {
			continue
		}
		if occupant := v.At(target).Piece(); occupant != nil {
			if p.IsEnemy(occupant) {
				moves = append(moves, target)
			}
			continue
		}
		if enPassantVictim(v, p, target) != nil {
			moves = append(moves, target)
		}
	}
	return moves
}

// pawnAttacks returns the forward diagonals of p, occupied or not.
func pawnAttacks(p *chess.Piece) []chess.Coord {
	var attacks []chess.Coord
	dir := chess.ColourOffset(p.Colour)
	for _, df := range []int{-1, 1} {
		if c, ok := p.Position.Offset(dir, df); ok {
			attacks = append(attacks, c)
		}
	}
	return attacks
}

// enPassantVictim returns the pawn p would capture by moving diagonally onto
// the empty square target: an enemy pawn beside p, on p's own rank, in the
// file of target, that has just made its double step.
func enPassantVictim(v View, p *chess.Piece, target chess.Coord) *chess.Piece {
	if p.Kind != chess.Pawn || !v.At(target).Empty() {
		return nil
	}
	beside := chess.Coord{Rank: p.Position.Rank, File: target.File}
	victim := v.At(beside).Piece()
	if victim == nil || victim.Kind != chess.Pawn || !p.IsEnemy(victim) || !victim.EnPassantVulnerable {
		return nil
	}
	return victim
}

// isPromotion reports whether moving p to to lands a pawn on its last rank.
func isPromotion(p *chess.Piece, to chess.Coord) bool {
	return p.Kind == chess.Pawn && to.Rank == chess.PromotionRank(p.Colour)
}

// isDoubleStep reports whether moving p from its square to to is a two-square pawn advance.
func isDoubleStep(p *chess.Piece, to chess.Coord) bool {
	return p.Kind == chess.Pawn && abs(to.Rank-p.Position.Rank) == 2
}

// ExpireEnPassant clears the en-passant flag on every pawn of colour.
// It runs at the start of that side's turn.
func ExpireEnPassant(b *chess.Board, colour chess.Colour) {
	for _, p := range b.PiecesOf(colour) {
		if p.Kind == chess.Pawn {
			p.EnPassantVulnerable = false
		}
	}
}

// promote replaces pawn in place with a new piece of kind and the same colour.
func promote(b *chess.Board, pawn *chess.Piece, kind chess.Kind) *chess.Piece {
	promoted := chess.NewPiece(kind, pawn.Colour, pawn.Position)
	promoted.HasMoved = promoted.TracksMoved()
	b.Place(promoted)
	return promoted
}
