package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// RecomputeAll refreshes the move list of every piece on the board.
//
// Non-king pieces are computed first. Each king is then finalized from its
// adjacent squares plus available castles, minus the squares the opponent
// attacks and the squares next to the opponent king. Running it twice with
// no mutation in between yields identical lists.
func RecomputeAll(b *chess.Board) {
	var kings []*chess.Piece
	for _, p := range b.Pieces() {
		if p.Kind == chess.King {
			kings = append(kings, p)
			continue
		}
		p.Moves = PseudoLegalMoves(b, p)
	}

	attacked := map[chess.Colour]SquareSet{
		chess.White: AttackedSquares(b, chess.White),
		chess.Black: AttackedSquares(b, chess.Black),
	}
	for _, king := range kings {
		king.Moves = kingMoves(b, king, attacked[king.Colour.Opposite()])
	}
}

// kingMoves finalizes a king's move list against the opponent's attacks.
func kingMoves(b *chess.Board, king *chess.Piece, attacked SquareSet) []chess.Coord {
	forbidden := attacked
	if enemy, ok := b.KingLocation(king.Colour.Opposite()); ok {
		forbidden |= kingRing(enemy)
	}

	candidates := PseudoLegalMoves(b, king)
	candidates = append(candidates, castlingTargets(b, king.Colour, attacked)...)

	moves := make([]chess.Coord, 0, len(candidates))
	for _, c := range candidates {
		if !forbidden.Has(c) {
			moves = append(moves, c)
		}
	}
	return moves
}
