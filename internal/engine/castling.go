package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Side selects a castling direction.
type Side int

const (
	// QueenSide castles towards file 0 (the "left" rook).
	QueenSide Side = iota
	// KingSide castles towards file 7 (the "right" rook).
	KingSide
)

// String returns the side name.
func (s Side) String() string {
	if s == KingSide {
		return "king side"
	}
	return "queen side"
}

const kingHomeFile = 4

// castleGeometry describes the files involved in one castling direction.
type castleGeometry struct {
	rookFile    int   // rook's home file
	passFile    int   // square the king crosses, where the rook lands
	landingFile int   // square the king lands on
	between     []int // files that must be empty
}

var castleFiles = map[Side]castleGeometry{
	QueenSide: {rookFile: 0, passFile: 3, landingFile: 2, between: []int{1, 2, 3}},
	KingSide:  {rookFile: 7, passFile: 5, landingFile: 6, between: []int{5, 6}},
}

// CastlingAvailable reports whether colour may castle towards side now.
// Opponent move lists must be fresh.
func CastlingAvailable(b *chess.Board, colour chess.Colour, side Side) bool {
	return castlingAvailable(b, colour, side, AttackedSquares(b, colour.Opposite()))
}

// castlingAvailable checks the rules against a precomputed opponent attack set.
func castlingAvailable(b *chess.Board, colour chess.Colour, side Side, attacked SquareSet) bool {
	rank := chess.BackRank(colour)
	geo := castleFiles[side]

	king := b.King(colour)
	if king == nil || king.HasMoved || king.Position != (chess.Coord{Rank: rank, File: kingHomeFile}) {
		return false
	}

	rook := b.PieceAt(chess.Coord{Rank: rank, File: geo.rookFile})
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved {
		return false
	}

	for _, file := range geo.between {
		if !b.At(chess.Coord{Rank: rank, File: file}).Empty() {
			return false
		}
	}

	pass := chess.Coord{Rank: rank, File: geo.passFile}
	landing := chess.Coord{Rank: rank, File: geo.landingFile}
	return !attacked.Has(pass) && !attacked.Has(landing)
}

// castlingTargets returns the landing squares of every castle currently available.
func castlingTargets(b *chess.Board, colour chess.Colour, attacked SquareSet) []chess.Coord {
	var targets []chess.Coord
	for _, side := range []Side{QueenSide, KingSide} {
		if castlingAvailable(b, colour, side, attacked) {
			targets = append(targets, chess.Coord{Rank: chess.BackRank(colour), File: castleFiles[side].landingFile})
		}
	}
	return targets
}

// isCastle reports whether moving p to to is a castling move.
func isCastle(p *chess.Piece, to chess.Coord) bool {
	return p.Kind == chess.King && to.Rank == p.Position.Rank && abs(to.File-p.Position.File) == 2
}

// castleRookMove returns the rook's origin and destination for a king castling to to.
func castleRookMove(to chess.Coord) (from, dest chess.Coord) {
	side := QueenSide
	if to.File > kingHomeFile {
		side = KingSide
	}
	geo := castleFiles[side]
	return chess.Coord{Rank: to.Rank, File: geo.rookFile}, chess.Coord{Rank: to.Rank, File: geo.passFile}
}
