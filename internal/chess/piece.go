package chess

import "golang.org/x/exp/slices"

// Piece is a single piece on the board. The same struct serves every kind;
// behaviour that differs per kind is dispatched on Kind by the engine.
type Piece struct {
	Kind   Kind
	Colour Colour

	// Position is where the piece stands. The board grid is derived from it.
	Position Coord

	// Moves is the move list from the most recent refresh. It is replaced
	// wholesale on every refresh and never edited in place.
	Moves []Coord

	// HasMoved is tracked for kings and rooks and is never reset.
	HasMoved bool

	// EnPassantVulnerable is set on a pawn right after its double step and
	// cleared when its side moves again.
	EnPassantVulnerable bool
}

// NewPiece creates a piece of the given kind and colour at pos.
func NewPiece(kind Kind, colour Colour, pos Coord) *Piece {
	return &Piece{Kind: kind, Colour: colour, Position: pos}
}

// TracksMoved reports whether the piece kind carries a HasMoved flag.
func (p *Piece) TracksMoved() bool {
	return p.Kind == King || p.Kind == Rook
}

// CanMoveTo reports whether to is in the piece's current move list.
func (p *Piece) CanMoveTo(to Coord) bool {
	return slices.Contains(p.Moves, to)
}

// LegalMoves returns a copy of the current move list.
func (p *Piece) LegalMoves() []Coord {
	if len(p.Moves) == 0 {
		return []Coord{}
	}
	return slices.Clone(p.Moves)
}

// IsEnemy reports whether other is a piece of the opposite colour.
func (p *Piece) IsEnemy(other *Piece) bool {
	return other != nil && other.Colour != p.Colour
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	c.Moves = slices.Clone(p.Moves)
	return &c
}

// String returns e.g. "White knight at (0,1)".
func (p *Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String() + " at " + p.Position.String()
}
