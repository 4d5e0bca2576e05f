// Package chess provides core chess types: colours, piece kinds, coordinates,
// pieces and the board grid.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both colours, White first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// MarshalText encodes the colour as "white" or "black".
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText decodes "white" or "black", case-insensitively.
func (c *Colour) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown colour %q", text)
	}
	return nil
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lower-case name of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Valid reports whether k names an actual piece.
func (k Kind) Valid() bool {
	return k > NoKind && k < NumKinds
}

// CanPromoteTo reports whether a pawn may be replaced by a piece of kind k.
func (k Kind) CanPromoteTo() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// ParseKind parses a kind name ("queen") or letter ("Q"/"q").
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 {
		for k := Pawn; k < NumKinds; k++ {
			if s[0] == k.Letter()+('a'-'A') {
				return k, true
			}
		}
		return NoKind, false
	}
	for k := Pawn; k < NumKinds; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return NoKind, false
}

// MarshalText encodes the kind by name; NoKind encodes as an empty string.
func (k Kind) MarshalText() ([]byte, error) {
	if k == NoKind {
		return []byte{}, nil
	}
	if !k.Valid() {
		return nil, fmt.Errorf("unknown piece kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name or letter; empty text yields NoKind.
func (k *Kind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = NoKind
		return nil
	}
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown piece kind %q", text)
	}
	*k = parsed
	return nil
}

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Coord is a (rank, file) pair. Rank 0 is White's back rank, file 0 is the a-file.
type Coord struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

// InBounds reports whether (rank, file) lies on the board.
func InBounds(rank, file int) bool {
	return rank >= 0 && rank < BoardSize && file >= 0 && file < BoardSize
}

// NewCoord returns the coordinate for (rank, file), or false if it is off the board.
func NewCoord(rank, file int) (Coord, bool) {
	if !InBounds(rank, file) {
		return Coord{}, false
	}
	return Coord{Rank: rank, File: file}, true
}

// CoordFromIndex converts a square index (rank*8 + file) to a coordinate.
func CoordFromIndex(index int) (Coord, bool) {
	if index < 0 || index >= BoardSize*BoardSize {
		return Coord{}, false
	}
	return Coord{Rank: index / BoardSize, File: index % BoardSize}, true
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return InBounds(c.Rank, c.File)
}

// Index returns the square index, a1 = 0 and h8 = 63.
func (c Coord) Index() int {
	return c.Rank*BoardSize + c.File
}

// Offset returns the coordinate shifted by (dr, df), or false if that leaves the board.
func (c Coord) Offset(dr, df int) (Coord, bool) {
	return NewCoord(c.Rank+dr, c.File+df)
}

// String returns the coordinate as "(rank,file)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Rank, c.File)
}

// BackRank returns the rank on which the colour's pieces start.
func BackRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank on which the colour's pawns start.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank on which the colour's pawns promote.
func PromotionRank(colour Colour) int {
	return BackRank(colour.Opposite())
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
