package chess

// Square is either empty or occupied by exactly one piece.
type Square struct {
	piece *Piece
}

// Occupied returns a square holding p.
func Occupied(p *Piece) Square {
	return Square{piece: p}
}

// Empty reports whether no piece stands on the square.
func (s Square) Empty() bool {
	return s.piece == nil
}

// Piece returns the occupant, or nil for an empty square.
func (s Square) Piece() *Piece {
	return s.piece
}

// Board is the 8x8 grid plus an index of where each king stands.
// The zero value is not usable; create boards with NewBoard.
type Board struct {
	// squares[rank][file], rank 0 is White's back rank.
	squares [BoardSize][BoardSize]Square

	// Keep track of where the two kings are for check detection.
	kings map[Colour]Coord
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{kings: make(map[Colour]Coord, 2)}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		for _, colour := range Colours {
			b.Place(NewPiece(backRank[file], colour, Coord{Rank: BackRank(colour), File: file}))
			b.Place(NewPiece(Pawn, colour, Coord{Rank: PawnRank(colour), File: file}))
		}
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]Square{}
	b.kings = make(map[Colour]Coord, 2)
}

// At returns the square at c. Off-board coordinates read as empty.
func (b *Board) At(c Coord) Square {
	if !c.Valid() {
		return Square{}
	}
	return b.squares[c.Rank][c.File]
}

// PieceAt returns the piece at c, or nil.
func (b *Board) PieceAt(c Coord) *Piece {
	return b.At(c).Piece()
}

// Place puts p on the square named by p.Position, dropping any previous occupant.
func (b *Board) Place(p *Piece) {
	pos := p.Position
	b.dropAt(pos)
	b.squares[pos.Rank][pos.File] = Occupied(p)
	if p.Kind == King {
		b.kings[p.Colour] = pos
	}
}

// Remove empties the square at c and returns the piece that stood there.
func (b *Board) Remove(c Coord) *Piece {
	if !c.Valid() {
		return nil
	}
	p := b.dropAt(c)
	b.squares[c.Rank][c.File] = Square{}
	return p
}

// Relocate moves the piece at from to to, dropping and returning any occupant of to.
// It returns nil, false if from is empty.
func (b *Board) Relocate(from, to Coord) (captured *Piece, ok bool) {
	p := b.PieceAt(from)
	if p == nil || !to.Valid() {
		return nil, false
	}
	captured = b.dropAt(to)
	b.squares[from.Rank][from.File] = Square{}
	p.Position = to
	b.squares[to.Rank][to.File] = Occupied(p)
	if p.Kind == King {
		b.kings[p.Colour] = to
	}
	return captured, true
}

// dropAt clears the king index entry for a king standing at c and returns the occupant.
func (b *Board) dropAt(c Coord) *Piece {
	p := b.squares[c.Rank][c.File].Piece()
	if p != nil && p.Kind == King {
		if at, ok := b.kings[p.Colour]; ok && at == c {
			delete(b.kings, p.Colour)
		}
	}
	return p
}

// KingLocation returns where the colour's king stands.
func (b *Board) KingLocation(colour Colour) (Coord, bool) {
	c, ok := b.kings[colour]
	return c, ok
}

// King returns the colour's king, or nil if it is not on the board.
func (b *Board) King(colour Colour) *Piece {
	c, ok := b.kings[colour]
	if !ok {
		return nil
	}
	return b.PieceAt(c)
}

// Pieces returns every piece in rank-major order (a1, b1, ..., h8).
func (b *Board) Pieces() []*Piece {
	var pieces []*Piece
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[rank][file].Piece(); p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// PiecesOf returns every piece of one colour in rank-major order.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var pieces []*Piece
	for _, p := range b.Pieces() {
		if p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Copy creates a deep copy of the board, pieces and move lists included.
func (b *Board) Copy() *Board {
	nb := NewBoard()
	for _, p := range b.Pieces() {
		nb.Place(p.Clone())
	}
	return nb
}
