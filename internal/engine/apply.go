package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Capture describes a piece removed from the board by a move.
type Capture struct {
	Kind   chess.Kind   `json:"kind"`
	Colour chess.Colour `json:"colour"`
	At     chess.Coord  `json:"at"`
}

// RookMove is the rook relocation that accompanies a castle.
type RookMove struct {
	From chess.Coord `json:"from"`
	To   chess.Coord `json:"to"`
}

// MoveResult describes everything an applied move changed, for callers that
// render or record moves.
type MoveResult struct {
	Kind       chess.Kind   `json:"kind"`
	Colour     chess.Colour `json:"colour"`
	From       chess.Coord  `json:"from"`
	To         chess.Coord  `json:"to"`
	Captured   *Capture     `json:"captured,omitempty"`
	Castle     *RookMove    `json:"castle,omitempty"`
	EnPassant  bool         `json:"enPassant,omitempty"`
	DoubleStep bool         `json:"doubleStep,omitempty"`
	Promotion  chess.Kind   `json:"promotion,omitempty"`
}

// IsPromotion reports whether moving the piece at from to to would promote a
// pawn, so callers can ask for a piece choice before calling ApplyMove.
func IsPromotion(b *chess.Board, from, to chess.Coord) bool {
	p := b.PieceAt(from)
	return p != nil && isPromotion(p, to)
}

// ApplyMove moves the piece at from to to. The destination must be in the
// piece's current move list. A pawn reaching its last rank requires
// promotion to be a queen, rook, bishop or knight; for any other move
// promotion is ignored. Rejected moves leave the board untouched.
//
// ApplyMove clears the mover's en-passant flags, performs captures
// (including en passant), relocates the castling rook, sets HasMoved and
// the en-passant flag of a double-stepping pawn, and promotes. It does not
// refresh move lists; call RecomputeAll afterwards.
func ApplyMove(b *chess.Board, from, to chess.Coord, promotion chess.Kind) (*MoveResult, error) {
	p := b.PieceAt(from)
	if err := checkMove(b, p, from, to, promotion); err != nil {
		return nil, err
	}

	result := &MoveResult{Kind: p.Kind, Colour: p.Colour, From: from, To: to}

	ExpireEnPassant(b, p.Colour)

	if victim := enPassantVictim(b, p, to); victim != nil {
		result.EnPassant = true
		result.Captured = &Capture{Kind: victim.Kind, Colour: victim.Colour, At: victim.Position}
		b.Remove(victim.Position)
	}

	if isCastle(p, to) {
		rookFrom, rookTo := castleRookMove(to)
		if rook := b.PieceAt(rookFrom); rook != nil {
			b.Relocate(rookFrom, rookTo)
			rook.HasMoved = true
			result.Castle = &RookMove{From: rookFrom, To: rookTo}
		}
	}

	result.DoubleStep = isDoubleStep(p, to)
	promoting := isPromotion(p, to)

	captured, _ := b.Relocate(from, to)
	if captured != nil {
		result.Captured = &Capture{Kind: captured.Kind, Colour: captured.Colour, At: to}
	}

	if p.TracksMoved() {
		p.HasMoved = true
	}
	if result.DoubleStep {
		p.EnPassantVulnerable = true
	}
	if promoting {
		promote(b, p, promotion)
		result.Promotion = promotion
	}
	return result, nil
}

// checkMove validates a move request without touching the board.
func checkMove(b *chess.Board, p *chess.Piece, from, to chess.Coord, promotion chess.Kind) error {
	reject := func(err error, reason string) error {
		return &errors.MoveError{Err: err, From: from.String(), To: to.String(), Reason: reason}
	}

	if !from.Valid() || !to.Valid() {
		return reject(errors.ErrOutOfBounds, "")
	}
	if p == nil {
		return reject(errors.ErrIllegalMove, "no piece on origin square")
	}
	if !p.CanMoveTo(to) {
		return reject(errors.ErrIllegalMove, "destination not in legal moves")
	}
	if target := b.PieceAt(to); target != nil && target.Kind == chess.King {
		return reject(errors.ErrIllegalMove, "kings are never captured")
	}

	if isPromotion(p, to) {
		if promotion == chess.NoKind {
			return reject(errors.ErrPromotionRequired, "")
		}
		if !promotion.CanPromoteTo() {
			return reject(errors.ErrInvalidPromotion, promotion.String())
		}
	}
	return nil
}
