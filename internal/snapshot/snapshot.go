// Package snapshot converts boards to and from a flat list of piece tuples
// suitable for persisting a game between sessions.
package snapshot

import (
	"encoding/json"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Entry is one persisted piece: where it stands, what it is, and the two
// flags move generation depends on. Move lists are not persisted.
type Entry struct {
	Square    int          `json:"square"`
	Kind      chess.Kind   `json:"kind"`
	Colour    chess.Colour `json:"colour"`
	Moved     bool         `json:"moved,omitempty"`
	EnPassant bool         `json:"enPassant,omitempty"`
}

// Document is a whole saved game.
type Document struct {
	GameID string       `json:"gameId,omitempty"`
	ToMove chess.Colour `json:"toMove"`
	Pieces []Entry      `json:"pieces"`
}

// UnmarshalJSON decodes a document and rejects one without "toMove";
// Black is the zero Colour and would otherwise be assumed silently.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	var raw struct {
		plain
		ToMove *chess.Colour `json:"toMove"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ToMove == nil {
		return errors.Wrap(errors.ErrInvalidSnapshot, "missing toMove")
	}
	*d = Document(raw.plain)
	d.ToMove = *raw.ToMove
	return nil
}

// NewDocument captures b with the given game ID and side to move.
func NewDocument(gameID string, toMove chess.Colour, b *chess.Board) Document {
	return Document{GameID: gameID, ToMove: toMove, Pieces: Encode(b)}
}

// Board rebuilds the document's board. See Decode.
func (d Document) Board() (*chess.Board, error) {
	return Decode(d.Pieces)
}

// Encode flattens b into entries in rank-major square order.
func Encode(b *chess.Board) []Entry {
	pieces := b.Pieces()
	entries := make([]Entry, 0, len(pieces))
	for _, p := range pieces {
		entries = append(entries, Entry{
			Square:    p.Position.Index(),
			Kind:      p.Kind,
			Colour:    p.Colour,
			Moved:     p.HasMoved,
			EnPassant: p.EnPassantVulnerable,
		})
	}
	return entries
}

// Decode rebuilds a board from entries. Every entry is checked and all
// problems are reported together; each wraps ErrInvalidSnapshot. The
// returned board has empty move lists until engine.RecomputeAll runs.
func Decode(entries []Entry) (*chess.Board, error) {
	var result *multierror.Error
	occupied := make(map[int]bool, len(entries))
	kings := make(map[chess.Colour]int, 2)

	for i, e := range entries {
		if err := checkEntry(e, occupied); err != nil {
			result = multierror.Append(result, &errors.EntryError{Err: err, Index: i, Square: e.Square})
			continue
		}
		occupied[e.Square] = true
		if e.Kind == chess.King {
			kings[e.Colour]++
		}
	}

	for _, colour := range chess.Colours {
		if n := kings[colour]; n != 1 {
			result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidSnapshot, "%s has %d kings, want 1", colour, n))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	b := chess.NewBoard()
	for _, e := range entries {
		c, _ := chess.CoordFromIndex(e.Square)
		p := chess.NewPiece(e.Kind, e.Colour, c)
		p.HasMoved = e.Moved
		p.EnPassantVulnerable = e.EnPassant
		b.Place(p)
	}
	return b, nil
}

// checkEntry validates a single entry against the squares already taken.
func checkEntry(e Entry, occupied map[int]bool) error {
	c, ok := chess.CoordFromIndex(e.Square)
	switch {
	case !ok:
		return errors.Wrap(errors.ErrInvalidSnapshot, "square out of range")
	case occupied[e.Square]:
		return errors.Wrap(errors.ErrInvalidSnapshot, "square listed twice")
	case !e.Kind.Valid():
		return errors.Wrapf(errors.ErrInvalidSnapshot, "unknown kind %d", int(e.Kind))
	case e.Colour != chess.White && e.Colour != chess.Black:
		return errors.Wrapf(errors.ErrInvalidSnapshot, "unknown colour %d", int(e.Colour))
	case e.Kind == chess.Pawn && (c.Rank == 0 || c.Rank == chess.BoardSize-1):
		return errors.Wrap(errors.ErrInvalidSnapshot, "pawn on a back rank")
	case e.Moved && e.Kind != chess.King && e.Kind != chess.Rook:
		return errors.Wrapf(errors.ErrInvalidSnapshot, "moved flag on %s", e.Kind)
	case e.EnPassant && e.Kind != chess.Pawn:
		return errors.Wrapf(errors.ErrInvalidSnapshot, "en-passant flag on %s", e.Kind)
	}
	return nil
}
