// Package fen loads and writes positions in Forsyth-Edwards Notation.
//
// Parsing is delegated to github.com/notnil/chess; the parsed position is
// then mapped onto a chess.Board, with castling rights expressed through
// HasMoved and the en-passant target through EnPassantVulnerable.
package fen

import (
	"fmt"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/snapshot"
)

// Initial is the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var kinds = map[notnil.PieceType]chess.Kind{
	notnil.Pawn:   chess.Pawn,
	notnil.Knight: chess.Knight,
	notnil.Bishop: chess.Bishop,
	notnil.Rook:   chess.Rook,
	notnil.Queen:  chess.Queen,
	notnil.King:   chess.King,
}

// pieces maps back from (colour, kind) for writing.
var pieces = map[chess.Colour]map[chess.Kind]notnil.Piece{
	chess.White: {
		chess.Pawn: notnil.WhitePawn, chess.Knight: notnil.WhiteKnight, chess.Bishop: notnil.WhiteBishop,
		chess.Rook: notnil.WhiteRook, chess.Queen: notnil.WhiteQueen, chess.King: notnil.WhiteKing,
	},
	chess.Black: {
		chess.Pawn: notnil.BlackPawn, chess.Knight: notnil.BlackKnight, chess.Bishop: notnil.BlackBishop,
		chess.Rook: notnil.BlackRook, chess.Queen: notnil.BlackQueen, chess.King: notnil.BlackKing,
	},
}

// Load parses s and returns the board and the side to move. The board's
// move lists are empty until engine.RecomputeAll runs.
func Load(s string) (*chess.Board, chess.Colour, error) {
	fields := strings.Fields(s)
	opt, err := notnil.FEN(strings.Join(fields, " "))
	if err != nil {
		return nil, chess.White, errors.Wrapf(errors.ErrInvalidFEN, "%q: %v", s, err)
	}
	pos := notnil.NewGame(opt).Position()
	toMove := colourOf(pos.Turn())

	entries := make([]snapshot.Entry, 0, 32)
	for sq, piece := range pos.Board().SquareMap() {
		kind, ok := kinds[piece.Type()]
		if !ok {
			continue
		}
		entries = append(entries, snapshot.Entry{
			Square: coordOf(sq).Index(),
			Kind:   kind,
			Colour: colourOf(piece.Color()),
		})
	}

	rights := pos.CastleRights()
	for i := range entries {
		e := &entries[i]
		c, _ := chess.CoordFromIndex(e.Square)
		switch e.Kind {
		case chess.King:
			e.Moved = !kingMayCastle(rights, e.Colour, c)
		case chess.Rook:
			e.Moved = !rookMayCastle(rights, e.Colour, c)
		}
	}

	if len(fields) > 3 && fields[3] != "-" {
		target, ok := parseSquare(fields[3], toMove)
		if !ok {
			return nil, chess.White, errors.Wrapf(errors.ErrInvalidFEN, "%q: bad en passant square %q", s, fields[3])
		}
		markEnPassant(entries, toMove.Opposite(), target)
	}

	b, err := snapshot.Decode(entries)
	if err != nil {
		return nil, chess.White, errors.Wrapf(errors.ErrInvalidFEN, "%q: %v", s, err)
	}
	return b, toMove, nil
}

// Encode writes b with toMove to play. Halfmove and fullmove counters are
// not tracked and are always written as "0 1".
func Encode(b *chess.Board, toMove chess.Colour) string {
	m := make(map[notnil.Square]notnil.Piece)
	for _, p := range b.Pieces() {
		m[notnil.Square(p.Position.Index())] = pieces[p.Colour][p.Kind]
	}

	side := "w"
	if toMove == chess.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s %s %s 0 1", notnil.NewBoard(m).String(), side, castling(b), enPassant(b, toMove))
}

// castling renders the castling-rights field from king and rook flags.
func castling(b *chess.Board) string {
	var sb strings.Builder
	for _, colour := range chess.Colours {
		rank := chess.BackRank(colour)
		king := b.King(colour)
		if king == nil || king.HasMoved || king.Position != (chess.Coord{Rank: rank, File: 4}) {
			continue
		}
		for _, right := range []struct {
			file   int
			letter byte
		}{{7, 'k'}, {0, 'q'}} {
			rook := b.PieceAt(chess.Coord{Rank: rank, File: right.file})
			if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved {
				continue
			}
			letter := right.letter
			if colour == chess.White {
				letter -= 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// enPassant renders the square behind a pawn of the side that just moved
// if that pawn may be taken en passant.
func enPassant(b *chess.Board, toMove chess.Colour) string {
	mover := toMove.Opposite()
	for _, p := range b.PiecesOf(mover) {
		if p.Kind != chess.Pawn || !p.EnPassantVulnerable {
			continue
		}
		if behind, ok := p.Position.Offset(-chess.ColourOffset(mover), 0); ok {
			return notnil.Square(behind.Index()).String()
		}
	}
	return "-"
}

func kingMayCastle(rights notnil.CastleRights, colour chess.Colour, at chess.Coord) bool {
	if at != (chess.Coord{Rank: chess.BackRank(colour), File: 4}) {
		return false
	}
	c := colourTo(colour)
	return rights.CanCastle(c, notnil.KingSide) || rights.CanCastle(c, notnil.QueenSide)
}

func rookMayCastle(rights notnil.CastleRights, colour chess.Colour, at chess.Coord) bool {
	if at.Rank != chess.BackRank(colour) {
		return false
	}
	c := colourTo(colour)
	switch at.File {
	case 0:
		return rights.CanCastle(c, notnil.QueenSide)
	case 7:
		return rights.CanCastle(c, notnil.KingSide)
	}
	return false
}

// markEnPassant flags the mover's pawn standing in front of target.
func markEnPassant(entries []snapshot.Entry, mover chess.Colour, target chess.Coord) {
	at, ok := target.Offset(chess.ColourOffset(mover), 0)
	if !ok {
		return
	}
	for i := range entries {
		e := &entries[i]
		if e.Square == at.Index() && e.Kind == chess.Pawn && e.Colour == mover {
			e.EnPassant = true
		}
	}
}

// parseSquare reads an en-passant target such as "e3". The target must lie
// on the rank the side that just moved passed over.
func parseSquare(s string, toMove chess.Colour) (chess.Coord, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' {
		return chess.Coord{}, false
	}
	c := chess.Coord{Rank: int(s[1] - '1'), File: int(s[0] - 'a')}
	if c.Rank != chess.BackRank(toMove.Opposite())+2*chess.ColourOffset(toMove.Opposite()) {
		return chess.Coord{}, false
	}
	return c, true
}

func coordOf(sq notnil.Square) chess.Coord {
	return chess.Coord{Rank: int(sq.Rank()), File: int(sq.File())}
}

func colourOf(c notnil.Color) chess.Colour {
	if c == notnil.Black {
		return chess.Black
	}
	return chess.White
}

func colourTo(c chess.Colour) notnil.Color {
	if c == chess.Black {
		return notnil.Black
	}
	return notnil.White
}
