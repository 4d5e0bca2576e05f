// Package game runs a single chess game: whose turn it is, which moves the
// side to move may play, and when the game has ended in checkmate.
//
// A Game is not safe for concurrent use.
package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/snapshot"
)

// Status is the phase of a game.
type Status int

const (
	// AwaitingMove means the side to move has not yet played.
	AwaitingMove Status = iota
	// Checkmate means the side to move is mated and the game is over.
	Checkmate
)

// String returns the status name.
func (s Status) String() string {
	if s == Checkmate {
		return "checkmate"
	}
	return "awaiting_move"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is a summary of the game suitable for clients.
type State struct {
	ID       string             `json:"id"`
	Status   Status             `json:"status"`
	ToMove   chess.Colour       `json:"toMove"`
	InCheck  bool               `json:"inCheck"`
	Winner   *chess.Colour      `json:"winner,omitempty"`
	Plies    int                `json:"plies"`
	LastMove *engine.MoveResult `json:"lastMove,omitempty"`

	// Hash identifies the position; Repetitions counts how often it has
	// occurred since the game was created or restored.
	Hash        string `json:"hash"`
	Repetitions int    `json:"repetitions"`
}

// PieceMoves lists the destinations of one piece.
type PieceMoves struct {
	From chess.Coord   `json:"from"`
	Kind chess.Kind    `json:"kind"`
	To   []chess.Coord `json:"to"`
}

// Game is one game in progress.
type Game struct {
	ID string

	board  *chess.Board
	toMove chess.Colour
	status Status
	winner chess.Colour
	plies  int
	last   *engine.MoveResult
	rules  *config.RulesConfig

	hash    uint64
	history *hashing.History
}

// Option configures a Game.
type Option func(*Game)

// WithID sets the game ID instead of generating one.
func WithID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.ID = id
		}
	}
}

// WithRules sets the rules configuration.
func WithRules(rules *config.RulesConfig) Option {
	return func(g *Game) {
		if rules != nil {
			g.rules = rules
		}
	}
}

// New starts a game from the standard position with White to move.
func New(opts ...Option) *Game {
	g, _ := FromBoard(chess.NewInitialBoard(), chess.White, opts...)
	return g
}

// FromBoard starts a game from an arbitrary board. The board must hold
// exactly one king per colour; it is owned by the game afterwards.
func FromBoard(b *chess.Board, toMove chess.Colour, opts ...Option) (*Game, error) {
	for _, colour := range chess.Colours {
		if _, ok := b.KingLocation(colour); !ok {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "no %s king", colour)
		}
	}

	g := &Game{
		ID:      uuid.New().String(),
		board:   b,
		toMove:  toMove,
		rules:   config.NewRulesConfig(),
		history: hashing.NewHistory(),
	}
	for _, opt := range opts {
		opt(g)
	}

	engine.RecomputeAll(g.board)
	g.recordPosition()
	g.updateStatus()
	return g, nil
}

// FromFEN starts a game from a FEN position.
func FromFEN(s string, opts ...Option) (*Game, error) {
	b, toMove, err := fen.Load(s)
	if err != nil {
		return nil, err
	}
	return FromBoard(b, toMove, opts...)
}

// Restore resumes a saved game. The document's game ID is kept unless an
// option overrides it.
func Restore(doc snapshot.Document, opts ...Option) (*Game, error) {
	b, err := doc.Board()
	if err != nil {
		return nil, err
	}
	return FromBoard(b, doc.ToMove, append([]Option{WithID(doc.GameID)}, opts...)...)
}

// Snapshot saves the game.
func (g *Game) Snapshot() snapshot.Document {
	return snapshot.NewDocument(g.ID, g.toMove, g.board)
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return fen.Encode(g.board, g.toMove)
}

// Copy returns an independent copy of the game with the same ID.
func (g *Game) Copy() *Game {
	ng := *g
	ng.board = g.board.Copy()
	ng.history = g.history.Copy()
	return &ng
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.InCheck(g.board, g.toMove)
}

// State summarizes the game.
func (g *Game) State() State {
	s := State{
		ID:       g.ID,
		Status:   g.status,
		ToMove:   g.toMove,
		InCheck:  g.InCheck(),
		Plies:    g.plies,
		LastMove: g.last,

		Hash:        fmt.Sprintf("%016x", g.hash),
		Repetitions: g.history.Count(g.hash),
	}
	if g.status == Checkmate {
		winner := g.winner
		s.Winner = &winner
	}
	return s
}

// LegalMoves returns where the piece at from may move this turn. Pieces of
// the side not to move, and every piece but the king while in check, have
// no moves.
func (g *Game) LegalMoves(from chess.Coord) ([]chess.Coord, error) {
	if !from.Valid() {
		return nil, &errors.MoveError{Err: errors.ErrOutOfBounds, From: from.String()}
	}
	p := g.board.PieceAt(from)
	if p == nil || !g.movable(p) {
		return []chess.Coord{}, nil
	}
	return g.destinations(p), nil
}

// AllLegalMoves lists every piece of the side to move that has a move, in
// board order.
func (g *Game) AllLegalMoves() []PieceMoves {
	var all []PieceMoves
	for _, p := range g.board.PiecesOf(g.toMove) {
		if !g.movable(p) {
			continue
		}
		if to := g.destinations(p); len(to) > 0 {
			all = append(all, PieceMoves{From: p.Position, Kind: p.Kind, To: to})
		}
	}
	return all
}

// KingMoves returns the moves of the side to move's king.
func (g *Game) KingMoves() []chess.Coord {
	if g.status == Checkmate {
		return []chess.Coord{}
	}
	return g.destinations(g.board.King(g.toMove))
}

// Move plays from→to for the side to move. promotion names the piece a pawn
// becomes on its last rank; when it is chess.NoKind the configured default
// promotion, if any, is used. On error the game is unchanged.
func (g *Game) Move(from, to chess.Coord, promotion chess.Kind) (*engine.MoveResult, error) {
	if g.status == Checkmate {
		return nil, errors.ErrGameOver
	}
	reject := func(err error, reason string) error {
		return &errors.MoveError{Err: err, From: from.String(), To: to.String(), Reason: reason}
	}

	if !from.Valid() || !to.Valid() {
		return nil, reject(errors.ErrOutOfBounds, "")
	}
	p := g.board.PieceAt(from)
	switch {
	case p == nil:
		return nil, reject(errors.ErrIllegalMove, "no piece on origin square")
	case p.Colour != g.toMove:
		return nil, reject(errors.ErrIllegalMove, "not "+p.Colour.String()+"'s turn")
	case p.Kind != chess.King && g.InCheck():
		return nil, reject(errors.ErrIllegalMove, "king is in check")
	}

	if promotion == chess.NoKind && engine.IsPromotion(g.board, from, to) {
		promotion = g.rules.DefaultPromotion
	}

	result, err := engine.ApplyMove(g.board, from, to, promotion)
	if err != nil {
		return nil, err
	}
	engine.RecomputeAll(g.board)

	g.plies++
	g.last = result
	g.toMove = g.toMove.Opposite()
	g.recordPosition()
	g.updateStatus()
	return result, nil
}

// IsPromotion reports whether from→to would promote a pawn.
func (g *Game) IsPromotion(from, to chess.Coord) bool {
	return engine.IsPromotion(g.board, from, to)
}

// RandomMove plays a random move for the side to move: a piece is chosen
// uniformly among those that can move, then one of its destinations.
// Promotions use the configured default, or a queen.
func (g *Game) RandomMove(rng *rand.Rand) (*engine.MoveResult, error) {
	if g.status == Checkmate {
		return nil, errors.ErrGameOver
	}
	all := g.AllLegalMoves()
	if len(all) == 0 {
		return nil, errors.Wrapf(errors.ErrIllegalMove, "%s has no moves", g.toMove)
	}

	pick := all[rng.Intn(len(all))]
	to := pick.To[rng.Intn(len(pick.To))]

	promotion := chess.NoKind
	if engine.IsPromotion(g.board, pick.From, to) && g.rules.DefaultPromotion == chess.NoKind {
		promotion = chess.Queen
	}
	return g.Move(pick.From, to, promotion)
}

// movable reports whether p may move this turn at all.
func (g *Game) movable(p *chess.Piece) bool {
	if g.status == Checkmate || p.Colour != g.toMove {
		return false
	}
	return p.Kind == chess.King || !g.InCheck()
}

// destinations returns p's move list without king captures.
func (g *Game) destinations(p *chess.Piece) []chess.Coord {
	moves := make([]chess.Coord, 0, len(p.Moves))
	for _, c := range p.Moves {
		if target := g.board.PieceAt(c); target == nil || target.Kind != chess.King {
			moves = append(moves, c)
		}
	}
	return moves
}

// recordPosition hashes the current position into the history.
func (g *Game) recordPosition() {
	g.hash = hashing.Hash(g.board, g.toMove)
	g.history.Record(g.hash)
}

// updateStatus detects checkmate of the side to move.
func (g *Game) updateStatus() {
	if engine.IsCheckmate(g.board, g.toMove) {
		g.status = Checkmate
		g.winner = g.toMove.Opposite()
	}
}
