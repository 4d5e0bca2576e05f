package server

import (
	"bytes"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/snapshot"
)

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	From      chess.Coord `json:"from"`
	To        chess.Coord `json:"to"`
	Promotion chess.Kind  `json:"promotion"`
}

// gameView is the full client view of a game.
type gameView struct {
	State game.State        `json:"state"`
	FEN   string            `json:"fen"`
	Moves []game.PieceMoves `json:"moves"`
}

type movesView struct {
	From  chess.Coord   `json:"from"`
	Moves []chess.Coord `json:"moves"`
}

type moveView struct {
	Result *engine.MoveResult `json:"result"`
	State  game.State         `json:"state"`
}

func newGameView(g *game.Game) gameView {
	moves := g.AllLegalMoves()
	if moves == nil {
		moves = []game.PieceMoves{}
	}
	return gameView{State: g.State(), FEN: g.FEN(), Moves: moves}
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
		}
	}

	g := game.New(game.WithRules(s.cfg.Rules))
	if req.FEN != "" {
		var err error
		if g, err = game.FromFEN(req.FEN, game.WithRules(s.cfg.Rules)); err != nil {
			return err
		}
	}
	return s.register(c, g)
}

func (s *Server) importGame(c *fiber.Ctx) error {
	var doc snapshot.Document
	if err := c.BodyParser(&doc); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid snapshot body: "+err.Error())
	}

	opts := []game.Option{game.WithRules(s.cfg.Rules)}
	if doc.GameID != "" && s.games.Has(doc.GameID) {
		opts = append(opts, game.WithID(uuid.New().String()))
	}
	g, err := game.Restore(doc, opts...)
	if err != nil {
		return err
	}
	return s.register(c, g)
}

// register adds a new game and answers with its view.
func (s *Server) register(c *fiber.Ctx, g *game.Game) error {
	if err := s.games.Add(g); err != nil {
		return err
	}
	s.cfg.Logf(config.Verbose, "game %s created (%s)", g.ID, g.FEN())
	return c.Status(fiber.StatusCreated).JSON(newGameView(g))
}

func (s *Server) getGame(c *fiber.Ctx) error {
	var view gameView
	err := s.games.With(c.Params("id"), func(g *game.Game) error {
		view = newGameView(g)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.games.Remove(id); err != nil {
		return err
	}
	s.cfg.Logf(config.Verbose, "game %s removed", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) getMoves(c *fiber.Ctx) error {
	rank, file := c.Query("rank"), c.Query("file")
	if rank == "" && file == "" {
		var moves []game.PieceMoves
		err := s.games.With(c.Params("id"), func(g *game.Game) error {
			moves = newGameView(g).Moves
			return nil
		})
		if err != nil {
			return err
		}
		return c.JSON(moves)
	}

	from, err := parseCoord(rank, file)
	if err != nil {
		return err
	}
	view := movesView{From: from}
	err = s.games.With(c.Params("id"), func(g *game.Game) error {
		view.Moves, err = g.LegalMoves(from)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (s *Server) postMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid move body: "+err.Error())
	}

	var view moveView
	err := s.games.With(c.Params("id"), func(g *game.Game) error {
		result, err := g.Move(req.From, req.To, req.Promotion)
		if err != nil {
			return err
		}
		view = moveView{Result: result, State: g.State()}
		s.logMove(g.ID, result)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (s *Server) randomMove(c *fiber.Ctx) error {
	var view moveView
	err := s.games.With(c.Params("id"), func(g *game.Game) error {
		s.rngMu.Lock()
		result, err := g.RandomMove(s.rng)
		s.rngMu.Unlock()
		if err != nil {
			return err
		}
		view = moveView{Result: result, State: g.State()}
		s.logMove(g.ID, result)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (s *Server) getSnapshot(c *fiber.Ctx) error {
	var doc snapshot.Document
	err := s.games.With(c.Params("id"), func(g *game.Game) error {
		doc = g.Snapshot()
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// getBoard draws the position as text; ?unicode=true uses chess glyphs.
func (s *Server) getBoard(c *fiber.Ctx) error {
	var buf bytes.Buffer
	w := output.NewTextWriter(&buf)
	if c.QueryBool("unicode") {
		w = output.NewUnicodeWriter(&buf)
	}

	err := s.games.With(c.Params("id"), func(g *game.Game) error {
		return w.WriteBoard(g.Board(), g.ToMove())
	})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(buf.Bytes())
}

func (s *Server) logMove(id string, r *engine.MoveResult) {
	s.cfg.Logf(config.Verbose, "game %s: %s %s %v -> %v", id, r.Colour, r.Kind, r.From, r.To)
}

// parseCoord reads a square from query values.
func parseCoord(rank, file string) (chess.Coord, error) {
	r, errR := strconv.Atoi(rank)
	f, errF := strconv.Atoi(file)
	if errR != nil || errF != nil {
		return chess.Coord{}, fiber.NewError(fiber.StatusBadRequest, "rank and file must be integers")
	}
	c, ok := chess.NewCoord(r, f)
	if !ok {
		return chess.Coord{}, errors.Wrapf(errors.ErrOutOfBounds, "(%d,%d)", r, f)
	}
	return c, nil
}
