// Package server exposes chess games over HTTP.
package server

import (
	stderrors "errors"
	"math/rand"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Server is the HTTP game service.
type Server struct {
	app   *fiber.App
	cfg   *config.Config
	games *Manager

	rng   *rand.Rand
	rngMu sync.Mutex
}

// Option configures a Server.
type Option func(*Server)

// WithSeed fixes the seed used for random moves.
func WithSeed(seed int64) Option {
	return func(s *Server) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// New builds a server from cfg. It does not start listening.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:   cfg,
		games: NewManager(cfg.Server.MaxGames),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.Server.AppName,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: cfg.Verbosity < config.Verbose,
		ErrorHandler:          s.handleError,
	})

	app.Use(recover.New())
	if cfg.LogFile != nil && cfg.Verbosity >= config.Normal {
		app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	s.routes(app)

	s.app = app
	return s
}

func (s *Server) routes(app *fiber.App) {
	games := app.Group("/api/games")
	games.Post("/", s.createGame)
	games.Post("/import", s.importGame)
	games.Get("/:id", s.getGame)
	games.Delete("/:id", s.deleteGame)
	games.Get("/:id/moves", s.getMoves)
	games.Post("/:id/moves", s.postMove)
	games.Post("/:id/random", s.randomMove)
	games.Get("/:id/snapshot", s.getSnapshot)
	games.Get("/:id/board", s.getBoard)
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Games returns the live-game manager.
func (s *Server) Games() *Manager {
	return s.games
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.cfg.Logf(config.Normal, "listening on %s", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the server, waiting for open requests.
func (s *Server) Shutdown() error {
	s.cfg.Logf(config.Normal, "shutting down with %d live games", s.games.Len())
	return s.app.Shutdown()
}

// handleError renders every error as {"error": message}.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		s.cfg.Logf(config.Normal, "%s %s: %+v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case stderrors.As(err, &fe):
		return fe.Code
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrGameExists), stderrors.Is(err, errors.ErrGameOver):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrTooManyGames):
		return fiber.StatusServiceUnavailable
	case stderrors.Is(err, errors.ErrIllegalMove),
		stderrors.Is(err, errors.ErrPromotionRequired),
		stderrors.Is(err, errors.ErrInvalidPromotion):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrOutOfBounds),
		stderrors.Is(err, errors.ErrInvalidFEN),
		stderrors.Is(err, errors.ErrInvalidSnapshot):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
