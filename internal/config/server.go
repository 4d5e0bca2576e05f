package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Server defaults.
const (
	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultBodyLimit    = 64 * 1024
	DefaultMaxGames     = 1000
)

// ServerConfig holds settings for the HTTP game service.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AppName is reported in the Server header
	AppName string

	// ReadTimeout and WriteTimeout bound a single request
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// BodyLimit is the largest accepted request body in bytes
	BodyLimit int

	// MaxGames caps the number of live games (0 = unlimited)
	MaxGames int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         DefaultAddr,
		AppName:      "chessrules",
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		BodyLimit:    DefaultBodyLimit,
		MaxGames:     DefaultMaxGames,
	}
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	switch {
	case s.Addr == "":
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	case s.ReadTimeout < 0 || s.WriteTimeout < 0:
		return fmt.Errorf("negative timeout: %w", errors.ErrInvalidConfig)
	case s.BodyLimit <= 0:
		return fmt.Errorf("body limit (%d) must be positive: %w", s.BodyLimit, errors.ErrInvalidConfig)
	case s.MaxGames < 0:
		return fmt.Errorf("max games (%d) is negative: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
