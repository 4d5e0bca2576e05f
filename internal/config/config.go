// Package config provides configuration for the chess rules service.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // nothing
	Normal  = 1 // startup and shutdown
	Verbose = 2 // running commentary on every game
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // see Quiet, Normal, Verbose

	// LogFile receives diagnostics and the HTTP access log.
	LogFile io.Writer

	Server *ServerConfig
	Rules  *RulesConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: Normal,
		LogFile:   os.Stderr,
		Server:    NewServerConfig(),
		Rules:     NewRulesConfig(),
	}
}

// SetLogFile sets the diagnostics writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line if the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Rules.Validate()
}
