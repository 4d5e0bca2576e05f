package config

import (
	"io"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithAddr sets the listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithTimeouts sets the per-request read and write timeouts.
func (b *ConfigBuilder) WithTimeouts(read, write time.Duration) *ConfigBuilder {
	b.cfg.Server.ReadTimeout = read
	b.cfg.Server.WriteTimeout = write
	return b
}

// WithMaxGames caps the number of live games.
func (b *ConfigBuilder) WithMaxGames(n int) *ConfigBuilder {
	b.cfg.Server.MaxGames = n
	return b
}

// WithDefaultPromotion sets the piece used when a promotion has no choice.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.DefaultPromotion = kind
	return b
}
