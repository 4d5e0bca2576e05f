// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Server options
	addr         = flag.String("addr", config.DefaultAddr, "Address to listen on")
	maxGames     = flag.Int("maxgames", config.DefaultMaxGames, "Maximum number of live games (0 = unlimited)")
	readTimeout  = flag.Duration("read-timeout", config.DefaultReadTimeout, "Per-request read timeout")
	writeTimeout = flag.Duration("write-timeout", config.DefaultWriteTimeout, "Per-request write timeout")

	// Rules options
	promote = flag.String("promote", "", "Piece used when a promotion names none: queen, rook, bishop, knight")

	// Offline tools: these print and exit instead of serving
	fenPosition = flag.String("fen", "", "Position for -board and -perft (default: initial position)")
	showBoard   = flag.Bool("board", false, "Print the position and exit")
	jsonOutput  = flag.Bool("J", false, "Print the position as a JSON snapshot (with -board)")
	unicode     = flag.Bool("unicode", false, "Draw pieces as chess glyphs (with -board)")
	perftDepth  = flag.Int("perft", 0, "Count positions N plies deep, per root move, and exit")
	workers     = flag.Int("workers", 0, "Number of perft worker threads (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics and access log to log file")
	appendLog = flag.String("L", "", "Append diagnostics and access log to log file")
	verbose   = flag.Bool("v", false, "Log every game event")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no startup or access log)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyServerFlags(cfg)
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
	return nil
}

// applyServerFlags configures the HTTP listener.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.MaxGames = *maxGames
	cfg.Server.ReadTimeout = *readTimeout
	cfg.Server.WriteTimeout = *writeTimeout
}

// applyRulesFlags configures rule defaults.
func applyRulesFlags(cfg *config.Config) error {
	if *promote == "" {
		cfg.Rules.DefaultPromotion = chess.NoKind
		return nil
	}
	kind, ok := chess.ParseKind(*promote)
	if !ok || !kind.CanPromoteTo() {
		return fmt.Errorf("-promote %q: want queen, rook, bishop or knight", *promote)
	}
	cfg.Rules.DefaultPromotion = kind
	return nil
}
