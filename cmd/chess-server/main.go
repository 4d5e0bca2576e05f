// chess-server serves chess games over HTTP: create a game, ask which moves a
// piece may make, play moves and detect checkmate.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	closeLog := setupLogFile(cfg)
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *showBoard || *perftDepth > 0 {
		if err := runTools(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM.
func run(cfg *config.Config) error {
	srv := server.New(cfg)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Listen()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errc:
		return err
	case s := <-sig:
		cfg.Logf(config.Normal, "received %s", s)
		return srv.Shutdown()
	}
}

// setupLogFile configures the log file based on command-line flags and
// returns a function that closes it.
func setupLogFile(cfg *config.Config) func() {
	var file *os.File
	var err error

	switch {
	case *logFile != "":
		file, err = os.Create(*logFile)
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	default:
		return func() {}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}

	cfg.SetLogFile(file)
	return func() { _ = file.Close() }
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "An HTTP service that enforces the rules of chess.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEndpoints:\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games               start a game (optional {\"fen\": ...})\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/import        resume a saved snapshot\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id           game state, FEN and moves\n")
	fmt.Fprintf(os.Stderr, "  DELETE /api/games/:id           drop a game\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id/moves     moves (?rank=&file= for one piece)\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/moves     play {from, to, promotion}\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/random    play a random move\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id/snapshot  save the game\n")
}
