package main

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreDuration(ptr *time.Duration, val time.Duration) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyServerFlags(t *testing.T) {
	defer saveRestoreString(addr, "127.0.0.1:9000")()
	defer saveRestoreInt(maxGames, 5)()
	defer saveRestoreDuration(readTimeout, 3*time.Second)()
	defer saveRestoreDuration(writeTimeout, 4*time.Second)()

	cfg := config.NewConfig()
	applyServerFlags(cfg)

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q; want 127.0.0.1:9000", cfg.Server.Addr)
	}
	if cfg.Server.MaxGames != 5 {
		t.Errorf("MaxGames = %d; want 5", cfg.Server.MaxGames)
	}
	if cfg.Server.ReadTimeout != 3*time.Second || cfg.Server.WriteTimeout != 4*time.Second {
		t.Errorf("timeouts = %v/%v; want 3s/4s", cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	}
}

func TestApplyRulesFlags(t *testing.T) {
	tests := []struct {
		name    string
		promote string
		want    chess.Kind
		wantErr bool
	}{
		{"unset", "", chess.NoKind, false},
		{"queen", "queen", chess.Queen, false},
		{"letter", "N", chess.Knight, false},
		{"pawn", "pawn", chess.NoKind, true},
		{"king", "k", chess.NoKind, true},
		{"nonsense", "dragon", chess.NoKind, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(promote, tt.promote)()
			cfg := config.NewConfig()
			err := applyRulesFlags(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyRulesFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if cfg.Rules.DefaultPromotion != tt.want {
				t.Errorf("DefaultPromotion = %v; want %v", cfg.Rules.DefaultPromotion, tt.want)
			}
		})
	}
}

func TestApplyFlagsVerbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, config.Normal},
		{"verbose", false, true, config.Verbose},
		{"quiet", true, false, config.Quiet},
		{"quiet wins", true, true, config.Quiet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags() error = %v", err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestFlagsProduceInvalidConfig(t *testing.T) {
	defer saveRestoreInt(maxGames, -1)()

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if err := cfg.Validate(); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v; want ErrInvalidConfig", err)
	}
}
