package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RulesConfig holds settings that change how games are played.
type RulesConfig struct {
	// DefaultPromotion fills in a missing promotion choice.
	// NoKind (the default) rejects a promotion without a choice.
	DefaultPromotion chess.Kind
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.DefaultPromotion != chess.NoKind && !r.DefaultPromotion.CanPromoteTo() {
		return fmt.Errorf("default promotion %s: %w", r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
