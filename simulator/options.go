// SPDX-License-Identifier: MIT
// Package: lvdeadlock/simulator
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs (nil RNG,
//     nil logger, invalid Settings). Game methods never panic on user input.
//   • Defaults: DefaultSettings(), DefaultCatalog(), seed-1 RNG, discard logger.

package simulator

import (
	"fmt"
	"log/slog"
	"math/rand"
)

// defaultSeed seeds generation when neither WithSeed nor WithRand is given.
const defaultSeed int64 = 1

// Option customises a Game.
type Option func(*config)

// config aggregates all knobs of a Game.
type config struct {
	settings Settings
	catalog  Catalog
	rng      *rand.Rand
	logger   *slog.Logger
}

// newConfig applies opts over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		settings: DefaultSettings(),
		catalog:  DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	return cfg
}

// WithSettings replaces the game constants. Panics if s is invalid.
func WithSettings(s Settings) Option {
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("simulator: WithSettings: %v", err))
	}
	return func(c *config) {
		c.settings = s
	}
}

// WithCatalog replaces the canned levels. A nil or empty catalog makes
// every level randomly generated. Panics if a level number is below 1 or
// a scenario is invalid.
func WithCatalog(cat Catalog) Option {
	for _, l := range cat.Levels() {
		if l < 1 {
			panic(fmt.Sprintf("simulator: WithCatalog: level %d: %v", l, ErrBadLevel))
		}
		if err := cat[l].Validate(); err != nil {
			panic(fmt.Sprintf("simulator: WithCatalog: level %d: %v", l, err))
		}
	}
	return func(c *config) {
		c.catalog = cat.Clone()
	}
}

// WithSeed seeds the RNG used for random levels.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for random levels. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("simulator: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
