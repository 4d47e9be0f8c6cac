// SPDX-License-Identifier: MIT
// Package: rag
//
// options.go — functional options for NewGraph.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs
//     (nil functions, non-positive bounds). Graph methods never panic.
//   • Defaults are deterministic: 800×600 canvas, seed 1 placement RNG,
//     random UUID node IDs.

package rag

import (
	"math/rand"

	"github.com/google/uuid"
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// Deterministic defaults.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0

	// placementMargin keeps randomly placed nodes away from the border.
	placementMargin = 50.0

	// defaultSeed seeds the placement RNG when no option overrides it.
	defaultSeed int64 = 1
)

// WithBounds sets the canvas size. Panics if w or h is not positive.
func WithBounds(w, h float64) GraphOption {
	if w <= 0 || h <= 0 {
		panic("rag: WithBounds(w<=0 || h<=0)")
	}
	return func(g *Graph) {
		g.width, g.height = w, h
	}
}

// WithSeed seeds the RNG used for random node placement.
func WithSeed(seed int64) GraphOption {
	return func(g *Graph) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit placement RNG. Panics on nil.
func WithRand(r *rand.Rand) GraphOption {
	if r == nil {
		panic("rag: WithRand(nil)")
	}
	return func(g *Graph) {
		g.rng = r
	}
}

// WithIDFunc overrides node ID generation. Panics on nil.
// The function must return IDs unique within the graph.
func WithIDFunc(fn func() string) GraphOption {
	if fn == nil {
		panic("rag: WithIDFunc(nil)")
	}
	return func(g *Graph) {
		g.idFn = fn
	}
}

// defaultIDFunc returns random UUIDv4 strings.
func defaultIDFunc() string {
	return uuid.NewString()
}
