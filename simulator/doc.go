// SPDX-License-Identifier: MIT

// Package simulator implements the Banker's Algorithm game: a player picks
// processes one at a time and runs each to completion, and the game only
// accepts moves that keep the system in a safe state.
//
// What
//
//   - Game: the per-level state machine (Loaded → Running → LevelComplete or
//     GameOver) with score and countdown.
//   - Scenario / Catalog: level definitions, canned or loaded from YAML.
//   - Settings: timer, points and generation constants, loadable from YAML.
//   - GenerateScenario / Trim: random levels nudged towards safety.
//
// Determinism
//
//   - Random levels use an injected *rand.Rand (default seed 1).
//   - The countdown never runs by itself; the caller drives Tick once per
//     second (or faster in tests).
//
// Errors
//
//   - ErrNoProcessSelected, ErrInsufficientResources, ErrUnsafeTransition.
//   - *GameOverError, matching ErrGameOver, carrying ReasonTimeExpired or
//     ReasonUnsafeState.
//   - ErrProcessCompleted, ErrProcessOutOfRange, ErrLevelComplete,
//     ErrNotLevelComplete, ErrNoScenario, ErrBadSettings, ErrBadLevel.
//
// Every rejected operation leaves the game state unchanged.
//
// Example
//
//	g := simulator.New()
//	_, _ = g.LoadLevel(1)
//	_ = g.SelectProcess(1)
//	snap, err := g.Execute() // P1 completes, timer starts
package simulator
