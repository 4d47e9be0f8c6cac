// SPDX-License-Identifier: MIT
// Package: lvdeadlock/simulator
//
// errors.go — sentinel errors and the game-over error type.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); GameOverError also matches
//     errors.Is(err, ErrGameOver) and carries the Reason via errors.As.
//   • Every rejected operation leaves the game state untouched.
//   • Context is attached with %w wrapping: "Execute: P2: <sentinel>".

package simulator

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProcessSelected indicates Execute was called with no pending selection.
	ErrNoProcessSelected = errors.New("simulator: no process selected")

	// ErrInsufficientResources indicates the selected process' need exceeds
	// the available vector. No state is mutated.
	ErrInsufficientResources = errors.New("simulator: insufficient resources")

	// ErrUnsafeTransition indicates the trial completion would leave the
	// system unsafe. The trial is discarded; no state is mutated.
	ErrUnsafeTransition = errors.New("simulator: transition leads to unsafe state")

	// ErrGameOver is matched by every *GameOverError.
	ErrGameOver = errors.New("simulator: game over")

	// ErrProcessCompleted indicates a completed process was selected.
	// The selection is unchanged; the presentation layer shows a warning.
	ErrProcessCompleted = errors.New("simulator: process already completed")

	// ErrProcessOutOfRange indicates a process index outside [0, P).
	ErrProcessOutOfRange = errors.New("simulator: process index out of range")

	// ErrLevelComplete indicates a gameplay action after the level was won.
	ErrLevelComplete = errors.New("simulator: level already complete")

	// ErrNotLevelComplete indicates NextLevel before the level was won.
	ErrNotLevelComplete = errors.New("simulator: level not complete")

	// ErrNoScenario indicates a gameplay action before any level was loaded.
	ErrNoScenario = errors.New("simulator: no scenario loaded")

	// ErrBadSettings indicates an invalid Settings value.
	ErrBadSettings = errors.New("simulator: invalid settings")

	// ErrBadLevel indicates a level number below 1.
	ErrBadLevel = errors.New("simulator: invalid level")
)

// Reason explains why a level ended in game over.
type Reason int

const (
	// ReasonNone means the game is not over.
	ReasonNone Reason = iota
	// ReasonTimeExpired means the countdown reached zero.
	ReasonTimeExpired
	// ReasonUnsafeState means CheckSafety found the current state unsafe.
	ReasonUnsafeState
)

// String returns a human-readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonTimeExpired:
		return "time expired"
	case ReasonUnsafeState:
		return "unsafe state"
	default:
		return "none"
	}
}

// GameOverError is returned by operations attempted in, or causing, the
// game-over phase.
type GameOverError struct {
	Reason Reason
}

// Error implements error.
func (e *GameOverError) Error() string {
	return fmt.Sprintf("%s: %s", ErrGameOver.Error(), e.Reason)
}

// Is makes errors.Is(err, ErrGameOver) true for every *GameOverError.
func (e *GameOverError) Is(target error) bool {
	return target == ErrGameOver
}
