// SPDX-License-Identifier: MIT
// File: game.go
// Role: The Banker's Algorithm game loop for one player.
//
// State machine per level:
//
//	Loaded ──first successful Execute──▶ Running ──all processes done──▶ LevelComplete
//	   │                                    │
//	   └────────── CheckSafety unsafe ──────┴── Tick reaches zero ─────▶ GameOver
//
// Concurrency:
//   - A Game is owned by one caller (the presentation layer's event loop).
//     It holds no locks and starts no goroutines; the countdown advances
//     only through Tick, driven by an external scheduler.
//
// Atomicity:
//   - Execute builds its trial on copies and commits by swapping them in,
//     so a rejected execution leaves every matrix value-identical.

package simulator

import (
	"fmt"

	"github.com/katalvlaran/lvdeadlock/banker"
)

// noSelection marks the absence of a pending process.
const noSelection = -1

// Phase is the level lifecycle stage.
type Phase int

const (
	// PhaseLoaded: scenario installed, timer armed but not started.
	PhaseLoaded Phase = iota
	// PhaseRunning: at least one process executed, timer counting down.
	PhaseRunning
	// PhaseLevelComplete: every process finished.
	PhaseLevelComplete
	// PhaseGameOver: time expired or the state was found unsafe.
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "loaded"
	case PhaseRunning:
		return "running"
	case PhaseLevelComplete:
		return "level complete"
	case PhaseGameOver:
		return "game over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Game is the stateful Allocation Simulator.
type Game struct {
	cfg config

	// Session
	level      int
	score      int
	levelStart int // score when the current level was loaded

	// Level
	phase        Phase
	reason       Reason
	loaded       bool
	time         int
	timerStarted bool
	timerRunning bool
	bonus        int

	// Matrix state; need is always ComputeNeed(max, allocation).
	max        banker.Matrix
	allocation banker.Matrix
	need       banker.Matrix
	available  banker.Vector
	safety     banker.SafetyResult

	completed []bool
	done      int
	selected  int
}

// New creates a Game with no level loaded. Call Reset, LoadLevel or Load
// before playing.
func New(opts ...Option) *Game {
	return &Game{
		cfg:      newConfig(opts...),
		level:    1,
		selected: noSelection,
	}
}

// Settings returns the active game constants.
func (g *Game) Settings() Settings { return g.cfg.settings }

// Reset starts a new session: level 1, score 0.
func (g *Game) Reset() (Snapshot, error) {
	g.score = 0

	return g.LoadLevel(1)
}

// LoadLevel loads level: the catalog scenario when present, otherwise a
// random one trimmed towards safety. The countdown is Settings.TimerFor(level).
func (g *Game) LoadLevel(level int) (Snapshot, error) {
	if level < 1 {
		return Snapshot{}, fmt.Errorf("LoadLevel(%d): %w", level, ErrBadLevel)
	}

	sc, ok := g.cfg.catalog[level]
	if ok {
		sc = sc.Clone()
	} else {
		sc = g.generate(level)
	}

	snap, err := g.load(sc, level)
	if err != nil {
		return Snapshot{}, fmt.Errorf("LoadLevel(%d): %w", level, err)
	}

	return snap, nil
}

// generate draws and trims a random scenario for level.
func (g *Game) generate(level int) Scenario {
	s := g.cfg.settings
	sc := GenerateScenario(g.cfg.rng, s, s.ProcessesFor(level), s.Resources)
	sc.Level = level
	sc.Description = fmt.Sprintf("Generated scenario for level %d", level)

	rounds, safe := Trim(&sc, s.RetryBudget)
	log := g.cfg.logger.With("level", level, "rounds", rounds)
	if safe {
		log.Debug("generated scenario trimmed to safe state")
	} else {
		// Known limitation: the level loads best-effort and may be unwinnable.
		log.Warn("generated scenario still unsafe after retry budget", "budget", s.RetryBudget)
	}

	return sc
}

// Load installs sc as the current level's state. sc is validated and deep
// copied; safety is evaluated for display only. Completion, selection and
// the countdown are reset; the timer is armed but not started. The level
// number is kept. An invalid sc leaves the game untouched.
func (g *Game) Load(sc Scenario) (Snapshot, error) {
	return g.load(sc, g.level)
}

// load validates sc and only then switches the game to level.
func (g *Game) load(sc Scenario, level int) (Snapshot, error) {
	if err := sc.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("Load: %w", err)
	}

	g.level = level
	g.max = sc.Max.Clone()
	g.allocation = sc.Allocation.Clone()
	g.available = sc.Available.Clone()
	g.need = banker.ComputeNeed(g.max, g.allocation)
	g.safety = banker.FindSafeSequence(g.allocation, g.need, g.available)

	g.completed = make([]bool, g.max.Rows())
	g.done = 0
	g.selected = noSelection
	g.phase = PhaseLoaded
	g.reason = ReasonNone
	g.loaded = true
	g.time = g.cfg.settings.TimerFor(g.level)
	g.timerStarted = false
	g.timerRunning = false
	g.bonus = 0
	g.levelStart = g.score

	g.cfg.logger.Info("level loaded",
		"level", g.level,
		"processes", g.max.Rows(),
		"resources", g.max.Cols(),
		"safe", g.safety.Safe,
		"sequence", g.safety.Sequence)

	return g.Snapshot(), nil
}

// playable returns the error for gameplay actions in the current phase.
func (g *Game) playable() error {
	switch {
	case !g.loaded:
		return ErrNoScenario
	case g.phase == PhaseGameOver:
		return &GameOverError{Reason: g.reason}
	case g.phase == PhaseLevelComplete:
		return ErrLevelComplete
	}

	return nil
}

// SelectProcess records i as the pending process, replacing any previous
// selection. A completed process is rejected with ErrProcessCompleted and
// leaves the selection unchanged.
func (g *Game) SelectProcess(i int) error {
	if err := g.playable(); err != nil {
		return fmt.Errorf("SelectProcess(%d): %w", i, err)
	}
	if i < 0 || i >= len(g.completed) {
		return fmt.Errorf("SelectProcess(%d): %w", i, ErrProcessOutOfRange)
	}
	if g.completed[i] {
		return fmt.Errorf("SelectProcess(%d): %w", i, ErrProcessCompleted)
	}
	g.selected = i

	return nil
}

// ClearSelection drops the pending selection, if any.
func (g *Game) ClearSelection() {
	g.selected = noSelection
}

// Execute runs the pending process to completion if that keeps the system
// safe.
//
// Steps:
//  1. Require a pending selection (ErrNoProcessSelected).
//  2. Require need[i] <= available (ErrInsufficientResources).
//  3. Trial on copies: allocation[i] += need[i], available −= need[i];
//     then release: available += allocation[i], allocation[i] = 0.
//  4. Safety check on the trial with need recomputed from the trial
//     allocation; unsafe → ErrUnsafeTransition, nothing changes.
//  5. Commit, mark i completed, award points, clear the selection, start
//     the timer on the level's first success.
//  6. All processes completed → PhaseLevelComplete plus the time bonus.
//
// Complexity: O(P²·R).
func (g *Game) Execute() (Snapshot, error) {
	if err := g.playable(); err != nil {
		return Snapshot{}, fmt.Errorf("Execute: %w", err)
	}
	// 1) Pending selection.
	i := g.selected
	if i == noSelection {
		return Snapshot{}, fmt.Errorf("Execute: %w", ErrNoProcessSelected)
	}
	log := g.cfg.logger.With("level", g.level, "process", i)

	// 2) Remaining need must fit.
	need := g.need.Row(i)
	if !need.LessEq(g.available) {
		log.Debug("execute rejected", "reason", "insufficient", "need", need, "available", g.available)
		return Snapshot{}, fmt.Errorf("Execute: P%d: %w", i, ErrInsufficientResources)
	}

	// 3) Trial transition on copies.
	trialAlloc := g.allocation.Clone()
	trialAvail := g.available.Clone()
	banker.Vector(trialAlloc[i]).AddInPlace(need)
	trialAvail.SubInPlace(need)
	trialAvail.AddInPlace(trialAlloc[i])
	for j := range trialAlloc[i] {
		trialAlloc[i][j] = 0
	}

	// 4) Safety of the post-trial state.
	trialNeed := banker.ComputeNeed(g.max, trialAlloc)
	safety := banker.FindSafeSequence(trialAlloc, trialNeed, trialAvail)
	if !safety.Safe {
		log.Debug("execute rejected", "reason", "unsafe", "partial", safety.Sequence)
		return Snapshot{}, fmt.Errorf("Execute: P%d: %w", i, ErrUnsafeTransition)
	}

	// 5) Commit.
	g.allocation, g.available, g.need, g.safety = trialAlloc, trialAvail, trialNeed, safety
	g.completed[i] = true
	g.done++
	g.score += g.cfg.settings.PointsPerExecution
	g.selected = noSelection
	if !g.timerStarted {
		g.timerStarted = true
		g.timerRunning = true
		g.phase = PhaseRunning
	}
	log.Info("process completed", "score", g.score, "completed", g.done)

	// 6) Level complete.
	if g.done == len(g.completed) {
		g.completeLevel()
	}

	return g.Snapshot(), nil
}

// completeLevel awards the time bonus and stops the timer.
func (g *Game) completeLevel() {
	g.bonus = g.time * g.cfg.settings.TimeBonus
	g.score += g.bonus
	g.phase = PhaseLevelComplete
	g.timerRunning = false
	g.cfg.logger.Info("level complete", "level", g.level, "bonus", g.bonus, "score", g.score)
}

// Tick advances the countdown by one unit while the timer runs. When the
// countdown reaches zero the level ends in game over and Tick reports
// (ReasonTimeExpired, true). Otherwise it reports (ReasonNone, false).
// Ticks before the first successful Execute, after Stop, or in a terminal
// phase are ignored.
func (g *Game) Tick() (Reason, bool) {
	if !g.timerRunning || g.phase != PhaseRunning {
		return ReasonNone, false
	}
	g.time--
	if g.time > 0 {
		return ReasonNone, false
	}
	g.time = 0
	g.gameOver(ReasonTimeExpired)

	return ReasonTimeExpired, true
}

// gameOver enters the terminal phase.
func (g *Game) gameOver(r Reason) {
	g.phase = PhaseGameOver
	g.reason = r
	g.timerRunning = false
	g.selected = noSelection
	g.cfg.logger.Info("game over", "level", g.level, "reason", r.String(), "score", g.score)
}

// CheckSafety re-evaluates the current state. An unsafe state ends the
// level with ReasonUnsafeState and returns a *GameOverError alongside the
// result. In a game-over phase the result is returned with that phase's
// *GameOverError.
func (g *Game) CheckSafety() (banker.SafetyResult, error) {
	if !g.loaded {
		return banker.SafetyResult{}, fmt.Errorf("CheckSafety: %w", ErrNoScenario)
	}
	g.safety = banker.FindSafeSequence(g.allocation, g.need, g.available)
	res := cloneSafety(g.safety)

	if g.phase == PhaseGameOver {
		return res, &GameOverError{Reason: g.reason}
	}
	if !res.Safe && g.phase != PhaseLevelComplete {
		g.gameOver(ReasonUnsafeState)
		return res, &GameOverError{Reason: ReasonUnsafeState}
	}

	return res, nil
}

// NextLevel loads the following level. Only valid in PhaseLevelComplete.
func (g *Game) NextLevel() (Snapshot, error) {
	if g.phase != PhaseLevelComplete {
		return Snapshot{}, fmt.Errorf("NextLevel: %w", ErrNotLevelComplete)
	}

	return g.LoadLevel(g.level + 1)
}

// RestartLevel reloads the current level (same canned scenario, or a new
// random draw) and restores the score to its value when the level began.
func (g *Game) RestartLevel() (Snapshot, error) {
	g.score = g.levelStart

	return g.LoadLevel(g.level)
}

// Stop disarms the countdown, for when the presentation layer leaves the
// level. Resume re-arms it.
func (g *Game) Stop() {
	g.timerRunning = false
}

// Resume re-arms a countdown stopped by Stop. It has no effect before the
// first successful Execute or in a terminal phase.
func (g *Game) Resume() {
	g.timerRunning = g.timerStarted && g.phase == PhaseRunning
}

// Level returns the current level number.
func (g *Game) Level() int { return g.level }

// Score returns the session score, the value to record at game over.
func (g *Game) Score() int { return g.score }

// Phase returns the lifecycle stage of the current level.
func (g *Game) Phase() Phase { return g.phase }

// Reason returns why the game ended, or ReasonNone.
func (g *Game) Reason() Reason { return g.reason }

// TimeRemaining returns the countdown value.
func (g *Game) TimeRemaining() int { return g.time }

// TimerRunning reports whether Tick currently advances the countdown.
func (g *Game) TimerRunning() bool { return g.timerRunning }

// Selected returns the pending process and whether one exists.
func (g *Game) Selected() (int, bool) {
	return g.selected, g.selected != noSelection
}

// Completed returns a copy of the per-process completion flags.
func (g *Game) Completed() []bool {
	return append([]bool(nil), g.completed...)
}

// LevelBonus returns the time bonus awarded when the level completed.
func (g *Game) LevelBonus() int { return g.bonus }

// cloneSafety copies r so callers cannot alias game state.
func cloneSafety(r banker.SafetyResult) banker.SafetyResult {
	return banker.SafetyResult{Safe: r.Safe, Sequence: append([]int(nil), r.Sequence...)}
}
