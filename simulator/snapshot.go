// SPDX-License-Identifier: MIT
package simulator

import "github.com/katalvlaran/lvdeadlock/banker"

// Snapshot is a read-only copy of the game state for rendering.
// Mutating it never affects the Game.
type Snapshot struct {
	Level         int
	Phase         Phase
	Reason        Reason
	Max           banker.Matrix
	Allocation    banker.Matrix
	Need          banker.Matrix
	Available     banker.Vector
	Safe          bool
	SafeSequence  []int
	Completed     []bool
	Selected      int // -1 when nothing is pending
	Score         int
	LevelBonus    int
	TimeRemaining int
	TimerRunning  bool
	Processes     int
	Resources     int
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Level:         g.level,
		Phase:         g.phase,
		Reason:        g.reason,
		Max:           g.max.Clone(),
		Allocation:    g.allocation.Clone(),
		Need:          g.need.Clone(),
		Available:     g.available.Clone(),
		Safe:          g.safety.Safe,
		SafeSequence:  append([]int(nil), g.safety.Sequence...),
		Completed:     g.Completed(),
		Selected:      g.selected,
		Score:         g.score,
		LevelBonus:    g.bonus,
		TimeRemaining: g.time,
		TimerRunning:  g.timerRunning,
		Processes:     g.max.Rows(),
		Resources:     g.max.Cols(),
	}
}

// IsCompleted reports whether process i finished.
func (s Snapshot) IsCompleted(i int) bool {
	return i >= 0 && i < len(s.Completed) && s.Completed[i]
}

// Remaining returns the number of unfinished processes.
func (s Snapshot) Remaining() int {
	n := 0
	for _, c := range s.Completed {
		if !c {
			n++
		}
	}

	return n
}
