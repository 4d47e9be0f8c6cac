// Package lvdeadlock is an engine for teaching deadlock avoidance and
// detection: a Banker's Algorithm game and an interactive
// resource-allocation graph with live cycle detection.
//
// 🚀 What is inside?
//
//	banker/    — safety algorithm, need matrix, state validators
//	simulator/ — the level-based game: select, execute, timer, score
//	rag/       — process/resource graph on a 2-D canvas, wait-for reduction
//	cycle/     — undirected cycle marking and canonical cycle lists
//	scores/    — capped high score table persisted as YAML
//	cmd/       — lvdeadlock, the terminal companion
//
// ✨ Why this shape?
//
//   - No singletons: every game and graph is an explicit value
//   - Deterministic: seeded RNGs, and a countdown driven by Tick
//   - Atomic moves: a rejected execution never changes state
//
// Quick ASCII example (a deadlock):
//
//	    P0 ──▶ R0
//	    ▲       │
//	    │       ▼
//	    R1 ◀── P1
//
// P0 waits for R0 held by P1, which waits for R1 held by P0. Every edge of
// the square is marked as part of the cycle.
//
//	go install github.com/katalvlaran/lvdeadlock/cmd/lvdeadlock@latest
package lvdeadlock
