// SPDX-License-Identifier: MIT
// Package: lvdeadlock/simulator
//
// generate.go — random scenarios and safety trimming.
//
// Generation does not guarantee safety. Trim repairs a generated state by
// returning one instance of every positive allocation cell to available per
// round until the state is safe or the round budget runs out. A state can
// stay unsafe when some Max exceeds the total supply; such levels load in a
// best-effort state.

package simulator

import (
	"math/rand"

	"github.com/katalvlaran/lvdeadlock/banker"
)

// GenerateScenario draws a processes×resources scenario from rng:
//
//   - Max[i][j]        uniform in [1, s.MaxDemand]
//   - Allocation[i][j] uniform in [0, Max[i][j]]
//   - total[j]         uniform in [s.SupplyMin, s.SupplyMin+s.SupplySpread)
//   - Available[j]     = max(0, total[j] − Σ_i Allocation[i][j])
//
// Complexity: O(P·R).
func GenerateScenario(rng *rand.Rand, s Settings, processes, resources int) Scenario {
	mx := banker.NewMatrix(processes, resources)
	alloc := banker.NewMatrix(processes, resources)
	for i := 0; i < processes; i++ {
		for j := 0; j < resources; j++ {
			mx[i][j] = rng.Intn(s.MaxDemand) + 1
			alloc[i][j] = rng.Intn(mx[i][j] + 1)
		}
	}

	avail := make(banker.Vector, resources)
	for j := range avail {
		total := rng.Intn(s.SupplySpread) + s.SupplyMin
		if free := total - alloc.ColumnSum(j); free > 0 {
			avail[j] = free
		}
	}

	return Scenario{Max: mx, Allocation: alloc, Available: avail}
}

// Trim reduces allocations of sc in place until it is safe or budget rounds
// have run. Each round moves one instance of every positive allocation cell
// back to Available. It returns the number of rounds performed and whether
// the final state is safe.
//
// Complexity: O(budget · P²·R).
func Trim(sc *Scenario, budget int) (int, bool) {
	var rounds int
	for {
		if sc.Safety().Safe {
			return rounds, true
		}
		if rounds >= budget || !releaseOne(sc) {
			return rounds, false
		}
		rounds++
	}
}

// releaseOne returns one instance of every positive allocation cell to
// Available. Reports whether anything was released.
func releaseOne(sc *Scenario) bool {
	var moved bool
	for i := range sc.Allocation {
		for j := range sc.Allocation[i] {
			if sc.Allocation[i][j] > 0 {
				sc.Allocation[i][j]--
				sc.Available[j]++
				moved = true
			}
		}
	}

	return moved
}
