// Package cycle detects cycles in a resource-allocation graph treated as an
// undirected simple graph.
//
// What:
//
//   - Detect: depth-first traversal from every unvisited node (input order),
//     three-colour marking (White, Gray, Black) where the Gray nodes form the
//     recursion stack. The edge leading back to the immediate parent is
//     skipped, so a single edge is never reported as a 2-cycle. A Gray
//     neighbour closes a cycle: the closing edge plus every tree edge on the
//     stack between that neighbour and the current node are marked InCycle.
//   - Each closed cycle is recorded once, canonicalised to the minimal
//     rotation of itself or its reverse (Booth's algorithm), and the list is
//     sorted for deterministic output.
//
// Why:
//
//   - In a resource-allocation graph with single-instance resources a cycle
//     means processes wait on each other forever. Edge direction is kept by
//     the caller for rendering only; cycle semantics here are undirected.
//
// Guarantees:
//
//   - Result.InCycle[k] is true iff edge k lies on at least one cycle.
//   - Self loops, edges naming unknown nodes and repeated node pairs are
//     ignored (never marked). Detect never fails and never mutates input.
//
// Complexity:
//
//   - Traversal O(N+E); marking O(L) per back edge (L = cycle length).
//   - Memory O(N+E).
package cycle
