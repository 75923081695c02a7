// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (snapshots restricted to a node subset).
// Determinism:
//   - Handles of kept entities are identical on the view and the source.
// Concurrency:
//   - Read lock on the source (through Clone); the result is a fresh graph.

package core

// InducedSubgraph returns a copy of g holding only nodes whose payload
// satisfies keep, and the edges whose endpoints are both kept. The input graph
// is not mutated, and handles of kept nodes and edges remain valid on the view.
//
// Complexity: O(V + E).
func InducedSubgraph[N comparable, W any](g *Graph[N, W], keep func(N) bool) *Graph[N, W] {
	out := g.Clone()
	if keep == nil {
		return out
	}

	out.mu.Lock()
	defer out.mu.Unlock()
	for _, r := range out.liveNodeRefs() {
		if keep(out.nodes[r.slot].value) {
			continue
		}
		out.removeNodeLocked(r)
	}

	return out
}
