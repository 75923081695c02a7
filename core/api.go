// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: construction helpers and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// MustNewGraph is NewGraph for statically known kinds; it panics on ErrUnsetKind.
// Intended for package-level fixtures and examples.
func MustNewGraph[N comparable, W any](kind Kind) *Graph[N, W] {
	g, err := NewGraph[N, W](kind)
	if err != nil {
		panic(err)
	}

	return g
}

// Kind reports the construction-time kind. It never changes, so no lock is taken.
// Complexity: O(1).
func (g *Graph[N, W]) Kind() Kind {
	return g.kind
}

// Oriented reports whether g was built with the Oriented kind.
func (g *Graph[N, W]) Oriented() bool {
	return g.kind == Oriented
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Kind Kind
	// Order is the number of nodes.
	Order int
	// Size is the number of stored edges.
	Size int
	// ValuedEdges counts edges that carry a payload; BareEdges those that do not.
	ValuedEdges int
	BareEdges   int
	// MaxDegree is the largest node Degree.
	MaxDegree int
}

// Stats produces a consistent summary under a single read lock.
//
// Complexity:
//   - Time O(V + E), Space O(V) for the Unoriented neighbor sets.
func (g *Graph[N, W]) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Kind:  g.kind,
		Order: g.liveNodes,
		Size:  g.liveEdges,
	}
	for i := range g.edges {
		if !g.edges[i].alive {
			continue
		}
		if g.edges[i].hasValue {
			stats.ValuedEdges++
		} else {
			stats.BareEdges++
		}
	}
	for i := range g.nodes {
		if !g.nodes[i].alive {
			continue
		}
		if d := g.degree(NodeRef{slot: uint32(i), gen: g.nodes[i].gen}); d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
