// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Kind-gated neighborhood APIs (Successors, Predecessors, Neighbors),
//       degree queries and IncidentEdges.
// Determinism:
//   - Node listings are unique and ordered by insertion sequence.
// Concurrency:
//   - Read lock only.

package core

// Successors returns the distinct ends of edges starting at n.
//
// Errors:
//   - ErrCapabilityMismatch: the graph is Unoriented.
//   - ErrStaleHandle: n is absent or stale.
//
// Complexity: O(d log d).
func (g *Graph[N, W]) Successors(n NodeRef) ([]NodeRef, error) {
	if g.kind != Oriented {
		return nil, ErrCapabilityMismatch
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.node(n)
	if !ok {
		return nil, ErrStaleHandle
	}

	return g.collect(s.out, nil), nil
}

// Predecessors returns the distinct starts of edges ending at n.
//
// Errors:
//   - ErrCapabilityMismatch: the graph is Unoriented.
//   - ErrStaleHandle: n is absent or stale.
func (g *Graph[N, W]) Predecessors(n NodeRef) ([]NodeRef, error) {
	if g.kind != Oriented {
		return nil, ErrCapabilityMismatch
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.node(n)
	if !ok {
		return nil, ErrStaleHandle
	}

	return g.collect(nil, s.in), nil
}

// Neighbors returns the distinct nodes sharing an edge with n, whichever way
// the edge was stored. A self-loop makes n its own neighbor.
//
// Errors:
//   - ErrCapabilityMismatch: the graph is Oriented.
//   - ErrStaleHandle: n is absent or stale.
func (g *Graph[N, W]) Neighbors(n NodeRef) ([]NodeRef, error) {
	if g.kind != Unoriented {
		return nil, ErrCapabilityMismatch
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.node(n)
	if !ok {
		return nil, ErrStaleHandle
	}

	return g.collect(s.out, s.in), nil
}

// DegreeIn counts edges ending at n. Oriented graphs only.
func (g *Graph[N, W]) DegreeIn(n NodeRef) (int, error) {
	if g.kind != Oriented {
		return 0, ErrCapabilityMismatch
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.node(n)
	if !ok {
		return 0, ErrStaleHandle
	}

	return len(s.in), nil
}

// DegreeOut counts edges starting at n. Oriented graphs only.
func (g *Graph[N, W]) DegreeOut(n NodeRef) (int, error) {
	if g.kind != Oriented {
		return 0, ErrCapabilityMismatch
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.node(n)
	if !ok {
		return 0, ErrStaleHandle
	}

	return len(s.out), nil
}

// Degree returns in+out for Oriented graphs and the neighbor count for
// Unoriented graphs. An absent or stale n has degree 0.
func (g *Graph[N, W]) Degree(n NodeRef) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.degree(n)
}

// MaxDegree returns the largest Degree over all nodes (0 for an empty graph).
// Complexity: O(V + E).
func (g *Graph[N, W]) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := 0
	for i := range g.nodes {
		if !g.nodes[i].alive {
			continue
		}
		if d := g.degree(NodeRef{slot: uint32(i), gen: g.nodes[i].gen}); d > best {
			best = d
		}
	}

	return best
}

// IncidentEdges returns the edges a traversal may follow out of n: edges
// starting at n for Oriented graphs, every edge touching n for Unoriented
// graphs. Ordered by insertion sequence.
func (g *Graph[N, W]) IncidentEdges(n NodeRef) ([]EdgeRef, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.node(n)
	if !ok {
		return nil, ErrStaleHandle
	}
	out := make([]EdgeRef, 0, len(s.out)+len(s.in))
	for e := range s.out {
		out = append(out, e)
	}
	if g.kind == Unoriented {
		for e := range s.in {
			if _, loop := s.out[e]; loop {
				continue
			}
			out = append(out, e)
		}
	}
	g.sortEdges(out)

	return out, nil
}

// Internal helpers (callers hold the lock):
////////////////////

// degree implements Degree without locking.
func (g *Graph[N, W]) degree(n NodeRef) int {
	s, ok := g.node(n)
	if !ok {
		return 0
	}
	if g.kind == Oriented {
		return len(s.in) + len(s.out)
	}

	return len(g.collect(s.out, s.in))
}

// collect gathers the far endpoints of out (ends) and in (starts) relative to
// the queried node, de-duplicated and ordered by insertion sequence.
func (g *Graph[N, W]) collect(out, in map[EdgeRef]struct{}) []NodeRef {
	seen := make(map[NodeRef]struct{}, len(out)+len(in))
	for e := range out {
		seen[g.edges[e.slot].end] = struct{}{}
	}
	for e := range in {
		seen[g.edges[e.slot].start] = struct{}{}
	}
	refs := make([]NodeRef, 0, len(seen))
	for r := range seen {
		refs = append(refs, r)
	}
	g.sortNodes(refs)

	return refs
}
