// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddWeightedEdge/RemoveEdge/Edge/Edges/Size,
//       payload accessors and FormatEdge.
// Determinism:
//   - Edges() is ordered by insertion sequence.
//   - At most one stored edge per ordered (start,end) pair; re-adding replaces the payload.
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge stores an edge start→end without a payload.
// See AddWeightedEdge for the replacement rule and errors.
func (g *Graph[N, W]) AddEdge(start, end NodeRef) (EdgeRef, error) {
	var zero W

	return g.putEdge(start, end, zero, false)
}

// AddWeightedEdge stores an edge start→end carrying value.
//
// Direction is always recorded, even in an Unoriented graph; it only stops
// mattering at query time. If an edge with the same ordered endpoints already
// exists its payload is replaced and its handle returned, so the store never
// holds parallel edges. (b,a) is a different ordered pair than (a,b).
//
// Errors:
//   - ErrStaleHandle: start or end is absent or stale.
//
// Complexity: O(1) amortized.
func (g *Graph[N, W]) AddWeightedEdge(start, end NodeRef, value W) (EdgeRef, error) {
	return g.putEdge(start, end, value, true)
}

// RemoveEdge deletes the edge. It reports false when e is absent or stale.
// Complexity: O(1).
func (g *Graph[N, W]) RemoveEdge(e EdgeRef) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edge(e); !ok {
		return false
	}
	g.dropEdge(e)

	return true
}

// Edge returns the edge connecting start and end.
//
// Oriented graphs match start→end exactly. Unoriented graphs try start→end
// first and fall back to end→start.
//
// Errors:
//   - ErrStaleHandle: start or end is absent or stale.
//   - ErrEdgeNotFound: no such edge.
//
// Complexity: O(1).
func (g *Graph[N, W]) Edge(start, end NodeRef) (EdgeRef, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.node(start); !ok {
		return EdgeRef{}, ErrStaleHandle
	}
	if _, ok := g.node(end); !ok {
		return EdgeRef{}, ErrStaleHandle
	}
	if e, ok := g.byPair[pairKey{start: start, end: end}]; ok {
		return e, nil
	}
	if g.kind == Unoriented {
		if e, ok := g.byPair[pairKey{start: end, end: start}]; ok {
			return e, nil
		}
	}

	return EdgeRef{}, ErrEdgeNotFound
}

// HasEdge reports whether Edge(start, end) would succeed.
func (g *Graph[N, W]) HasEdge(start, end NodeRef) bool {
	_, err := g.Edge(start, end)

	return err == nil
}

// Endpoints returns the stored (start, end) of e.
func (g *Graph[N, W]) Endpoints(e EdgeRef) (NodeRef, NodeRef, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.edge(e)
	if !ok {
		return NodeRef{}, NodeRef{}, ErrStaleHandle
	}

	return s.start, s.end, nil
}

// EdgeValue returns the payload of e. The bool is false when the edge was
// added without a payload.
func (g *Graph[N, W]) EdgeValue(e EdgeRef) (W, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var zero W
	s, ok := g.edge(e)
	if !ok {
		return zero, false, ErrStaleHandle
	}
	if !s.hasValue {
		return zero, false, nil
	}

	return s.value, true, nil
}

// SetEdgeValue attaches (or replaces) the payload of e.
func (g *Graph[N, W]) SetEdgeValue(e EdgeRef, value W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.edge(e)
	if !ok {
		return ErrStaleHandle
	}
	s.value = value
	s.hasValue = true

	return nil
}

// Edges returns every live edge handle in insertion order.
// Complexity: O(E log E).
func (g *Graph[N, W]) Edges() []EdgeRef {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveEdgeRefs()
}

// Size returns the number of stored edges. In an Unoriented graph holding
// both (a,b) and (b,a) this counts two.
func (g *Graph[N, W]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveEdges
}

// FormatEdge renders e as "(A)--< 2 >-->(B)", or "(A)------>(B)" when it has
// no payload. Stale handles render as "<stale edge>".
func (g *Graph[N, W]) FormatEdge(e EdgeRef) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.edge(e)
	if !ok {
		return "<stale edge>"
	}
	from := g.nodes[s.start.slot].value
	to := g.nodes[s.end.slot].value
	if s.hasValue {
		return fmt.Sprintf("(%v)--< %v >-->(%v)", from, s.value, to)
	}

	return fmt.Sprintf("(%v)------>(%v)", from, to)
}

// Internal helpers (callers hold the lock unless stated):
////////////////////

// putEdge inserts or replaces the edge start→end. Takes the write lock.
func (g *Graph[N, W]) putEdge(start, end NodeRef, value W, hasValue bool) (EdgeRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.node(start)
	if !ok {
		return EdgeRef{}, ErrStaleHandle
	}
	to, ok := g.node(end)
	if !ok {
		return EdgeRef{}, ErrStaleHandle
	}

	key := pairKey{start: start, end: end}
	if ref, exists := g.byPair[key]; exists {
		s := &g.edges[ref.slot]
		s.value = value
		s.hasValue = hasValue

		return ref, nil
	}

	var idx uint32
	if n := len(g.freeEdges); n > 0 {
		idx = g.freeEdges[n-1]
		g.freeEdges = g.freeEdges[:n-1]
	} else {
		g.edges = append(g.edges, edgeSlot[W]{})
		idx = uint32(len(g.edges) - 1)
	}
	s := &g.edges[idx]
	s.start = start
	s.end = end
	s.value = value
	s.hasValue = hasValue
	s.gen = nextGen(s.gen)
	s.seq = g.seq()
	s.alive = true

	ref := EdgeRef{slot: idx, gen: s.gen}
	g.byPair[key] = ref
	if from.out == nil {
		from.out = make(map[EdgeRef]struct{})
	}
	from.out[ref] = struct{}{}
	if to.in == nil {
		to.in = make(map[EdgeRef]struct{})
	}
	to.in[ref] = struct{}{}
	g.liveEdges++

	return ref, nil
}

// edge resolves a handle to its live slot.
func (g *Graph[N, W]) edge(e EdgeRef) (*edgeSlot[W], bool) {
	if e.gen == 0 || int(e.slot) >= len(g.edges) {
		return nil, false
	}
	s := &g.edges[e.slot]
	if !s.alive || s.gen != e.gen {
		return nil, false
	}

	return s, true
}

// dropEdge unlinks a live edge from the pair index and both endpoints.
func (g *Graph[N, W]) dropEdge(e EdgeRef) {
	s := &g.edges[e.slot]
	delete(g.byPair, pairKey{start: s.start, end: s.end})
	if from, ok := g.node(s.start); ok {
		delete(from.out, e)
	}
	if to, ok := g.node(s.end); ok {
		delete(to.in, e)
	}

	var zero W
	s.value = zero
	s.hasValue = false
	s.alive = false
	s.start = NodeRef{}
	s.end = NodeRef{}
	g.freeEdges = append(g.freeEdges, e.slot)
	g.liveEdges--
}

// liveEdgeRefs lists live edges ordered by insertion sequence.
func (g *Graph[N, W]) liveEdgeRefs() []EdgeRef {
	out := make([]EdgeRef, 0, g.liveEdges)
	for i := range g.edges {
		if g.edges[i].alive {
			out = append(out, EdgeRef{slot: uint32(i), gen: g.edges[i].gen})
		}
	}
	g.sortEdges(out)

	return out
}

// sortEdges orders handles by insertion sequence in place.
func (g *Graph[N, W]) sortEdges(refs []EdgeRef) {
	sort.Slice(refs, func(i, j int) bool {
		return g.edges[refs[i].slot].seq < g.edges[refs[j].slot].seq
	})
}
