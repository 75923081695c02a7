// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/RemoveNode/Node/Value/Nodes/Order.
// Determinism:
//   - Nodes() is ordered by insertion sequence.
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import "sort"

// AddNode registers a node carrying value and returns its handle.
//
// Re-adding a value equal (==) to a live node's payload is a no-op that returns
// the existing handle, so a store never holds two nodes with the same payload.
//
// Errors:
//   - ErrNilValue: value is a nil pointer, channel or interface.
//   - ErrUnkeyableValue: value != value, as with a NaN float.
//
// Complexity: O(1) amortized.
func (g *Graph[N, W]) AddNode(value N) (NodeRef, error) {
	if isNilValue(any(value)) {
		return NodeRef{}, ErrNilValue
	}
	if value != value {
		return NodeRef{}, ErrUnkeyableValue
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if ref, ok := g.byValue[value]; ok {
		return ref, nil
	}

	var idx uint32
	if n := len(g.freeNodes); n > 0 {
		idx = g.freeNodes[n-1]
		g.freeNodes = g.freeNodes[:n-1]
	} else {
		g.nodes = append(g.nodes, nodeSlot[N]{})
		idx = uint32(len(g.nodes) - 1)
	}

	s := &g.nodes[idx]
	s.value = value
	s.gen = nextGen(s.gen)
	s.seq = g.seq()
	s.alive = true
	s.out = nil
	s.in = nil

	ref := NodeRef{slot: idx, gen: s.gen}
	g.byValue[value] = ref
	g.liveNodes++

	return ref, nil
}

// RemoveNode deletes the node and every edge whose start or end it is.
// It reports false (and does nothing) when n is absent or stale.
// Complexity: O(deg(n)).
func (g *Graph[N, W]) RemoveNode(n NodeRef) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeNodeLocked(n)
}

// Node returns the handle of the live node whose payload equals value.
//
// Errors:
//   - ErrNodeNotFound: no node carries value.
//
// Complexity: O(1).
func (g *Graph[N, W]) Node(value N) (NodeRef, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ref, ok := g.byValue[value]
	if !ok {
		return NodeRef{}, ErrNodeNotFound
	}

	return ref, nil
}

// HasNode reports whether n resolves to a live node.
func (g *Graph[N, W]) HasNode(n NodeRef) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.node(n)

	return ok
}

// Value returns the payload of node n.
//
// Errors:
//   - ErrStaleHandle: n is absent or stale.
func (g *Graph[N, W]) Value(n NodeRef) (N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.node(n)
	if !ok {
		var zero N
		return zero, ErrStaleHandle
	}

	return s.value, nil
}

// Nodes returns every live node handle in insertion order.
// Complexity: O(V log V).
func (g *Graph[N, W]) Nodes() []NodeRef {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveNodeRefs()
}

// Order returns the number of live nodes.
func (g *Graph[N, W]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveNodes
}

// Seq returns the insertion sequence number of node n, or 0 when n is stale.
// Lower numbers were inserted earlier; algorithms use it as a stable tie-break.
func (g *Graph[N, W]) Seq(n NodeRef) uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.node(n)
	if !ok {
		return 0
	}

	return s.seq
}

// Internal helpers (callers hold the lock):
////////////////////

// node resolves a handle to its live slot.
func (g *Graph[N, W]) node(n NodeRef) (*nodeSlot[N], bool) {
	if n.gen == 0 || int(n.slot) >= len(g.nodes) {
		return nil, false
	}
	s := &g.nodes[n.slot]
	if !s.alive || s.gen != n.gen {
		return nil, false
	}

	return s, true
}

// removeNodeLocked implements RemoveNode; the caller holds the write lock.
func (g *Graph[N, W]) removeNodeLocked(n NodeRef) bool {
	s, ok := g.node(n)
	if !ok {
		return false
	}
	// Collect first: dropEdge mutates the incidence maps being ranged over.
	incident := make([]EdgeRef, 0, len(s.out)+len(s.in))
	for e := range s.out {
		incident = append(incident, e)
	}
	for e := range s.in {
		if _, loop := s.out[e]; loop {
			continue
		}
		incident = append(incident, e)
	}
	for _, e := range incident {
		g.dropEdge(e)
	}

	delete(g.byValue, s.value)
	var zero N
	s.value = zero
	s.alive = false
	s.out = nil
	s.in = nil
	g.freeNodes = append(g.freeNodes, n.slot)
	g.liveNodes--

	return true
}

// liveNodeRefs lists live nodes ordered by insertion sequence.
func (g *Graph[N, W]) liveNodeRefs() []NodeRef {
	out := make([]NodeRef, 0, g.liveNodes)
	for i := range g.nodes {
		if g.nodes[i].alive {
			out = append(out, NodeRef{slot: uint32(i), gen: g.nodes[i].gen})
		}
	}
	g.sortNodes(out)

	return out
}

// sortNodes orders handles by insertion sequence in place.
func (g *Graph[N, W]) sortNodes(refs []NodeRef) {
	sort.Slice(refs, func(i, j int) bool {
		return g.nodes[refs[i].slot].seq < g.nodes[refs[j].slot].seq
	})
}

// seq hands out the next insertion sequence number (starting at 1).
func (g *Graph[N, W]) seq() uint64 {
	g.nextSeq++

	return g.nextSeq
}
