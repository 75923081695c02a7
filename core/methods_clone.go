// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves slots, generations and insertion sequences, so every
//     NodeRef/EdgeRef valid on the source resolves to the same entity on the clone.
// Concurrency:
//   - Clone holds the source read lock for the whole copy (a consistent snapshot).

package core

// Clone returns a deep copy of the Graph: kind, nodes, edges and free lists.
// Handles issued by g stay valid against the clone, which is what lets
// read-only algorithms work on a snapshot and report results in g's handles.
//
// Payloads are copied by value; pointer payloads are shared.
// Complexity: O(V + E).
func (g *Graph[N, W]) Clone() *Graph[N, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[N, W]{
		kind:      g.kind,
		nodes:     make([]nodeSlot[N], len(g.nodes)),
		edges:     make([]edgeSlot[W], len(g.edges)),
		freeNodes: append([]uint32(nil), g.freeNodes...),
		freeEdges: append([]uint32(nil), g.freeEdges...),
		nextSeq:   g.nextSeq,
		byValue:   make(map[N]NodeRef, len(g.byValue)),
		byPair:    make(map[pairKey]EdgeRef, len(g.byPair)),
		liveNodes: g.liveNodes,
		liveEdges: g.liveEdges,
	}
	copy(clone.edges, g.edges)
	for i := range g.nodes {
		src := &g.nodes[i]
		clone.nodes[i] = nodeSlot[N]{
			value: src.value,
			gen:   src.gen,
			seq:   src.seq,
			alive: src.alive,
			out:   copyEdgeSet(src.out),
			in:    copyEdgeSet(src.in),
		}
	}
	for v, r := range g.byValue {
		clone.byValue[v] = r
	}
	for k, r := range g.byPair {
		clone.byPair[k] = r
	}

	return clone
}

// Clear removes every node and edge while keeping the Kind.
// Generations survive so handles issued before Clear never resolve again.
func (g *Graph[N, W]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.freeNodes = g.freeNodes[:0]
	for i := range g.nodes {
		s := &g.nodes[i]
		var zero N
		s.value = zero
		s.alive = false
		s.out = nil
		s.in = nil
		g.freeNodes = append(g.freeNodes, uint32(i))
	}
	g.freeEdges = g.freeEdges[:0]
	for i := range g.edges {
		s := &g.edges[i]
		var zero W
		s.value = zero
		s.hasValue = false
		s.alive = false
		g.freeEdges = append(g.freeEdges, uint32(i))
	}
	g.byValue = make(map[N]NodeRef)
	g.byPair = make(map[pairKey]EdgeRef)
	g.liveNodes = 0
	g.liveEdges = 0
}

// copyEdgeSet duplicates an incidence set; nil stays nil.
func copyEdgeSet(src map[EdgeRef]struct{}) map[EdgeRef]struct{} {
	if src == nil {
		return nil
	}
	dst := make(map[EdgeRef]struct{}, len(src))
	for e := range src {
		dst[e] = struct{}{}
	}

	return dst
}
