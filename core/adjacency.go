// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Dense |V|×|V| export of edge payloads keyed by node payload.
// Determinism:
//   - Rows and columns follow node insertion order; edges are applied in
//     insertion order, so on overlapping cells the later edge wins.
// Concurrency:
//   - Read lock only; the result shares nothing with the graph.

package core

// Cell is one optional entry of an adjacency export. Valid is false when
// there is no edge, or when the edge carries no payload.
type Cell[W any] struct {
	Value W
	Valid bool
}

// Adjacency is a dense adjacency table. Rows[Order[i]][j] describes the edge
// from Order[i] to Order[j].
type Adjacency[N comparable, W any] struct {
	// Order lists node payloads; it fixes the column order of every row.
	Order []N
	// Rows maps a node payload to its row of |V| cells.
	Rows map[N][]Cell[W]
}

// At returns the cell for the ordered pair (from, to), and false when either
// payload is not part of the export.
func (a *Adjacency[N, W]) At(from, to N) (Cell[W], bool) {
	row, ok := a.Rows[from]
	if !ok {
		return Cell[W]{}, false
	}
	for j, v := range a.Order {
		if v == to {
			return row[j], true
		}
	}

	return Cell[W]{}, false
}

// Adjacency builds the dense table with a single pass over the edges.
// For Unoriented graphs every edge fills both symmetric cells.
// Complexity: O(V² + E).
func (g *Graph[N, W]) Adjacency() *Adjacency[N, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	refs := g.liveNodeRefs()
	adj := &Adjacency[N, W]{
		Order: make([]N, len(refs)),
		Rows:  make(map[N][]Cell[W], len(refs)),
	}
	column := make(map[NodeRef]int, len(refs))
	for i, r := range refs {
		v := g.nodes[r.slot].value
		adj.Order[i] = v
		adj.Rows[v] = make([]Cell[W], len(refs))
		column[r] = i
	}

	var s *edgeSlot[W]
	for _, e := range g.liveEdgeRefs() {
		s = &g.edges[e.slot]
		cell := Cell[W]{Value: s.value, Valid: s.hasValue}
		from := g.nodes[s.start.slot].value
		to := g.nodes[s.end.slot].value
		adj.Rows[from][column[s.end]] = cell
		if g.kind == Unoriented {
			adj.Rows[to][column[s.start]] = cell
		}
	}

	return adj
}
