// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source node to every
// other node of a graph with non-negative edge weights. Weights come from edge
// payloads through the core.Weighter capability; an absent edge, or an edge
// without a payload, costs +Inf.
//
// Complexity:
//
//   - StrategyScan: Time O(V²) lookups, Space O(V).
//   - StrategyHeap: Time O((V + E) log V), Space O(V + E).
//
// Notes on implementation choices:
//
//   - We run on g.Clone(), so concurrent writers cannot tear a run apart and
//     the caller's handles stay valid in the result.
//   - We perform an upfront scan of all payloads to detect negative weights and fail fast.
//   - Relaxation is strict (<): an equal-cost path never replaces a predecessor.
//   - Among equal tentative distances the earliest inserted node settles first.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"reflect"

	"github.com/LugolBis/Data-Toolkit/core"
)

// Dijkstra computes shortest distances and predecessors from source.
//
// Weight resolution for a settled u and a candidate v:
//
//   - Oriented graphs look up the edge u→v.
//   - Unoriented graphs look up u→v, then v→u.
//   - A missing edge, a missing payload or a nil pointer payload resolves
//     to +Inf (no relaxation).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must resolve in g (ErrSourceNotFound).
//  3. No payload may report a negative or NaN weight (ErrNegativeWeight).
//
// Returns a Result whose Dist covers every node (+Inf when unreachable) and
// whose Prev covers every reached node except the source.
func Dijkstra[N comparable, W core.Weighter](g *core.Graph[N, W], source core.NodeRef, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Freeze a snapshot; everything below reads only the snapshot.
	snap := g.Clone()
	if !snap.HasNode(source) {
		return nil, ErrSourceNotFound
	}

	// 4) Pre-scan payloads to detect negative weights.
	var e core.EdgeRef
	for _, e = range snap.Edges() {
		w, ok, err := snap.EdgeValue(e)
		if err != nil || !ok || isNilPayload(w) {
			continue
		}
		if x := w.Weight(); x < 0 || math.IsNaN(x) {
			return nil, fmt.Errorf("%w: edge %s weight=%v", ErrNegativeWeight, snap.FormatEdge(e), x)
		}
	}

	// 5) Initialize runner state and run the selected strategy.
	r := newRunner(snap, source)
	switch cfg.Strategy {
	case StrategyHeap:
		r.processHeap()
	default:
		r.processScan()
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable, W core.Weighter] struct {
	g       *core.Graph[N, W]             // snapshot; never mutated
	source  core.NodeRef                  // start of every path
	nodes   []core.NodeRef                // every node in insertion order
	rank    map[core.NodeRef]int          // position in nodes (tie-break)
	dist    map[core.NodeRef]float64      // current best distance from source
	prev    map[core.NodeRef]core.NodeRef // predecessor on the chosen path
	settled map[core.NodeRef]bool         // distance is final
}

// newRunner sets dist[v] = +Inf for every v and dist[source] = 0.
func newRunner[N comparable, W core.Weighter](g *core.Graph[N, W], source core.NodeRef) *runner[N, W] {
	nodes := g.Nodes()
	r := &runner[N, W]{
		g:       g,
		source:  source,
		nodes:   nodes,
		rank:    make(map[core.NodeRef]int, len(nodes)),
		dist:    make(map[core.NodeRef]float64, len(nodes)),
		prev:    make(map[core.NodeRef]core.NodeRef, len(nodes)),
		settled: make(map[core.NodeRef]bool, len(nodes)),
	}
	for i, v := range nodes {
		r.rank[v] = i
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0

	return r
}

// processScan settles one node per iteration by scanning all unsettled nodes
// for the minimum distance, then relaxes every other unsettled node.
// Stops early once the minimum is +Inf: the rest is unreachable.
func (r *runner[N, W]) processScan() {
	for range r.nodes {
		u, ok := r.pickMin()
		if !ok {
			return
		}
		r.settled[u] = true

		var v core.NodeRef
		for _, v = range r.nodes {
			if r.settled[v] {
				continue
			}
			r.relax(u, v)
		}
	}
}

// pickMin returns the unsettled node with the smallest finite distance,
// preferring the earliest inserted on ties.
func (r *runner[N, W]) pickMin() (core.NodeRef, bool) {
	best := core.NodeRef{}
	bestDist := math.Inf(1)
	var v core.NodeRef
	for _, v = range r.nodes {
		if r.settled[v] {
			continue
		}
		if d := r.dist[v]; d < bestDist {
			best, bestDist = v, d
		}
	}

	return best, !best.IsZero()
}

// processHeap is the priority-queue variant: pop the closest unsettled node,
// skip stale entries, relax only the edges incident to it.
func (r *runner[N, W]) processHeap() {
	pq := make(nodePQ, 0, len(r.nodes))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: r.source, dist: 0, rank: r.rank[r.source]})

	var (
		item  *nodeItem
		edges []core.EdgeRef
		e     core.EdgeRef
		err   error
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(*nodeItem)
		u := item.id
		if r.settled[u] || item.dist > r.dist[u] {
			continue
		}
		r.settled[u] = true

		// u is live in the snapshot, so only a bug could make this fail.
		if edges, err = r.g.IncidentEdges(u); err != nil {
			continue
		}
		for _, e = range edges {
			from, to, perr := r.g.Endpoints(e)
			if perr != nil {
				continue
			}
			v := to
			if to == u {
				v = from
			}
			if r.settled[v] {
				continue
			}
			if r.relax(u, v) {
				heap.Push(&pq, &nodeItem{id: v, dist: r.dist[v], rank: r.rank[v]})
			}
		}
	}
}

// relax tries to improve dist[v] through the settled node u.
// Reports whether dist[v] changed.
func (r *runner[N, W]) relax(u, v core.NodeRef) bool {
	w := r.weight(u, v)
	if math.IsInf(w, 1) {
		return false
	}
	nd := r.dist[u] + w
	if nd >= r.dist[v] {
		return false
	}
	r.dist[v] = nd
	r.prev[v] = u

	return true
}

// weight resolves the cost of stepping from u to v (see Dijkstra).
func (r *runner[N, W]) weight(u, v core.NodeRef) float64 {
	e, err := r.g.Edge(u, v)
	if err != nil {
		return math.Inf(1)
	}
	w, ok, err := r.g.EdgeValue(e)
	if err != nil || !ok || isNilPayload(w) {
		return math.Inf(1)
	}

	return w.Weight()
}

// isNilPayload reports whether a payload holds nothing to ask a weight from:
// a nil interface, or a nil pointer, map, slice, func or channel.
func isNilPayload(w any) bool {
	if w == nil {
		return true
	}
	rv := reflect.ValueOf(w)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// nodeItem represents a node and its tentative distance in the priority queue.
type nodeItem struct {
	id   core.NodeRef
	dist float64
	rank int // insertion position, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, rank).
// Stale entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion position.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].rank < pq[j].rank
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
