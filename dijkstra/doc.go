// Package dijkstra provides single-source shortest paths over core.Graph with
// non-negative edge weights.
//
// Overview:
//
//   - Dijkstra settles nodes in increasing distance from the source and relaxes
//     the remaining ones through each newly settled node.
//   - Edge weights are read from edge payloads through core.Weighter; node
//     payloads need no capability at all.
//   - The graph's Kind decides the lookup: Oriented graphs follow u→v only,
//     Unoriented graphs accept a stored v→u as well.
//
// Key features:
//
//   - Two strategies with identical results: StrategyScan (O(V²), the classic
//     array formulation, default) and StrategyHeap (lazy decrease-key heap).
//   - Deterministic tie-break: among equal tentative distances the node
//     inserted earliest into the graph settles first.
//   - Strict relaxation: equal-cost alternatives never replace a predecessor.
//   - Runs on a snapshot (core.Graph.Clone), so results are consistent even if
//     other goroutines keep mutating the graph.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrSourceNotFound:  absent, removed or foreign source handle.
//   - ErrNegativeWeight:  a payload reported a negative or NaN weight.
//   - ErrUnreachable:     Result.PathTo on a node with infinite distance.
//   - ErrUnknownStrategy: ParseStrategy with an unrecognized name.
//
// API reference:
//
//	func Dijkstra[N comparable, W core.Weighter](
//	    g *core.Graph[N, W],
//	    source core.NodeRef,
//	    opts ...Option,
//	) (*Result, error)
//
//	  - Result.Dist: every node → distance (math.Inf(1) when unreachable).
//	  - Result.Prev: reached node → predecessor; no entry for the source or
//	    for unreachable nodes.
//	  - Result.PathTo(n): source … n rebuilt from Prev.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, a, dijkstra.WithStrategy(dijkstra.StrategyHeap))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Distance(c))
package dijkstra
