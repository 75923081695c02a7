// Package datatoolkit is an in-memory graph store with a shortest-path
// engine on top of it.
//
// What is in here?
//
//	core/        generic Graph[N, W] store: Oriented or Unoriented kind,
//	             stable NodeRef/EdgeRef handles, kind-gated adjacency queries
//	dijkstra/    single-source shortest paths (scan or heap strategy)
//	graphio/     YAML graph documents <-> core.Graph[string, core.Cost]
//	cmd/lvpath/  command line front end: route, matrix, degree
//
// Guarantees:
//
//   - Thread-safe store: one RWMutex per graph, queries run concurrently.
//   - Deterministic: listings follow insertion order; the engine breaks
//     distance ties by insertion order too.
//   - Handles never resurrect: a removed node's slot is reused under a new
//     generation, so old handles report ErrStaleHandle.
//
// Quick ASCII example:
//
//	    A──2──B
//	     \    │
//	     10   3
//	       \  │
//	         C
//
//	Oriented A→B, B→C, A→C: Dijkstra from A gives C = 5 through B.
//
//	go get github.com/LugolBis/Data-Toolkit
package datatoolkit
