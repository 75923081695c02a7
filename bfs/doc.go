// Package bfs implements breadth-first search over core.Graph.
//
// What:
//
//   - Hop distances (Depth), the BFS tree (Parent) and the visit Order from
//     a single start node. Edge payloads are ignored.
//   - Oriented graphs follow Successors; Unoriented graphs follow Neighbors.
//   - Neighbors are expanded in node insertion order, so the result is
//     deterministic.
//
// Options:
//
//   - WithContext: cancellation, checked once per dequeued node.
//   - WithMaxDepth: do not enqueue nodes deeper than d (0 = unlimited).
//   - WithFilterNeighbor: skip individual steps curr→neighbor.
//   - WithOnEnqueue / WithOnVisit: hooks; an OnVisit error aborts the search.
//
// Errors:
//
//   - ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation: invalid input.
//   - ErrNeighbors: the graph refused an adjacency query.
//   - ErrNotReached: Result.PathTo on a node outside the BFS tree.
//
// Complexity: O(V + E) time, O(V) extra space (plus the O(V + E) snapshot).
//
// Example:
//
//	res, err := bfs.BFS(g, a, bfs.WithMaxDepth(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Depth[c])
package bfs
