// Package core provides a generic, thread-safe in-memory graph store whose
// edge semantics are selected at construction by a Kind tag.
//
// A Graph[N, W] owns every node and edge it holds. Nodes carry a comparable
// payload N; edges carry an optional payload W. Callers never see the stored
// entities, only opaque NodeRef/EdgeRef handles backed by arena slots with
// generation counters, so a handle kept after RemoveNode/RemoveEdge simply
// stops resolving instead of aliasing whatever reuses the slot.
//
// Kinds:
//
//   - Oriented:   edge (a,b) means a→b. Successors, Predecessors, DegreeIn and
//     DegreeOut are available; Neighbors is not.
//   - Unoriented: edge (a,b) means a-b. Neighbors is available; the
//     directional queries are not. Edge(a,b) also finds a stored (b,a).
//
// Capability-gated queries fail with ErrCapabilityMismatch instead of
// pretending: one type, one runtime tag, explicit checks.
//
// Identity:
//
//   - A node is identified by its payload under ==. AddNode with an equal
//     payload returns the existing handle.
//   - An edge is identified by its ordered endpoints. A second AddEdge on the
//     same ordered pair replaces the payload; there are no parallel edges.
//     In an Unoriented graph (a,b) and (b,a) are still two stored edges.
//
// Core methods:
//
//	// Construction
//	NewGraph[N, W](kind Kind) (*Graph[N, W], error)   // ErrUnsetKind
//
//	// Nodes
//	AddNode(v N) (NodeRef, error)                    // O(1), ErrNilValue, ErrUnkeyableValue
//	RemoveNode(n NodeRef) bool                       // O(deg n), cascades edges
//	Node(v N) (NodeRef, error)                       // O(1), ErrNodeNotFound
//	Value(n NodeRef) (N, error)
//	Nodes() []NodeRef                                // insertion order
//
//	// Edges
//	AddEdge(s, e NodeRef) (EdgeRef, error)           // no payload
//	AddWeightedEdge(s, e NodeRef, w W) (EdgeRef, error)
//	RemoveEdge(e EdgeRef) bool
//	Edge(s, e NodeRef) (EdgeRef, error)              // ErrEdgeNotFound
//	EdgeValue(e EdgeRef) (W, bool, error)
//	Edges() []EdgeRef                                // insertion order
//
//	// Neighborhoods and degrees
//	Successors / Predecessors(n) ([]NodeRef, error)  // Oriented only
//	Neighbors(n) ([]NodeRef, error)                  // Unoriented only
//	DegreeIn / DegreeOut(n) (int, error)             // Oriented only
//	Degree(n) int, MaxDegree() int
//
//	// Export and snapshots
//	Adjacency() *Adjacency[N, W]                     // dense |V|×|V| table
//	Clone() *Graph[N, W]                             // handles stay valid
//
// Errors:
//
//	ErrUnsetKind          – NewGraph without Oriented/Unoriented
//	ErrUnknownKind        – ParseKind spelling not recognized
//	ErrNilValue           – nil pointer/interface/channel node payload
//	ErrUnkeyableValue     – node payload not equal to itself (NaN)
//	ErrStaleHandle        – zero, removed or foreign handle
//	ErrNodeNotFound       – value lookup miss
//	ErrEdgeNotFound       – endpoint lookup miss
//	ErrCapabilityMismatch – query not offered by the graph's Kind
//
// Concurrency: a single sync.RWMutex serializes mutators; queries share the
// read lock. Algorithms that need a stable view for a long computation should
// work on Clone().
package core
