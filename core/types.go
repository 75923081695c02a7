// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Kind tag, opaque handles, arena slots, sentinel errors and the NewGraph constructor.
// Determinism:
//   - Every slot carries an insertion sequence; all listings are ordered by it.
// Concurrency:
//   - A single sync.RWMutex guards the whole store (writers: mutators, readers: queries).

package core

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnsetKind indicates NewGraph was called without a valid Kind.
	ErrUnsetKind = errors.New("core: graph kind is unset")

	// ErrUnknownKind indicates ParseKind received an unrecognized spelling.
	ErrUnknownKind = errors.New("core: unknown graph kind")

	// ErrNilValue indicates a nil node payload (nil pointer, channel or interface).
	ErrNilValue = errors.New("core: node value is nil")

	// ErrUnkeyableValue indicates a node payload that is not equal to itself
	// (a float NaN, or a struct or array holding one), so it can never be looked up.
	ErrUnkeyableValue = errors.New("core: node value is not equal to itself")

	// ErrStaleHandle indicates a zero, removed or foreign NodeRef/EdgeRef.
	ErrStaleHandle = errors.New("core: handle is absent or stale")

	// ErrNodeNotFound indicates a value lookup matched no node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an endpoint lookup matched no edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrCapabilityMismatch indicates a directional query on an Unoriented graph,
	// or a neighbor query on an Oriented graph.
	ErrCapabilityMismatch = errors.New("core: operation not supported by graph kind")
)

// Kind distinguishes directed (Oriented) from undirected (Unoriented) semantics.
// It is fixed for the lifetime of a Graph.
type Kind uint8

const (
	// KindUnset is the zero Kind; NewGraph rejects it.
	KindUnset Kind = iota
	// Oriented graphs treat an edge (a,b) as a→b only.
	Oriented
	// Unoriented graphs treat an edge (a,b) as a-b for every query.
	Unoriented
)

// String returns "oriented", "unoriented" or "unset".
func (k Kind) String() string {
	switch k {
	case Oriented:
		return "oriented"
	case Unoriented:
		return "unoriented"
	default:
		return "unset"
	}
}

// ParseKind maps "oriented"/"directed" and "unoriented"/"undirected"
// (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oriented", "directed":
		return Oriented, nil
	case "unoriented", "undirected":
		return Unoriented, nil
	default:
		return KindUnset, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// NodeRef is an opaque handle to a node owned by a Graph.
// The zero value is the absent handle.
type NodeRef struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether r is the absent handle.
func (r NodeRef) IsZero() bool { return r.gen == 0 }

// EdgeRef is an opaque handle to an edge owned by a Graph.
// The zero value is the absent handle.
type EdgeRef struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether r is the absent handle.
func (r EdgeRef) IsZero() bool { return r.gen == 0 }

// Weighter is the capability an edge payload needs for shortest-path search.
// Node payloads never need it.
type Weighter interface {
	Weight() float64
}

// Cost is a plain numeric edge payload.
type Cost float64

// Weight implements Weighter.
func (c Cost) Weight() float64 { return float64(c) }

// nodeSlot is one arena cell for a node. A dead slot keeps its generation so
// that handles issued before removal no longer resolve.
type nodeSlot[N comparable] struct {
	value N
	gen   uint32
	seq   uint64
	alive bool
	out   map[EdgeRef]struct{} // edges whose start is this node
	in    map[EdgeRef]struct{} // edges whose end is this node
}

// edgeSlot is one arena cell for an edge.
type edgeSlot[W any] struct {
	start    NodeRef
	end      NodeRef
	value    W
	hasValue bool
	gen      uint32
	seq      uint64
	alive    bool
}

// pairKey indexes edges by their ordered endpoints.
type pairKey struct {
	start NodeRef
	end   NodeRef
}

// Graph is an in-memory graph whose nodes carry payloads of type N and whose
// edges carry optional payloads of type W.
//
// Nodes and edges live in arenas owned by the Graph; callers only ever hold
// NodeRef/EdgeRef handles. A handle stops resolving once its entity is removed,
// even if the arena slot is later reused.
type Graph[N comparable, W any] struct {
	mu sync.RWMutex

	kind Kind

	nodes     []nodeSlot[N]
	edges     []edgeSlot[W]
	freeNodes []uint32
	freeEdges []uint32
	nextSeq   uint64

	byValue map[N]NodeRef
	byPair  map[pairKey]EdgeRef

	liveNodes int
	liveEdges int
}

// NewGraph creates an empty Graph of the given kind.
// Returns ErrUnsetKind unless kind is Oriented or Unoriented.
// Complexity: O(1).
func NewGraph[N comparable, W any](kind Kind) (*Graph[N, W], error) {
	if kind != Oriented && kind != Unoriented {
		return nil, ErrUnsetKind
	}

	return &Graph[N, W]{
		kind:    kind,
		byValue: make(map[N]NodeRef),
		byPair:  make(map[pairKey]EdgeRef),
	}, nil
}

// isNilValue reports whether v is a nil interface or a nil pointer-like value.
// Only kinds that satisfy `comparable` and can be nil are checked.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// nextGen advances a slot generation, skipping zero (reserved for absent handles).
func nextGen(gen uint32) uint32 {
	gen++
	if gen == 0 {
		gen = 1
	}

	return gen
}
