// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep node names and weights as named constants (no magic values in test bodies).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LugolBis/Data-Toolkit/core"
)

// Common node payloads used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common weights used across core tests.
const (
	Weight1 core.Cost = 1
	Weight2 core.Cost = 2
	Weight3 core.Cost = 3
	Weight5 core.Cost = 5
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// graph is the payload combination used by most tests.
type graph = core.Graph[string, core.Cost]

// newGraph builds an empty graph of the given kind or fails the test.
func newGraph(t testing.TB, kind core.Kind) *graph {
	t.Helper()
	g, err := core.NewGraph[string, core.Cost](kind)
	require.NoError(t, err)

	return g
}

// mustNodes adds every name in order and returns the handles by name.
func mustNodes(t testing.TB, g *graph, names ...string) map[string]core.NodeRef {
	t.Helper()
	refs := make(map[string]core.NodeRef, len(names))
	for _, name := range names {
		r, err := g.AddNode(name)
		require.NoError(t, err, "AddNode(%s)", name)
		refs[name] = r
	}

	return refs
}

// mustEdge adds a weighted edge between two named nodes.
func mustEdge(t testing.TB, g *graph, n map[string]core.NodeRef, from, to string, w core.Cost) core.EdgeRef {
	t.Helper()
	e, err := g.AddWeightedEdge(n[from], n[to], w)
	require.NoError(t, err, "AddWeightedEdge(%s,%s)", from, to)

	return e
}

// values maps handles back to payloads for readable assertions.
func values(t testing.TB, g *graph, refs []core.NodeRef) []string {
	t.Helper()
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		v, err := g.Value(r)
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}

// triangle builds A,B,C with edges A→B(2), B→C(3), A→C(5).
func triangle(t testing.TB, kind core.Kind) (*graph, map[string]core.NodeRef) {
	t.Helper()
	g := newGraph(t, kind)
	n := mustNodes(t, g, NodeA, NodeB, NodeC)
	mustEdge(t, g, n, NodeA, NodeB, Weight2)
	mustEdge(t, g, n, NodeB, NodeC, Weight3)
	mustEdge(t, g, n, NodeA, NodeC, Weight5)

	return g, n
}
