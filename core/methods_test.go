// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in node/edge lifecycle rules, kind-gated queries and degree identities.
//   - Provide ordering anchors (insertion order) for listings and exports.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LugolBis/Data-Toolkit/core"
)

func TestGraph_AddNode(t *testing.T) {
	g := newGraph(t, core.Oriented)

	a, err := g.AddNode(NodeA)
	require.NoError(t, err)
	require.True(t, g.HasNode(a))
	require.Equal(t, 1, g.Order())

	// Equal payload is the same node.
	again, err := g.AddNode(NodeA)
	require.NoError(t, err)
	require.Equal(t, a, again)
	require.Equal(t, 1, g.Order())

	v, err := g.Value(a)
	require.NoError(t, err)
	require.Equal(t, NodeA, v)
}

func TestGraph_AddNode_NilPayload(t *testing.T) {
	type payload struct{ name string }
	g, err := core.NewGraph[*payload, core.Cost](core.Oriented)
	require.NoError(t, err)

	_, err = g.AddNode(nil)
	require.ErrorIs(t, err, core.ErrNilValue)
	require.Equal(t, 0, g.Order())

	_, err = g.AddNode(&payload{name: "ok"})
	require.NoError(t, err)

	ig, err := core.NewGraph[any, core.Cost](core.Unoriented)
	require.NoError(t, err)
	_, err = ig.AddNode(nil)
	require.ErrorIs(t, err, core.ErrNilValue)
}

func TestGraph_AddNode_NaNIsRejected(t *testing.T) {
	g, err := core.NewGraph[float64, core.Cost](core.Oriented)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = g.AddNode(math.NaN())
		require.ErrorIs(t, err, core.ErrUnkeyableValue)
	}
	require.Equal(t, 0, g.Order())

	_, err = g.Node(math.NaN())
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	// Inf equals itself and stays a regular key.
	inf, err := g.AddNode(math.Inf(1))
	require.NoError(t, err)
	again, err := g.AddNode(math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, inf, again)

	type point struct{ x, y float64 }
	pg := core.MustNewGraph[point, core.Cost](core.Unoriented)
	_, err = pg.AddNode(point{x: 1, y: math.NaN()})
	require.ErrorIs(t, err, core.ErrUnkeyableValue)
}

func TestGraph_NodeLookup(t *testing.T) {
	g := newGraph(t, core.Unoriented)
	n := mustNodes(t, g, NodeA, NodeB)

	got, err := g.Node(NodeB)
	require.NoError(t, err)
	require.Equal(t, n[NodeB], got)

	_, err = g.Node(NodeX)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_RemoveNode_Cascades(t *testing.T) {
	for _, kind := range []core.Kind{core.Oriented, core.Unoriented} {
		t.Run(kind.String(), func(t *testing.T) {
			g := newGraph(t, kind)
			n := mustNodes(t, g, NodeA, NodeB, NodeC, NodeD)
			mustEdge(t, g, n, NodeA, NodeB, Weight1)
			mustEdge(t, g, n, NodeC, NodeA, Weight2)
			mustEdge(t, g, n, NodeA, NodeA, Weight3)
			keep := mustEdge(t, g, n, NodeB, NodeC, Weight5)
			require.Equal(t, 4, g.Size())

			require.True(t, g.RemoveNode(n[NodeA]))
			require.False(t, g.HasNode(n[NodeA]))
			require.Equal(t, 3, g.Order())
			require.Equal(t, 1, g.Size())
			require.Equal(t, []core.EdgeRef{keep}, g.Edges())

			for _, x := range []string{NodeB, NodeC, NodeD} {
				_, err := g.Edge(n[NodeA], n[x])
				require.Error(t, err)
				_, err = g.Edge(n[x], n[NodeA])
				require.Error(t, err)
			}
			_, err := g.Node(NodeA)
			require.ErrorIs(t, err, core.ErrNodeNotFound)

			// Removing again, or removing the zero handle, is a no-op.
			require.False(t, g.RemoveNode(n[NodeA]))
			require.False(t, g.RemoveNode(core.NodeRef{}))
		})
	}
}

func TestGraph_StaleHandleAfterSlotReuse(t *testing.T) {
	g := newGraph(t, core.Oriented)
	n := mustNodes(t, g, NodeA, NodeB)
	require.True(t, g.RemoveNode(n[NodeA]))

	x, err := g.AddNode(NodeX)
	require.NoError(t, err)
	require.NotEqual(t, n[NodeA], x)

	_, err = g.Value(n[NodeA])
	require.ErrorIs(t, err, core.ErrStaleHandle)
	_, err = g.AddEdge(n[NodeA], n[NodeB])
	require.ErrorIs(t, err, core.ErrStaleHandle)
	require.Equal(t, 0, g.Degree(n[NodeA]))

	// The reused slot sorts after B: ordering follows insertion, not slots.
	require.Equal(t, []string{NodeB, NodeX}, values(t, g, g.Nodes()))
}

func TestGraph_AddEdge_Validation(t *testing.T) {
	g := newGraph(t, core.Oriented)
	n := mustNodes(t, g, NodeA)

	_, err := g.AddEdge(n[NodeA], core.NodeRef{})
	require.ErrorIs(t, err, core.ErrStaleHandle)
	_, err = g.AddWeightedEdge(core.NodeRef{}, n[NodeA], Weight1)
	require.ErrorIs(t, err, core.ErrStaleHandle)
	require.Equal(t, 0, g.Size())
}

func TestGraph_AddEdge_ReplacesSameOrderedPair(t *testing.T) {
	g := newGraph(t, core.Oriented)
	n := mustNodes(t, g, NodeA, NodeB)

	first := mustEdge(t, g, n, NodeA, NodeB, Weight1)
	second := mustEdge(t, g, n, NodeA, NodeB, Weight5)
	require.Equal(t, first, second)
	require.Equal(t, 1, g.Size())

	w, ok, err := g.EdgeValue(first)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Weight5, w)

	// A bare AddEdge replaces the payload with "none".
	bare, err := g.AddEdge(n[NodeA], n[NodeB])
	require.NoError(t, err)
	require.Equal(t, first, bare)
	_, ok, err = g.EdgeValue(bare)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGraph_EdgeLookup_Oriented(t *testing.T) {
	g, n := triangle(t, core.Oriented)

	e, err := g.Edge(n[NodeA], n[NodeB])
	require.NoError(t, err)
	from, to, err := g.Endpoints(e)
	require.NoError(t, err)
	require.Equal(t, n[NodeA], from)
	require.Equal(t, n[NodeB], to)

	_, err = g.Edge(n[NodeB], n[NodeA])
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.False(t, g.HasEdge(n[NodeB], n[NodeA]))

	_, err = g.Edge(core.NodeRef{}, n[NodeA])
	require.ErrorIs(t, err, core.ErrStaleHandle)
}

func TestGraph_EdgeLookup_UnorientedIsSymmetric(t *testing.T) {
	g, n := triangle(t, core.Unoriented)
	x, err := g.AddNode(NodeX)
	require.NoError(t, err)
	n[NodeX] = x

	for a := range n {
		for b := range n {
			require.Equal(t, g.HasEdge(n[a], n[b]), g.HasEdge(n[b], n[a]), "%s-%s", a, b)
		}
	}

	ab, err := g.Edge(n[NodeA], n[NodeB])
	require.NoError(t, err)
	ba, err := g.Edge(n[NodeB], n[NodeA])
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

func TestGraph_Unoriented_BothDirectionsAreTwoEdges(t *testing.T) {
	g := newGraph(t, core.Unoriented)
	n := mustNodes(t, g, NodeA, NodeB)
	ab := mustEdge(t, g, n, NodeA, NodeB, Weight1)
	ba := mustEdge(t, g, n, NodeB, NodeA, Weight2)
	require.NotEqual(t, ab, ba)
	require.Equal(t, 2, g.Size())

	// Exact direction wins before the reversed fallback.
	got, err := g.Edge(n[NodeA], n[NodeB])
	require.NoError(t, err)
	require.Equal(t, ab, got)
	got, err = g.Edge(n[NodeB], n[NodeA])
	require.NoError(t, err)
	require.Equal(t, ba, got)

	// Neighbors stay a set.
	nb, err := g.Neighbors(n[NodeA])
	require.NoError(t, err)
	require.Equal(t, []core.NodeRef{n[NodeB]}, nb)
	require.Equal(t, 1, g.Degree(n[NodeA]))
}

func TestGraph_RemoveEdge(t *testing.T) {
	g, n := triangle(t, core.Oriented)
	e, err := g.Edge(n[NodeB], n[NodeC])
	require.NoError(t, err)

	require.True(t, g.RemoveEdge(e))
	require.False(t, g.HasEdge(n[NodeB], n[NodeC]))
	require.Equal(t, 2, g.Size())
	require.False(t, g.RemoveEdge(e))
	require.False(t, g.RemoveEdge(core.EdgeRef{}))

	_, _, err = g.EdgeValue(e)
	require.ErrorIs(t, err, core.ErrStaleHandle)
	require.ErrorIs(t, g.SetEdgeValue(e, Weight1), core.ErrStaleHandle)
}

func TestGraph_SetEdgeValue(t *testing.T) {
	g := newGraph(t, core.Oriented)
	n := mustNodes(t, g, NodeA, NodeB)
	e, err := g.AddEdge(n[NodeA], n[NodeB])
	require.NoError(t, err)

	require.NoError(t, g.SetEdgeValue(e, Weight3))
	w, ok, err := g.EdgeValue(e)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Weight3, w)
}

func TestGraph_DirectionalQueries(t *testing.T) {
	g, n := triangle(t, core.Oriented)

	succ, err := g.Successors(n[NodeA])
	require.NoError(t, err)
	require.Equal(t, []string{NodeB, NodeC}, values(t, g, succ))

	pred, err := g.Predecessors(n[NodeC])
	require.NoError(t, err)
	require.Equal(t, []string{NodeA, NodeB}, values(t, g, pred))

	pred, err = g.Predecessors(n[NodeA])
	require.NoError(t, err)
	require.Empty(t, pred)

	_, err = g.Neighbors(n[NodeA])
	require.ErrorIs(t, err, core.ErrCapabilityMismatch)

	_, err = g.Successors(core.NodeRef{})
	require.ErrorIs(t, err, core.ErrStaleHandle)
}

func TestGraph_NeighborQueries(t *testing.T) {
	g, n := triangle(t, core.Unoriented)

	nb, err := g.Neighbors(n[NodeC])
	require.NoError(t, err)
	require.Equal(t, []string{NodeA, NodeB}, values(t, g, nb))

	_, err = g.Successors(n[NodeA])
	require.ErrorIs(t, err, core.ErrCapabilityMismatch)
	_, err = g.Predecessors(n[NodeA])
	require.ErrorIs(t, err, core.ErrCapabilityMismatch)
	_, err = g.DegreeIn(n[NodeA])
	require.ErrorIs(t, err, core.ErrCapabilityMismatch)
	_, err = g.DegreeOut(n[NodeA])
	require.ErrorIs(t, err, core.ErrCapabilityMismatch)
}

func TestGraph_DegreeIdentity_Oriented(t *testing.T) {
	g, n := triangle(t, core.Oriented)
	mustEdge(t, g, n, NodeC, NodeC, Weight1) // self-loop counts in and out

	for name, ref := range n {
		in, err := g.DegreeIn(ref)
		require.NoError(t, err)
		out, err := g.DegreeOut(ref)
		require.NoError(t, err)
		require.Equal(t, in+out, g.Degree(ref), name)
	}
	require.Equal(t, 4, g.Degree(n[NodeC]))
	require.Equal(t, 4, g.MaxDegree())
	require.Equal(t, 0, g.Degree(core.NodeRef{}))
}

func TestGraph_Degree_Unoriented(t *testing.T) {
	g, n := triangle(t, core.Unoriented)
	require.Equal(t, 2, g.Degree(n[NodeA]))
	require.Equal(t, 2, g.MaxDegree())

	d, err := g.AddNode(NodeD)
	require.NoError(t, err)
	require.Equal(t, 0, g.Degree(d))
}

func TestGraph_IncidentEdges(t *testing.T) {
	g, n := triangle(t, core.Oriented)
	out, err := g.IncidentEdges(n[NodeC])
	require.NoError(t, err)
	require.Empty(t, out)

	u, un := triangle(t, core.Unoriented)
	out, err = u.IncidentEdges(un[NodeC])
	require.NoError(t, err)
	require.Len(t, out, 2)

	_, err = g.IncidentEdges(core.NodeRef{})
	require.ErrorIs(t, err, core.ErrStaleHandle)
}

func TestGraph_ListingsFollowInsertionOrder(t *testing.T) {
	g := newGraph(t, core.Oriented)
	n := mustNodes(t, g, NodeD, NodeB, NodeA, NodeC)
	require.Equal(t, []string{NodeD, NodeB, NodeA, NodeC}, values(t, g, g.Nodes()))

	e1 := mustEdge(t, g, n, NodeC, NodeA, Weight1)
	e2 := mustEdge(t, g, n, NodeA, NodeB, Weight2)
	require.Equal(t, []core.EdgeRef{e1, e2}, g.Edges())
}

func TestGraph_FormatEdge(t *testing.T) {
	g := newGraph(t, core.Oriented)
	n := mustNodes(t, g, NodeA, NodeB)
	e := mustEdge(t, g, n, NodeA, NodeB, Weight2)
	require.Equal(t, "(A)--< 2 >-->(B)", g.FormatEdge(e))

	bare, err := g.AddEdge(n[NodeB], n[NodeA])
	require.NoError(t, err)
	require.Equal(t, "(B)------>(A)", g.FormatEdge(bare))
	require.Equal(t, "<stale edge>", g.FormatEdge(core.EdgeRef{}))
}

func TestGraph_Adjacency(t *testing.T) {
	t.Run("oriented", func(t *testing.T) {
		g, _ := triangle(t, core.Oriented)
		adj := g.Adjacency()
		require.Equal(t, []string{NodeA, NodeB, NodeC}, adj.Order)

		cell, ok := adj.At(NodeA, NodeC)
		require.True(t, ok)
		require.Equal(t, core.Cell[core.Cost]{Value: Weight5, Valid: true}, cell)

		cell, ok = adj.At(NodeC, NodeA)
		require.True(t, ok)
		require.False(t, cell.Valid)

		_, ok = adj.At(NodeX, NodeA)
		require.False(t, ok)
		for _, row := range adj.Rows {
			require.Len(t, row, 3)
		}
	})

	t.Run("unoriented is symmetric", func(t *testing.T) {
		g, _ := triangle(t, core.Unoriented)
		adj := g.Adjacency()
		for _, a := range adj.Order {
			for _, b := range adj.Order {
				ab, _ := adj.At(a, b)
				ba, _ := adj.At(b, a)
				require.Equal(t, ab, ba, "%s-%s", a, b)
			}
		}
		cell, _ := adj.At(NodeC, NodeB)
		require.Equal(t, Weight3, cell.Value)
	})

	t.Run("edge without payload is an empty cell", func(t *testing.T) {
		g := newGraph(t, core.Oriented)
		n := mustNodes(t, g, NodeA, NodeB)
		_, err := g.AddEdge(n[NodeA], n[NodeB])
		require.NoError(t, err)
		cell, ok := g.Adjacency().At(NodeA, NodeB)
		require.True(t, ok)
		require.False(t, cell.Valid)
	})
}

func TestGraph_CloneKeepsHandles(t *testing.T) {
	g, n := triangle(t, core.Oriented)
	c := g.Clone()

	e, err := c.Edge(n[NodeA], n[NodeB])
	require.NoError(t, err)
	orig, err := g.Edge(n[NodeA], n[NodeB])
	require.NoError(t, err)
	require.Equal(t, orig, e)

	// Mutating the clone leaves the source untouched.
	require.True(t, c.RemoveNode(n[NodeB]))
	require.True(t, g.HasNode(n[NodeB]))
	require.Equal(t, 3, g.Size())
	require.Equal(t, 1, c.Size())

	// New inserts on the clone continue the sequence.
	x, err := c.AddNode(NodeX)
	require.NoError(t, err)
	require.Greater(t, c.Seq(x), c.Seq(n[NodeC]))
}

func TestGraph_Clear(t *testing.T) {
	g, n := triangle(t, core.Unoriented)
	g.Clear()
	require.Equal(t, 0, g.Order())
	require.Equal(t, 0, g.Size())
	require.Equal(t, core.Unoriented, g.Kind())
	require.False(t, g.HasNode(n[NodeA]))

	a, err := g.AddNode(NodeA)
	require.NoError(t, err)
	require.NotEqual(t, n[NodeA], a)
}

func TestGraph_Stats(t *testing.T) {
	g, n := triangle(t, core.Oriented)
	_, err := g.AddEdge(n[NodeC], n[NodeA])
	require.NoError(t, err)

	s := g.Stats()
	require.Equal(t, core.GraphStats{
		Kind:        core.Oriented,
		Order:       3,
		Size:        4,
		ValuedEdges: 3,
		BareEdges:   1,
		MaxDegree:   3,
	}, *s)
}

func TestInducedSubgraph(t *testing.T) {
	g, n := triangle(t, core.Oriented)
	sub := core.InducedSubgraph(g, func(v string) bool { return v != NodeB })

	require.Equal(t, 2, sub.Order())
	require.Equal(t, 1, sub.Size())
	require.True(t, sub.HasEdge(n[NodeA], n[NodeC]))
	require.False(t, sub.HasNode(n[NodeB]))
	require.Equal(t, 3, g.Order())

	all := core.InducedSubgraph(g, nil)
	require.Equal(t, 3, all.Size())
}
