// Package dijkstra defines the result type, configuration options and
// sentinel errors for single-source shortest paths over core.Graph.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/LugolBis/Data-Toolkit/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates the source handle is absent, stale or foreign.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that an edge payload reported a negative or NaN weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates PathTo was asked for a node the source cannot reach.
	ErrUnreachable = errors.New("dijkstra: node is unreachable from source")

	// ErrUnknownStrategy indicates ParseStrategy received an unrecognized name.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects how the next node to settle is found. Both strategies
// settle nodes in the same order and produce identical results.
type Strategy int

const (
	// StrategyScan scans every unsettled node for the minimum: O(V²).
	StrategyScan Strategy = iota

	// StrategyHeap uses a binary heap with lazy decrease-key: O((V + E) log V).
	StrategyHeap
)

// String returns "scan" or "heap".
func (s Strategy) String() string {
	if s == StrategyHeap {
		return "heap"
	}

	return "scan"
}

// ParseStrategy maps "scan" and "heap" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "scan":
		return StrategyScan, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return StrategyScan, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Strategy Strategy // node selection strategy
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrategy selects the node selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns the configuration used when no Option is passed:
// the O(V²) scan strategy.
func DefaultOptions() Options {
	return Options{Strategy: StrategyScan}
}

// Result holds the outcome of one run.
//
// Dist has an entry for every node of the graph at run time: 0 for Source,
// +Inf for unreachable nodes. Prev has an entry only for reached nodes other
// than Source; Prev[v] == u means the chosen shortest path to v ends with u→v.
type Result struct {
	Source core.NodeRef
	Dist   map[core.NodeRef]float64
	Prev   map[core.NodeRef]core.NodeRef
}

// Distance returns the shortest distance to n, or +Inf when n is unreachable
// or was not part of the graph.
func (r *Result) Distance(n core.NodeRef) float64 {
	d, ok := r.Dist[n]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// Reachable reports whether n has a finite distance.
func (r *Result) Reachable(n core.NodeRef) bool {
	return !math.IsInf(r.Distance(n), 1)
}

// PathTo rebuilds the node sequence Source → … → n by following Prev.
// Returns ErrUnreachable when n has infinite distance.
// Complexity: O(path length).
func (r *Result) PathTo(n core.NodeRef) ([]core.NodeRef, error) {
	if !r.Reachable(n) {
		return nil, ErrUnreachable
	}
	var rev []core.NodeRef
	for cur := n; ; {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
		p, ok := r.Prev[cur]
		if !ok {
			return nil, ErrUnreachable
		}
		cur = p
	}
	path := make([]core.NodeRef, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, nil
}
