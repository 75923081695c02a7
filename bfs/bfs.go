// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop count from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/LugolBis/Data-Toolkit/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeRef
	depth int
}

// next returns the nodes one step away from n: successors in an Oriented
// graph, neighbors in an Unoriented one.
type next func(n core.NodeRef) ([]core.NodeRef, error)

// walker encapsulates mutable BFS state.
type walker struct {
	step    next
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeRef]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Edge payloads are ignored; every edge is one hop.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// ctx.Err() on cancellation, or any user-supplied hook error.
func BFS[N comparable, W any](g *core.Graph[N, W], start core.NodeRef, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	snap := g.Clone()
	if !snap.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}
	step := snap.Neighbors
	if snap.Oriented() {
		step = snap.Successors
	}

	n := snap.Order()
	w := &walker{
		step:    step,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeRef]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeRef, 0, n),
			Depth:  make(map[core.NodeRef]int, n),
			Parent: make(map[core.NodeRef]core.NodeRef, n),
		},
	}

	w.enqueue(start, 0, core.NodeRef{})

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(id core.NodeRef, d int, parent core.NodeRef) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if !parent.IsZero() {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in insertion order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.step(item.id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}

	return nil
}
