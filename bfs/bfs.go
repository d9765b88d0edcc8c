// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Every vertex of g gets a Dist entry: its hop count, or Unreachable.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// a wrapped OnVisit error, or the context error on cancellation.
func BFS(g Graph, start string, opts ...Option) (*Result, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vertices := g.Vertices()
	n := len(vertices)
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Dist:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	for _, v := range vertices {
		w.res.Dist[v] = Unreachable
	}
	if _, ok := w.res.Dist[start]; !ok {
		return nil, ErrStartVertexNotFound
	}

	w.enqueue(start, 0, "")
	return w.res, w.loop()
}

// enqueue records id at depth d with its parent and appends it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Dist[id] = d
	if parent != "" {
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
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors discovers every unseen neighbor of item that passes the
// filter and depth limit.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if d, known := w.res.Dist[nbr]; known && d == Unreachable {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
	return nil
}

// isNil catches both a nil interface and a typed nil pointer inside it.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	type nilable interface{ IsNil() bool }
	if n, ok := g.(nilable); ok {
		return n.IsNil()
	}
	return false
}
