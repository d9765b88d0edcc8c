// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Attrs/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - Attrs() returns attributes sorted lex asc.
//   - nextEdgeID() is monotonic ("e" + decimal).
// Concurrency:
//   - AddEdge holds muVert then muEdgeAdj; other mutations take muEdgeAdj
//     write lock, reads its read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix keeps IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge connects a and b, creating both vertices if needed, and adds
// attrs to the edge's attribute set. Repeating AddEdge for the same pair
// (in either order) merges attributes into the existing edge instead of
// creating a parallel one. Empty attribute strings are ignored.
//
// Errors:
//   - ErrEmptyVertexID: if a or b is empty.
//   - ErrLoopNotAllowed: if a == b and the graph was built without WithLoops.
//
// Complexity: O(1 + |attrs|) amortized.
func (g *Graph) AddEdge(a, b string, attrs ...string) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// Vertex creation and linking share one critical section so a
	// concurrent RemoveVertex cannot drop an endpoint in between.
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.ensureVertexLocked(a)
	g.ensureVertexLocked(b)
	e := g.edgeLocked(a, b)
	if e == nil {
		e = &Edge{ID: nextEdgeID(g), From: a, To: b, Attrs: make(map[string]struct{}, len(attrs))}
		g.edges[e.ID] = e
		g.adjacency[a][b] = e.ID
		g.adjacency[b][a] = e.ID
	}
	for _, attr := range attrs {
		if attr != "" {
			e.Attrs[attr] = struct{}{}
		}
	}

	return nil
}

// RemoveEdge deletes the edge between a and b.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e := g.edgeLocked(a, b)
	if e == nil {
		return ErrEdgeNotFound
	}
	delete(g.edges, e.ID)
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)

	return nil
}

// HasEdge reports whether a and b are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeLocked(a, b) != nil
}

// Attrs returns the attributes of the edge between a and b, sorted
// lexicographically. The slice is a fresh copy.
//
// Errors:
//   - ErrEmptyVertexID: if a or b is empty.
//   - ErrEdgeNotFound: if the vertices are not adjacent.
//
// Complexity: O(k log k) for k attributes.
func (g *Graph) Attrs(a, b string) ([]string, error) {
	if a == "" || b == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e := g.edgeLocked(a, b)
	if e == nil {
		return nil, ErrEdgeNotFound
	}

	return sortedAttrs(e.Attrs), nil
}

// Edges returns a snapshot of all edges sorted by Edge.ID ascending.
// Returned edges are copies; mutating them does not affect the graph.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		cp := Edge{ID: e.ID, From: e.From, To: e.To, Attrs: make(map[string]struct{}, len(e.Attrs))}
		for attr := range e.Attrs {
			cp.Attrs[attr] = struct{}{}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// ensureVertexLocked creates id and its adjacency map if missing.
// Caller holds muVert and muEdgeAdj.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
	}
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
}

// edgeLocked returns the edge between a and b or nil. Caller holds muEdgeAdj.
func (g *Graph) edgeLocked(a, b string) *Edge {
	eid, ok := g.adjacency[a][b]
	if !ok {
		return nil
	}
	return g.edges[eid]
}

// nextEdgeID returns "e<N>" with N taken from an atomic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeLess orders "e<N>" IDs numerically so e10 follows e9.
func edgeLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func sortedAttrs(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for attr := range set {
		out = append(out, attr)
	}
	sort.Strings(out)

	return out
}
