// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighborhood APIs.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically
// ascending. A self-loop lists id itself.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Same lock order as mutators so the vertex cannot vanish mid-read.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Stats returns a snapshot of counts and flags.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		VertexCount: len(g.vertices),
		AllowsLoops: g.allowLoops,
	}
	g.muEdgeAdj.RLock()
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			stats.IsolatedCount++
		}
	}
	stats.EdgeCount = len(g.edges)
	seen := make(map[string]struct{})
	for _, e := range g.edges {
		for attr := range e.Attrs {
			seen[attr] = struct{}{}
		}
	}
	stats.AttrCount = len(seen)
	g.muEdgeAdj.RUnlock()
	g.muVert.RUnlock()

	return &stats
}
