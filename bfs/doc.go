// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over an unweighted graph,
// returning hop distances for every vertex, parent links, and visit order,
// plus path reconstruction with edge attributes and distance histograms.
//
// What
//
//   - BFS(g, start) explores vertices in non-decreasing hop distance.
//     The Result holds:
//   - Order:  visit sequence
//   - Dist:   vertex → hops from start, for EVERY vertex of g;
//     Unreachable for vertices never reached
//   - Parent: vertex → predecessor on the BFS tree; absent for the
//     start vertex and for unreached vertices
//   - FindPath(g, start, end, parents) walks the parent chain back from end
//     and returns Steps from start to end, each carrying the attributes of
//     the edge to the next step; the last step has none.
//   - DistanceHistogram(g, v) counts vertices per distance from v, with
//     Unreachable as its own bucket.
//
// Determinism
//
//	Neighbors are expanded in the order g.NeighborIDs returns them;
//	core.Graph sorts them, so the visit sequence and parent choice are
//	reproducible. Tie-breaking only affects Parent, never Dist.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS, DistanceHistogram: O(V + E) time, O(V) memory
//   - FindPath: O(L) lookups for a path of L steps
//
// Options
//
//   - WithContext(ctx):         cancellation, checked once per dequeue.
//   - WithMaxDepth(d):          stop expanding beyond depth d (>0).
//   - WithFilterNeighbor(fn):   skip neighbor when fn(curr, nbr) == false.
//   - WithOnEnqueue(fn):        hook when a vertex is discovered.
//   - WithOnVisit(fn):          hook on visit; a returned error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails.
//   - ErrAttrs                if FindPath cannot read an edge's attributes.
//   - Wrapped hook errors from OnVisit, ctx.Err() on cancellation.
package bfs
