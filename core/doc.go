// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory, undirected graph whose
// edges carry a set of string attributes, the shape of a co-star graph:
// vertices are people and an edge lists every movie two people share.
//
// The Graph G = (V,E) offers:
//
//   - Undirected edges, at most one per vertex pair; adding the pair again
//     merges the new attributes into the existing edge.
//   - Optional self-loops (WithLoops); rejected by default.
//   - Stable edge IDs ("e1", "e2", …) from an atomic counter.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//	Vertices(), NeighborIDs() and Attrs() return lexicographically sorted
//	slices; Edges() is sorted by Edge.ID. Algorithms that walk the graph in
//	these orders are reproducible run to run.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v))
//	Vertices() []string                // O(V log V)
//
//	// Edge lifecycle
//	AddEdge(a, b string, attrs ...string) error  // O(|attrs|)
//	HasEdge(a, b string) bool                    // O(1)
//	Attrs(a, b string) ([]string, error)         // O(k log k)
//	RemoveEdge(a, b string) error                // O(1)
//
//	// Neighborhood
//	NeighborIDs(id string) ([]string, error)     // O(d log d)
//	Degree(id string) (int, error)               // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core
