// SPDX-License-Identifier: MIT

package bfs

import "fmt"

// Step is one vertex on a reconstructed path together with the attributes
// of the edge leading to the next vertex. The final Step has no attributes.
type Step struct {
	Vertex string
	Attrs  []string
}

// FindPath walks parents back from end to start and returns the path from
// start to end with the attributes of each traversed edge.
//
//   - start == end yields a single Step with no attributes; parents is not consulted.
//   - If the parent chain breaks before reaching start, end is unreachable
//     and the result is empty.
//
// parents is usually Result.Parent from BFS(g, start).
func FindPath(g AttrGraph, start, end string, parents map[string]string) ([]Step, error) {
	if start == end {
		return []Step{{Vertex: end, Attrs: []string{}}}, nil
	}
	if isNil(g) {
		return nil, ErrGraphNil
	}

	chain := []string{end}
	for cur := end; cur != start; {
		prev, ok := parents[cur]
		// A chain longer than the parent map can only be a cycle.
		if !ok || prev == "" || len(chain) > len(parents) {
			return []Step{}, nil
		}
		chain = append(chain, prev)
		cur = prev
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	path := make([]Step, 0, len(chain))
	for i := 0; i < len(chain)-1; i++ {
		attrs, err := g.Attrs(chain[i], chain[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q-%q: %v", ErrAttrs, chain[i], chain[i+1], err)
		}
		path = append(path, Step{Vertex: chain[i], Attrs: attrs})
	}
	path = append(path, Step{Vertex: end, Attrs: []string{}})

	return path, nil
}

// DistanceHistogram runs BFS from node and counts vertices per distance.
// Unreachable vertices are counted under the Unreachable key, so the counts
// always sum to the number of vertices in g.
func DistanceHistogram(g Graph, node string, opts ...Option) (map[int]int, error) {
	res, err := BFS(g, node, opts...)
	if err != nil {
		return nil, err
	}
	hist := make(map[int]int)
	for _, d := range res.Dist {
		hist[d]++
	}

	return hist, nil
}
