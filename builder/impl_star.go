// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvkit/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds CenterVertexID plus leaves idFn(1..n-1), each spoke labeled
// with its leaf ID. Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddEdge(CenterVertexID, leaf, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodStar, CenterVertexID, leaf, err)
			}
		}
		return nil
	}
}
