// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvkit/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n: vertices idFn(0..n-1), edge (i-1, i) labeled "idFn(i-1)-idFn(i)".
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if err := g.AddEdge(u, v, u+"-"+v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPath, u, v, err)
			}
		}
		return nil
	}
}
