// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvkit/core"
)

const (
	methodCast   = "Cast"
	minCastSize  = 2
	minCastPool  = 2
	minCastFilms = 1
)

// Cast builds a random co-star network. Every actor idFn(0..actors-1) is a
// vertex; each of movies films draws castSize distinct actors and links
// every pair of them with the movie label movieFn(j). Actors that never get
// cast stay isolated, which gives the game unreachable targets.
//
// Requires an RNG (WithSeed/WithRand). Deterministic per seed.
// Complexity: O(movies · (actors + castSize²)).
func Cast(movies, castSize, actors int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		switch {
		case movies < minCastFilms:
			return fmt.Errorf("%s: movies=%d < min=%d: %w", methodCast, movies, minCastFilms, ErrTooFewVertices)
		case actors < minCastPool:
			return fmt.Errorf("%s: actors=%d < min=%d: %w", methodCast, actors, minCastPool, ErrTooFewVertices)
		case castSize < minCastSize || castSize > actors:
			return fmt.Errorf("%s: castSize=%d not in [%d,%d]: %w", methodCast, castSize, minCastSize, actors, ErrBadSize)
		case cfg.rng == nil:
			return fmt.Errorf("%s: %w", methodCast, ErrNeedRandSource)
		}

		for i := 0; i < actors; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCast, id, err)
			}
		}

		for j := 0; j < movies; j++ {
			movie := cfg.movieFn(j)
			cast := cfg.rng.Perm(actors)[:castSize]
			for a := 0; a < len(cast); a++ {
				for b := a + 1; b < len(cast); b++ {
					u, v := cfg.idFn(cast[a]), cfg.idFn(cast[b])
					if err := g.AddEdge(u, v, movie); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCast, u, v, err)
					}
				}
			}
		}
		return nil
	}
}
