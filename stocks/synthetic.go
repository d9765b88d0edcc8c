// SPDX-License-Identifier: MIT

package stocks

import (
	"hash/fnv"
	"math/rand"

	"github.com/katalvlaran/lvkit/builder"
	"github.com/katalvlaran/lvkit/markov"
)

// Synthetic generates days training closes and days test closes per symbol
// from a GBM. Each symbol's stream depends only on seed and its name.
func Synthetic(symbols []string, days int, seed int64) map[string]Series {
	out := make(map[string]Series, len(symbols))
	for _, sym := range symbols {
		rng := symbolRand(seed, sym)
		out[sym] = Series{
			Train: builder.PriceSeries(days, 0, builder.WithRand(rng)),
			Test:  builder.PriceSeries(days, 0, builder.WithRand(rng)),
		}
	}
	return out
}

// symbolRand derives the RNG stream for symbol under seed.
func symbolRand(seed int64, symbol string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(symbol))
	return markov.DeriveRand(markov.NewRand(seed), h.Sum64())
}
