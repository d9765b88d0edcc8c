// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption mutates the builder configuration before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithMovieScheme sets the attribute label Cast attaches for movie j. Panics on nil.
func WithMovieScheme(fn func(j int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithMovieScheme(nil)")
	}
	return func(c *builderConfig) { c.movieFn = fn }
}

// WithRand shares an existing RNG stream. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a fresh RNG stream from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithPriceModel overrides the GBM used by PriceSeries.
// Panics on start <= 0, vol < 0 or steps < 1.
func WithPriceModel(start, mu, vol float64, steps int) BuilderOption {
	if start <= 0 || vol < 0 || steps < 1 {
		panic("builder: WithPriceModel(start<=0 || vol<0 || steps<1)")
	}
	return func(c *builderConfig) {
		c.price = priceModel{start: start, mu: mu, vol: vol, steps: steps}
	}
}
