// SPDX-License-Identifier: MIT

package builder

import "math"

// PriceSeries returns days daily closing prices from a discrete GBM with
// the configured number of intraday steps (Δt = 1/steps):
//
//	S_{t+1} = S_t · exp((μ - σ²/2)Δt + σ√Δt · Z),  Z ~ N(0,1)
//
// A shared stream from WithSeed/WithRand wins over seed. days < 1 ⇒ nil.
// Complexity: O(days · steps).
func PriceSeries(days int, seed int64, opts ...BuilderOption) []float64 {
	if days < 1 {
		return nil
	}
	cfg := newBuilderConfig(opts...)
	p := cfg.price
	rng := rngFrom(cfg, seed)

	dt := 1.0 / float64(p.steps)
	drift := (p.mu - 0.5*p.vol*p.vol) * dt
	noise := p.vol * math.Sqrt(dt)

	closes := make([]float64, days)
	s := p.start
	for d := 0; d < days; d++ {
		for k := 0; k < p.steps; k++ {
			s *= math.Exp(drift + noise*rng.NormFloat64())
		}
		closes[d] = s
	}
	return closes
}
