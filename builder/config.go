// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph/PriceSeries call.
type builderConfig struct {
	idFn    IDFn
	movieFn func(j int) string
	rng     *rand.Rand // nil unless WithSeed/WithRand
	price   priceModel
}

// priceModel is a daily GBM: start price, drift, volatility and intraday steps.
type priceModel struct {
	start float64
	mu    float64
	vol   float64
	steps int
}

const (
	defaultPriceStart = 100.0
	defaultDailyMu    = 0.0005
	defaultDailyVol   = 0.02
	defaultSteps      = 8

	// CenterVertexID is the hub of Star.
	CenterVertexID = "Center"
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		movieFn: DefaultMovieFn,
		price: priceModel{
			start: defaultPriceStart,
			mu:    defaultDailyMu,
			vol:   defaultDailyVol,
			steps: defaultSteps,
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rngFrom prefers the configured stream and falls back to a local one seeded by seed.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(seed))
}
