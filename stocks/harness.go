// SPDX-License-Identifier: MIT

package stocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvkit/markov"
	"github.com/katalvlaran/lvkit/metrics"
)

// Harness defaults.
const (
	DefaultTrials      = 500
	DefaultDays        = 5
	DefaultParallelism = 4
)

// DefaultOrders are the chain orders compared per symbol.
var DefaultOrders = []int{1, 3, 5, 7, 9}

// Harness runs prediction experiments over many symbols.
type Harness struct {
	orders      []int
	trials      int
	days        int
	seed        int64
	parallelism int
	logger      *zap.Logger
	metrics     *metrics.Registry
	err         error
}

// Option configures a Harness. Invalid values are recorded and reported by Run.
type Option func(*Harness)

// WithOrders sets the chain orders; each must be ≥ 1.
func WithOrders(orders ...int) Option {
	return func(h *Harness) {
		if len(orders) == 0 {
			h.err = fmt.Errorf("WithOrders: empty: %w", ErrOptionViolation)
			return
		}
		for _, o := range orders {
			if o < 1 {
				h.err = fmt.Errorf("WithOrders: order=%d: %w", o, ErrOptionViolation)
				return
			}
		}
		h.orders = append([]int(nil), orders...)
	}
}

// WithTrials sets the trials per experiment (≥ 1).
func WithTrials(n int) Option {
	return func(h *Harness) {
		if n < 1 {
			h.err = fmt.Errorf("WithTrials: n=%d: %w", n, ErrOptionViolation)
			return
		}
		h.trials = n
	}
}

// WithDays sets the prediction horizon (≥ 1).
func WithDays(n int) Option {
	return func(h *Harness) {
		if n < 1 {
			h.err = fmt.Errorf("WithDays: n=%d: %w", n, ErrOptionViolation)
			return
		}
		h.days = n
	}
}

// WithSeed fixes the base seed; 0 means markov.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(h *Harness) { h.seed = seed }
}

// WithParallelism bounds concurrent symbols (≥ 1).
func WithParallelism(n int) Option {
	return func(h *Harness) {
		if n < 1 {
			h.err = fmt.Errorf("WithParallelism: n=%d: %w", n, ErrOptionViolation)
			return
		}
		h.parallelism = n
	}
}

// WithMetrics records every experiment into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(h *Harness) { h.metrics = r }
}

// NewHarness returns a Harness with defaults overridden by opts. A nil
// logger is replaced by zap.NewNop().
func NewHarness(logger *zap.Logger, opts ...Option) *Harness {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Harness{
		orders:      append([]int(nil), DefaultOrders...),
		trials:      DefaultTrials,
		days:        DefaultDays,
		parallelism: DefaultParallelism,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes every (symbol, order) experiment and returns one Report per
// symbol sorted by symbol. The first failure cancels the remaining symbols.
func (h *Harness) Run(ctx context.Context, datasets map[string]Series) ([]Report, error) {
	if h.err != nil {
		return nil, h.err
	}

	symbols := make([]string, 0, len(datasets))
	for s := range datasets {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	reports := make([]Report, len(symbols))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(h.parallelism)
	for i, sym := range symbols {
		i, sym := i, sym
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}
			rep, err := h.runSymbol(gCtx, sym, datasets[sym])
			if err != nil {
				return fmt.Errorf("Run: %s: %w", sym, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (h *Harness) runSymbol(ctx context.Context, sym string, s Series) (Report, error) {
	train := Bins(s.Train)
	test := Bins(s.Test)

	maxOrder := 0
	for _, o := range h.orders {
		if o > maxOrder {
			maxOrder = o
		}
	}
	if len(test) < maxOrder+h.days {
		return Report{}, fmt.Errorf("test bins=%d < order %d + days %d: %w", len(test), maxOrder, h.days, ErrShortSeries)
	}

	rng := symbolRand(h.seed, sym)
	actual := test[len(test)-h.days:]
	rep := Report{
		Symbol:    sym,
		Actual:    append([]int(nil), actual...),
		Results:   make([]OrderResult, 0, len(h.orders)),
		TrainBins: train,
	}

	for _, order := range h.orders {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		seed := test[len(test)-order-h.days : len(test)-h.days]
		start := time.Now()
		mse, err := markov.RunExperiment(rng, train, order, seed, h.days, actual, h.trials)
		if err != nil {
			return Report{}, fmt.Errorf("order %d: %w", order, err)
		}
		h.metrics.RecordExperiment(order, h.trials, mse)
		h.logger.Debug("experiment done",
			zap.String("symbol", sym),
			zap.Int("order", order),
			zap.Int("trials", h.trials),
			zap.Float64("mse", mse),
			zap.Duration("elapsed", time.Since(start)),
		)
		rep.Results = append(rep.Results, OrderResult{Order: order, MSE: mse})
	}

	h.logger.Info("symbol done", zap.String("symbol", sym), zap.Ints("actual", rep.Actual))
	return rep, nil
}
