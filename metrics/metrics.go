// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Registry holds all instruments for one process or test.
type Registry struct {
	registry *prometheus.Registry

	// Graph metrics
	BFSRunsTotal    prometheus.Counter
	BFSVisited      prometheus.Histogram
	PathLength      prometheus.Histogram
	UnreachableHits prometheus.Counter

	// Prediction metrics
	ExperimentTrialsTotal *prometheus.CounterVec
	ExperimentMSE         *prometheus.HistogramVec

	// Coding metrics
	CodewordsTotal prometheus.Counter
}

// NewRegistry creates a Registry with every instrument registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.BFSRunsTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "lvkit_bfs_runs_total",
		Help: "Total number of breadth-first searches run",
	})
	r.BFSVisited = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvkit_bfs_visited_vertices",
		Help:    "Vertices reached per breadth-first search",
		Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
	})
	r.PathLength = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvkit_path_length_hops",
		Help:    "Hops on found shortest paths",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
	})
	r.UnreachableHits = f.NewCounter(prometheus.CounterOpts{
		Name: "lvkit_unreachable_targets_total",
		Help: "Targets with no path from the start vertex",
	})
	r.ExperimentTrialsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Name: "lvkit_markov_trials_total",
		Help: "Prediction trials run per chain order",
	}, []string{"order"})
	r.ExperimentMSE = f.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvkit_markov_mse",
		Help:    "Mean squared error of experiments per chain order",
		Buckets: []float64{0.25, 0.5, 1, 1.5, 2, 3, 5},
	}, []string{"order"})
	r.CodewordsTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "lvkit_rs_codewords_total",
		Help: "Reed-Solomon error-correction codewords produced",
	})
	return r
}

// Gatherer exposes the underlying registry, e.g. for promhttp or testutil.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// RecordBFS records one search that reached visited vertices.
func (r *Registry) RecordBFS(visited int) {
	if r == nil {
		return
	}
	r.BFSRunsTotal.Inc()
	r.BFSVisited.Observe(float64(visited))
}

// RecordPath records a found path of hops edges, or an unreachable target when found is false.
func (r *Registry) RecordPath(hops int, found bool) {
	if r == nil {
		return
	}
	if !found {
		r.UnreachableHits.Inc()
		return
	}
	r.PathLength.Observe(float64(hops))
}

// RecordExperiment records trials predictions and their mean error for order.
func (r *Registry) RecordExperiment(order, trials int, mse float64) {
	if r == nil {
		return
	}
	label := strconv.Itoa(order)
	r.ExperimentTrialsTotal.WithLabelValues(label).Add(float64(trials))
	r.ExperimentMSE.WithLabelValues(label).Observe(mse)
}

// RecordCodewords records n produced codewords.
func (r *Registry) RecordCodewords(n int) {
	if r == nil {
		return
	}
	r.CodewordsTotal.Add(float64(n))
}

// WriteText dumps every gathered family in the text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
