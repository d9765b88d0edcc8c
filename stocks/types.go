// SPDX-License-Identifier: MIT

package stocks

import (
	"errors"
	"sort"
)

// Sentinel errors for data loading and experiment setup.
var (
	// ErrBadCSV indicates a price file without a usable close column or value.
	ErrBadCSV = errors.New("stocks: malformed price csv")

	// ErrNoData indicates a directory without any training price file.
	ErrNoData = errors.New("stocks: no price files")

	// ErrMissingTest indicates a training file without its _test companion.
	ErrMissingTest = errors.New("stocks: missing test prices")

	// ErrShortSeries indicates too few test bins for the requested order and horizon.
	ErrShortSeries = errors.New("stocks: series too short")

	// ErrOptionViolation indicates an invalid harness option.
	ErrOptionViolation = errors.New("stocks: invalid option value")
)

// Series holds one symbol's training and test closing prices.
type Series struct {
	Train []float64
	Test  []float64
}

// OrderResult is the mean prediction error for one chain order.
type OrderResult struct {
	Order int
	MSE   float64
}

// Report is the outcome of all experiments for one symbol.
type Report struct {
	Symbol    string
	Actual    []int // last Days test bins
	Results   []OrderResult
	TrainBins []int
}

// Histogram counts training bins; every bin 0..3 has an entry.
func (r Report) Histogram() map[int]int {
	h := make(map[int]int, numBins)
	for b := 0; b < numBins; b++ {
		h[b] = 0
	}
	for _, b := range r.TrainBins {
		h[b]++
	}
	return h
}

// Best returns the order with the lowest error; ok is false without results.
func (r Report) Best() (best OrderResult, ok bool) {
	if len(r.Results) == 0 {
		return OrderResult{}, false
	}
	sorted := append([]OrderResult(nil), r.Results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MSE < sorted[j].MSE })
	return sorted[0], true
}
