// SPDX-License-Identifier: MIT

package stocks

import "github.com/katalvlaran/lvkit/markov"

const numBins = markov.NumBins

// DailyChange returns the day-over-day percent change of prices:
// out[i] = 100 · (prices[i+1] - prices[i]) / prices[i]. Fewer than two
// prices yield an empty slice.
func DailyChange(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		out[i-1] = 100 * (prices[i] - prices[i-1]) / prices[i-1]
	}
	return out
}

// BinDailyChanges maps percent changes onto bins 0..3 (see package doc).
func BinDailyChanges(changes []float64) []int {
	out := make([]int, len(changes))
	for i, c := range changes {
		switch {
		case c < -1:
			out[i] = 0
		case c < 0:
			out[i] = 1
		case c < 1:
			out[i] = 2
		default:
			out[i] = 3
		}
	}
	return out
}

// Bins is BinDailyChanges(DailyChange(prices)).
func Bins(prices []float64) []int {
	return BinDailyChanges(DailyChange(prices))
}
