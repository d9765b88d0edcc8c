// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"sort"
)

// Build returns the order-k Markov chain of data. Each window
// data[i:i+order] is a state and data[i+order] its observed successor.
// Data shorter than order+1 yields an empty chain.
func Build(data []int, order int) (*Chain, error) {
	if order < 0 {
		return nil, fmt.Errorf("Build: order=%d: %w", order, ErrBadOrder)
	}

	counts := make(map[string]map[int]int)
	totals := make(map[string]int)
	for i := 0; i+order < len(data); i++ {
		key := stateKey(data[i : i+order])
		next := data[i+order]
		if counts[key] == nil {
			counts[key] = make(map[int]int)
		}
		counts[key][next]++
		totals[key]++
	}

	c := &Chain{order: order, transitions: make(map[string]map[int]float64, len(counts))}
	for key, nexts := range counts {
		dist := make(map[int]float64, len(nexts))
		for v, n := range nexts {
			dist[v] = float64(n) / float64(totals[key])
		}
		c.transitions[key] = dist
	}
	return c, nil
}

// Predict generates n values following last, which should hold the most
// recent Order() values. See the package doc for the sampling rule.
func Predict(rng Source, c *Chain, last []int, n int) []int {
	if n <= 0 {
		return []int{}
	}
	state := append([]int(nil), last...)
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		var next int
		if dist, ok := c.transitions[stateKey(state)]; ok {
			next = sample(rng, dist)
		} else {
			next = rng.Intn(NumBins)
		}
		out = append(out, next)
		if len(state) > 0 {
			state = append(state[1:], next)
		}
	}
	return out
}

// sample draws from dist by inverse CDF over ascending values. Rounding
// that leaves the draw past the final cumulative sum selects the last value.
func sample(rng Source, dist map[int]float64) int {
	values := make([]int, 0, len(dist))
	for v := range dist {
		values = append(values, v)
	}
	sort.Ints(values)

	draw := rng.Float64()
	cum := 0.0
	for _, v := range values {
		cum += dist[v]
		if draw < cum {
			return v
		}
	}
	return values[len(values)-1]
}
