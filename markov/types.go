// SPDX-License-Identifier: MIT

package markov

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// NumBins is the number of discretization bins; unseen states predict a
// uniform value in [0, NumBins).
const NumBins = 4

// Sentinel errors for model construction and scoring.
var (
	// ErrBadOrder is returned for a negative chain order.
	ErrBadOrder = errors.New("markov: order must be non-negative")

	// ErrLengthMismatch is returned when paired sequences differ in length.
	ErrLengthMismatch = errors.New("markov: sequence lengths differ")

	// ErrEmptyInput is returned when a score is requested over no values.
	ErrEmptyInput = errors.New("markov: empty input")

	// ErrBadTrials is returned when an experiment asks for fewer than one trial.
	ErrBadTrials = errors.New("markov: trials must be positive")
)

// Source is the randomness Predict consumes. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// Chain is a read-only fixed-order Markov model: state → next value →
// probability.
type Chain struct {
	order       int
	transitions map[string]map[int]float64
}

// Order returns the state length.
func (c *Chain) Order() int { return c.order }

// Len returns the number of distinct states observed.
func (c *Chain) Len() int { return len(c.transitions) }

// Transitions returns a copy of the next-value distribution for state, and
// whether the state was observed during training.
func (c *Chain) Transitions(state []int) (map[int]float64, bool) {
	dist, ok := c.transitions[stateKey(state)]
	if !ok {
		return nil, false
	}
	out := make(map[int]float64, len(dist))
	for v, p := range dist {
		out[v] = p
	}
	return out, true
}

// States returns every observed state, sorted lexicographically by value.
func (c *Chain) States() [][]int {
	out := make([][]int, 0, len(c.transitions))
	for key := range c.transitions {
		out = append(out, parseKey(key))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return out
}

// stateKey encodes a state tuple as a comma-separated map key.
func stateKey(state []int) string {
	var sb strings.Builder
	for i, v := range state {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

func parseKey(key string) []int {
	if key == "" {
		return []int{}
	}
	parts := strings.Split(key, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		out[i], _ = strconv.Atoi(p)
	}
	return out
}
