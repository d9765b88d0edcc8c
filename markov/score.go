// SPDX-License-Identifier: MIT

package markov

import "fmt"

// Number is the set of element types MSE accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// MSE returns the mean of squared element-wise differences of result and
// expected. Both must be non-empty and of equal length.
func MSE[T Number](result, expected []T) (float64, error) {
	if len(result) != len(expected) {
		return 0, fmt.Errorf("MSE: %d vs %d values: %w", len(result), len(expected), ErrLengthMismatch)
	}
	if len(result) == 0 {
		return 0, fmt.Errorf("MSE: %w", ErrEmptyInput)
	}
	var sum float64
	for i := range result {
		d := float64(result[i]) - float64(expected[i])
		sum += d * d
	}
	return sum / float64(len(result)), nil
}

// RunExperiment trains one order-k chain on train, then runs trials
// independent predictions of horizon values from seed and returns the mean
// MSE against actual. The result is a Monte Carlo estimate of the expected
// prediction error.
func RunExperiment(rng Source, train []int, order int, seed []int, horizon int, actual []int, trials int) (float64, error) {
	if trials < 1 {
		return 0, fmt.Errorf("RunExperiment: trials=%d: %w", trials, ErrBadTrials)
	}
	if horizon != len(actual) {
		return 0, fmt.Errorf("RunExperiment: horizon=%d actual=%d: %w", horizon, len(actual), ErrLengthMismatch)
	}
	chain, err := Build(train, order)
	if err != nil {
		return 0, fmt.Errorf("RunExperiment: %w", err)
	}

	var total float64
	for t := 0; t < trials; t++ {
		prediction := Predict(rng, chain, seed, horizon)
		e, err := MSE(actual, prediction)
		if err != nil {
			return 0, fmt.Errorf("RunExperiment: trial %d: %w", t, err)
		}
		total += e
	}
	return total / float64(trials), nil
}
