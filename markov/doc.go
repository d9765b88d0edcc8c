// SPDX-License-Identifier: MIT

// Package markov builds fixed-order discrete Markov chains from binned time
// series and uses them to generate and score stochastic predictions.
//
// What
//
//   - Build(data, order) slides a window of length order over data and
//     counts, for every window (the state), which value came next. Counts
//     are normalized so each state's transition probabilities sum to 1.
//   - Predict draws future values one at a time. A known state samples its
//     distribution by inverse CDF over next values in ascending order; an
//     unseen state falls back to a uniform draw over the NumBins bins. The
//     window then slides: oldest value out, prediction in.
//   - MSE and RunExperiment score predictions against actual values; the
//     experiment averages MSE over many independent trials, a Monte Carlo
//     estimate of the expected error for a given order.
//
// Randomness
//
//	Every stochastic function takes a Source, which *rand.Rand satisfies.
//	NewRand(seed) gives a reproducible stream; DeriveRand splits independent
//	streams for concurrent workers. No function touches a global source.
//
// Complexity
//
//   - Build:         O(len(data) · order)
//   - Predict:       O(n · (order + b)), b = distinct next values of a state
//   - RunExperiment: O(Build + trials · (Predict + horizon))
package markov
