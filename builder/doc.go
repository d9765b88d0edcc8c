// SPDX-License-Identifier: MIT

// Package builder produces deterministic fixtures: attributed graphs for the
// BFS and Kevin Bacon layers and synthetic price series for the Markov
// experiments.
//
// What
//
//   - BuildGraph(gopts, bopts, cons...) creates a core.Graph and applies
//     Constructor closures in order.
//   - Path, Star and Cast are the topology constructors. Cast draws a random
//     movie/co-star network and requires an RNG (WithSeed or WithRand).
//   - PriceSeries emits daily closes from a discrete geometric Brownian
//     motion with a few intraday steps per day.
//
// Determinism
//
//	Same options, same seed and same constructor order ⇒ identical graphs and
//	series. No constructor reads a global random source.
//
// Errors
//
//	Constructors return sentinel errors (ErrTooFewVertices, ErrBadSize,
//	ErrNeedRandSource) wrapped with the constructor name; BuildGraph adds its
//	own prefix. Option constructors panic on nil arguments, like any misuse
//	of a functional option at program start.
package builder
