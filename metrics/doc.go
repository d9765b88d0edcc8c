// SPDX-License-Identifier: MIT

// Package metrics holds the prometheus instruments the commands record:
// BFS runs and reach, game path lengths, Markov experiment trials and
// errors, and Reed-Solomon codewords produced.
//
// Each Registry owns a private prometheus.Registry, so tests and commands
// never collide on the global default. Every Record* method is a no-op on
// a nil *Registry, letting callers treat metrics as optional.
package metrics
