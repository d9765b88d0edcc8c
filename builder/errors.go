// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a constructor size below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates inconsistent size parameters (e.g. cast larger than the pool).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrConstructFailed indicates a nil constructor or another composition failure.
var ErrConstructFailed = errors.New("builder: construction failed")
