// SPDX-License-Identifier: MIT

package reedsolomon

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvkit/gf256"
	"github.com/katalvlaran/lvkit/polynomial"
)

// ErrNegativeCorrection is returned when fewer than zero correction bytes are requested.
var ErrNegativeCorrection = errors.New("reedsolomon: negative correction byte count")

// MessagePolynomial places message[i] at exponent n+k−i−1, reserving the
// k low-order terms for the correction code.
func MessagePolynomial(message []byte, k int) polynomial.Polynomial {
	n := len(message)
	terms := make(map[int]byte, n)
	for i, b := range message {
		terms[n+k-i-1] = b
	}
	return polynomial.New(terms)
}

// GeneratorPolynomial returns Π_{i<k} (x − 2^i). It has degree exactly k
// for k ≥ 1; for k ≤ 0 it is the zero polynomial.
func GeneratorPolynomial(k int) polynomial.Polynomial {
	gen := polynomial.Zero()
	for i := 0; i < k; i++ {
		// x − 2^i; subtraction is addition in GF(256).
		factor := polynomial.Zero().AddTerm(1, 1).AddTerm(gf256.Pow(gf256.Generator, i), 0)
		if i == 0 {
			gen = factor
			continue
		}
		gen = gen.MultiplyByPolynomial(factor)
	}
	return gen
}

// Correction returns the error-correction polynomial
// MessagePolynomial(data, k) mod GeneratorPolynomial(k). With no
// correction bytes (k ≤ 0) there is no generator to divide by and the
// result is the zero polynomial.
func Correction(data []byte, k int) polynomial.Polynomial {
	if k <= 0 {
		return polynomial.Zero()
	}
	return MessagePolynomial(data, k).Remainder(GeneratorPolynomial(k))
}

// Codewords returns the k correction bytes, coefficient of x^(k−1) first.
func Codewords(data []byte, k int) ([]byte, error) {
	if k < 0 {
		return nil, fmt.Errorf("Codewords: k=%d: %w", k, ErrNegativeCorrection)
	}
	if k == 0 {
		return []byte{}, nil
	}
	rem := Correction(data, k)
	out := make([]byte, k)
	for i := 0; i < k; i++ {
		out[i] = rem.Coefficient(k - 1 - i)
	}
	return out, nil
}

// Encode returns data followed by its k correction bytes.
func Encode(data []byte, k int) ([]byte, error) {
	ecc, err := Codewords(data, k)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	out := make([]byte, 0, len(data)+len(ecc))
	out = append(out, data...)
	return append(out, ecc...), nil
}
