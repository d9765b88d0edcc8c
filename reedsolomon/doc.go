// SPDX-License-Identifier: MIT

// Package reedsolomon computes QR-code error-correction codewords as the
// remainder of a message polynomial divided by a generator polynomial over
// GF(256).
//
// With n data bytes and k correction bytes:
//
//	message   M(x) = Σ data[i] · x^(n+k−i−1)      (payload in the high terms)
//	generator G(x) = Π_{i<k} (x − 2^i)            (degree exactly k)
//	code      R(x) = M(x) mod G(x)                 (degree < k)
//
// The coefficients of R, from x^(k−1) down to x^0, are the k bytes a QR
// encoder appends after the data. Codewords returns them in that order and
// Encode returns the full systematic codeword data‖ecc.
//
// Building a complete QR symbol (mode bits, masking, layout) is out of scope.
package reedsolomon
