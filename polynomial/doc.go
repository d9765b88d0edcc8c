// SPDX-License-Identifier: MIT

// Package polynomial provides immutable polynomials with coefficients in
// GF(256), the arithmetic behind QR-code Reed-Solomon error correction.
//
// What
//
//   - A Polynomial maps non-negative exponents to gf256 coefficients.
//     Absent exponents have coefficient 0; explicit zero terms are allowed
//     and ignored by Degree, Equal and String.
//   - Every operation returns a new Polynomial; receivers are never mutated,
//     so values can be shared freely across goroutines.
//   - Coefficient arithmetic is delegated to package gf256. Addition and
//     subtraction are both XOR, so AddTerm/SubtractTerm and
//     AddPolynomial/SubtractPolynomial are identical.
//
// Division
//
//	Remainder performs long division and keeps only the remainder:
//
//	  while deg(curr) ≥ deg(den):
//	      q    = lead(curr) / lead(den)        (DivideTerms)
//	      curr = curr − q·den
//
//	Each step cancels the leading term exactly, so the loop terminates with
//	deg(curr) < deg(den), or with the zero polynomial when den is a constant.
//
// Complexity (n, m = number of terms)
//
//   - AddTerm, Coefficient:        O(n) (copy-on-write)
//   - AddPolynomial:               O(n + m)
//   - MultiplyByPolynomial:        O(n·m)
//   - Remainder:                   O((deg(curr) − deg(den) + 1) · m)
//
// Usage
//
//	p := polynomial.New(map[int]byte{2: 1, 0: 7}) // x^2 + 7
//	q := p.MultiplyByTerm(3, 1)                   // 3x^3 + 9x
//	r := q.Remainder(p)
//	fmt.Println(r)                                // Polynomial: ...
package polynomial
