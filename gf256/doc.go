// SPDX-License-Identifier: MIT

// Package gf256 implements arithmetic over the finite field GF(2^8) used by
// QR-code Reed-Solomon error correction.
//
// What
//
//   - Elements are bytes 0..255, read as polynomials over GF(2) of degree < 8.
//   - Reduction uses the irreducible polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D).
//   - The primitive element 2 generates all 255 non-zero elements, so
//     multiplication and division reduce to table lookups on discrete logs.
//
// Operations
//
//	Add(a, b), Sub(a, b)  XOR; addition and subtraction coincide
//	Mul(a, b)             exp[(log a + log b) mod 255], zero absorbs
//	Div(a, b)             exp[(log a − log b) mod 255]; b == 0 panics
//	Pow(a, n)             a^n, with a^0 == 1 for every a
//	Exp(n), Log(a), Inv(a)
//
// Contract
//
//	Division by zero and Log(0) are programmer errors and panic, the same way
//	integer division by zero does. Everything else is total.
//
// Complexity
//
//	Every operation is O(1); tables are built once at package init.
package gf256
