// SPDX-License-Identifier: MIT

package gf256

const (
	// Modulus is the irreducible polynomial x^8 + x^4 + x^3 + x^2 + 1.
	Modulus = 0x11D

	// Generator is the primitive element used to build the log tables.
	Generator = 2

	// order is the size of the multiplicative group (2^8 − 1).
	order = 255
)

var (
	// expTable is doubled so (log a + log b) never needs a modulo.
	expTable [2 * order]byte
	logTable [256]int
)

func init() {
	x := 1
	for i := 0; i < order; i++ {
		expTable[i] = byte(x)
		logTable[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= Modulus
		}
	}
	for i := order; i < 2*order; i++ {
		expTable[i] = expTable[i-order]
	}
}

// Add returns a + b. Field addition is XOR.
func Add(a, b byte) byte { return a ^ b }

// Sub returns a − b, which equals a + b in characteristic 2.
func Sub(a, b byte) byte { return a ^ b }

// Mul returns a · b.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[logTable[a]+logTable[b]]
}

// Div returns a / b. It panics if b is zero.
func Div(a, b byte) byte {
	if b == 0 {
		panic("gf256: division by zero")
	}
	if a == 0 {
		return 0
	}
	return expTable[logTable[a]+order-logTable[b]]
}

// Inv returns the multiplicative inverse of a. It panics if a is zero.
func Inv(a byte) byte {
	return Div(1, a)
}

// Exp returns Generator^n. Negative n counts down from the group order.
func Exp(n int) byte {
	n %= order
	if n < 0 {
		n += order
	}
	return expTable[n]
}

// Log returns the discrete logarithm of a base Generator, in [0, 255).
// It panics if a is zero.
func Log(a byte) int {
	if a == 0 {
		panic("gf256: log of zero")
	}
	return logTable[a]
}

// Pow returns base^n. Pow(x, 0) is 1 for every x, including 0;
// Pow(0, n) is 0 for n > 0. Negative exponents invert a non-zero base.
func Pow(base byte, n int) byte {
	if n == 0 {
		return 1
	}
	if base == 0 {
		if n < 0 {
			panic("gf256: zero to a negative power")
		}
		return 0
	}
	return Exp(logTable[base] * (n % order))
}
