package gf256_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/gf256"
)

// TestTables checks a few well-known values of the 0x11D field.
func TestTables(t *testing.T) {
	assert.Equal(t, byte(1), gf256.Exp(0))
	assert.Equal(t, byte(2), gf256.Exp(1))
	assert.Equal(t, byte(0x80), gf256.Exp(7))
	assert.Equal(t, byte(0x1D), gf256.Exp(8)) // 2^8 reduced by 0x11D
	assert.Equal(t, byte(1), gf256.Exp(255))
	assert.Equal(t, gf256.Exp(254), gf256.Exp(-1))
	assert.Equal(t, 8, gf256.Log(0x1D))
}

// TestMulDiv covers zero handling and a hand-computed product.
func TestMulDiv(t *testing.T) {
	assert.Equal(t, byte(0), gf256.Mul(0, 77))
	assert.Equal(t, byte(0), gf256.Mul(77, 0))
	assert.Equal(t, byte(0), gf256.Div(0, 77))
	assert.Equal(t, byte(0x1D), gf256.Mul(0x80, 2))
	assert.Equal(t, byte(0x80), gf256.Div(0x1D, 2))
	require.Panics(t, func() { gf256.Div(3, 0) })
	require.Panics(t, func() { gf256.Log(0) })
}

// TestPow covers the exponent edge cases.
func TestPow(t *testing.T) {
	assert.Equal(t, byte(1), gf256.Pow(0, 0))
	assert.Equal(t, byte(1), gf256.Pow(123, 0))
	assert.Equal(t, byte(0), gf256.Pow(0, 5))
	assert.Equal(t, byte(16), gf256.Pow(2, 4))
	assert.Equal(t, byte(1), gf256.Pow(2, 255))
	assert.Equal(t, gf256.Inv(2), gf256.Pow(2, -1))
	for i := 0; i < 20; i++ {
		assert.Equal(t, gf256.Exp(i), gf256.Pow(gf256.Generator, i))
	}
}

// TestFieldLaws checks the field axioms over random elements.
func TestFieldLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("addition is self-inverse", prop.ForAll(
		func(a, b uint8) bool {
			return gf256.Add(gf256.Add(a, b), b) == a && gf256.Sub(a, b) == gf256.Add(a, b)
		},
		gen.UInt8(), gen.UInt8(),
	))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b uint8) bool { return gf256.Mul(a, b) == gf256.Mul(b, a) },
		gen.UInt8(), gen.UInt8(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c uint8) bool {
			return gf256.Mul(a, gf256.Add(b, c)) == gf256.Add(gf256.Mul(a, b), gf256.Mul(a, c))
		},
		gen.UInt8(), gen.UInt8(), gen.UInt8(),
	))

	properties.Property("division undoes multiplication", prop.ForAll(
		func(a, b uint8) bool { return gf256.Div(gf256.Mul(a, b), b) == a },
		gen.UInt8(), gen.UInt8Range(1, 255),
	))

	properties.Property("every non-zero element has an inverse", prop.ForAll(
		func(a uint8) bool { return gf256.Mul(a, gf256.Inv(a)) == 1 },
		gen.UInt8Range(1, 255),
	))

	properties.TestingRun(t)
}
