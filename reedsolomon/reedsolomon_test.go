package reedsolomon_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/gf256"
	"github.com/katalvlaran/lvkit/polynomial"
	"github.com/katalvlaran/lvkit/reedsolomon"
)

// helloWorld1M holds the data codewords of "HELLO WORLD" at version 1-M.
var helloWorld1M = []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17}

// TestMessagePolynomial checks exponent placement n+k-i-1.
func TestMessagePolynomial(t *testing.T) {
	p := reedsolomon.MessagePolynomial([]byte{7, 8, 9}, 2)
	assert.True(t, p.Equal(polynomial.New(map[int]byte{4: 7, 3: 8, 2: 9})), p.String())
	assert.Equal(t, 4, p.Degree())
	assert.Equal(t, byte(0), p.Coefficient(1))
}

// TestGeneratorPolynomial compares against published QR generator tables.
func TestGeneratorPolynomial(t *testing.T) {
	assert.True(t, reedsolomon.GeneratorPolynomial(0).IsZero())
	assert.True(t, reedsolomon.GeneratorPolynomial(1).Equal(polynomial.New(map[int]byte{1: 1, 0: 1})))
	assert.True(t, reedsolomon.GeneratorPolynomial(2).Equal(polynomial.New(map[int]byte{2: 1, 1: 3, 0: 2})))

	// k=7: α^0 x^7 + α^87 x^6 + α^229 x^5 + α^146 x^4 + α^149 x^3 + α^238 x^2 + α^102 x + α^21
	logs := []int{0, 87, 229, 146, 149, 238, 102, 21}
	want := polynomial.Zero()
	for i, l := range logs {
		want = want.AddTerm(gf256.Exp(l), 7-i)
	}
	assert.True(t, reedsolomon.GeneratorPolynomial(7).Equal(want))

	for k := 1; k <= 30; k++ {
		g := reedsolomon.GeneratorPolynomial(k)
		require.Equal(t, k, g.Degree(), "k=%d", k)
		require.Equal(t, byte(1), g.Coefficient(k), "generator must be monic")
	}
}

// TestCodewordsHelloWorld checks the well-known 1-M error correction bytes.
func TestCodewordsHelloWorld(t *testing.T) {
	ecc, err := reedsolomon.Codewords(helloWorld1M, 10)
	require.NoError(t, err)
	assert.Equal(t, []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}, ecc)

	full, err := reedsolomon.Encode(helloWorld1M, 10)
	require.NoError(t, err)
	assert.Equal(t, helloWorld1M, full[:len(helloWorld1M)])
	assert.Equal(t, ecc, full[len(helloWorld1M):])
}

// TestCodewordsEdges covers k=0 and negative k.
func TestCodewordsEdges(t *testing.T) {
	ecc, err := reedsolomon.Codewords([]byte{1, 2, 3}, 0)
	require.NoError(t, err)
	assert.Empty(t, ecc)
	assert.True(t, reedsolomon.Correction([]byte{1, 2, 3}, 0).IsZero())

	_, err = reedsolomon.Codewords([]byte{1}, -1)
	assert.True(t, errors.Is(err, reedsolomon.ErrNegativeCorrection))
	_, err = reedsolomon.Encode([]byte{1}, -3)
	assert.True(t, errors.Is(err, reedsolomon.ErrNegativeCorrection))

	// All-zero data has an all-zero code.
	ecc, err = reedsolomon.Codewords(make([]byte, 5), 4)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 4), ecc)
}

// TestCodewordDivisibility checks that message + code is a multiple of the generator.
func TestCodewordDivisibility(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("M(x) + R(x) ≡ 0 mod G(x)", prop.ForAll(
		func(data []uint8, k int) bool {
			msg := reedsolomon.MessagePolynomial(data, k)
			code := reedsolomon.Correction(data, k)
			if code.Degree() >= k && !code.IsZero() {
				return false
			}
			return msg.AddPolynomial(code).Remainder(reedsolomon.GeneratorPolynomial(k)).IsZero()
		},
		gen.SliceOfN(12, gen.UInt8()), gen.IntRange(1, 16),
	))

	properties.TestingRun(t)
}

// TestByteModeData checks bit packing, terminator and padding.
func TestByteModeData(t *testing.T) {
	got, err := reedsolomon.ByteModeData("A", 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x40, 0x14, 0x10}, got)

	got, err = reedsolomon.ByteModeData("A", 6)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x40, 0x14, 0x10, 0xEC, 0x11, 0xEC}, got)

	got, err = reedsolomon.ByteModeData("", 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x40, 0x00}, got)

	got, err = reedsolomon.ByteModeData("hello, world!!", reedsolomon.Version1M)
	require.NoError(t, err)
	assert.Len(t, got, reedsolomon.Version1M)

	_, err = reedsolomon.ByteModeData("hello, world!!!", reedsolomon.Version1M)
	assert.ErrorIs(t, err, reedsolomon.ErrMessageTooLong)
}
