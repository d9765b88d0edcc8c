package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/lvkit/polynomial"
)

// ExamplePolynomial_Remainder divides x^3 by (x + 2)(x + 1) over GF(256).
func ExamplePolynomial_Remainder() {
	den := polynomial.New(map[int]byte{1: 1, 0: 1}).
		MultiplyByPolynomial(polynomial.New(map[int]byte{1: 1, 0: 2}))
	fmt.Println(den)

	num := polynomial.New(map[int]byte{3: 1})
	rem := num.Remainder(den)
	fmt.Println(rem.Degree() < den.Degree())
	// Output:
	// Polynomial: 1*x^2 + 3*x^1 + 2
	// true
}
