package reedsolomon_test

import (
	"fmt"

	"github.com/katalvlaran/lvkit/reedsolomon"
)

// ExampleCodewords computes the correction bytes for a short payload.
func ExampleCodewords() {
	ecc, err := reedsolomon.Codewords(helloWorld1M, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ecc)
	// Output:
	// [196 35 39 119 235 215 231 226 93 23]
}
