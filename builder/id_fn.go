// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn yields "0", "1", "2", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// DefaultMovieFn yields "Movie 0", "Movie 1", ...
func DefaultMovieFn(j int) string { return "Movie " + strconv.Itoa(j) }

// SymbolIDFn yields "A".."Z" and panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn yields "A".."Z", "AA", "AB", ... and panics on negatives.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// PrefixIDFn yields prefix+"0", prefix+"1", ... e.g. "Actor 0".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
