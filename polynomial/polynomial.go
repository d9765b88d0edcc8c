// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvkit/gf256"
)

// Polynomial is an immutable polynomial over GF(256).
// The zero value is the zero polynomial.
type Polynomial struct {
	terms map[int]byte // exponent → coefficient; may hold explicit zeros
}

// New returns a polynomial holding a copy of terms. A nil map yields the
// zero polynomial.
func New(terms map[int]byte) Polynomial {
	return Polynomial{terms: copyTerms(terms)}
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// Terms returns a copy of the exponent → coefficient map, including any
// explicit zero terms.
func (p Polynomial) Terms() map[int]byte {
	return copyTerms(p.terms)
}

// Coefficient returns the coefficient of x^power, or 0 if absent.
func (p Polynomial) Coefficient(power int) byte {
	return p.terms[power]
}

// Degree returns the highest exponent with a non-zero coefficient.
// The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	deg := 0
	for power, c := range p.terms {
		if c != 0 && power > deg {
			deg = power
		}
	}
	return deg
}

// IsZero reports whether every coefficient is 0.
func (p Polynomial) IsZero() bool {
	for _, c := range p.terms {
		if c != 0 {
			return false
		}
	}
	return true
}

// AddTerm returns p + coeff·x^power. The resulting coefficient is stored
// even when it cancels to 0.
func (p Polynomial) AddTerm(coeff byte, power int) Polynomial {
	out := copyTerms(p.terms)
	out[power] = gf256.Add(out[power], coeff)
	return Polynomial{terms: out}
}

// SubtractTerm returns p − coeff·x^power, which equals AddTerm in GF(256).
func (p Polynomial) SubtractTerm(coeff byte, power int) Polynomial {
	return p.AddTerm(coeff, power)
}

// MultiplyByTerm returns p · coeff·x^power: every coefficient is
// field-multiplied by coeff and every exponent shifted by power.
func (p Polynomial) MultiplyByTerm(coeff byte, power int) Polynomial {
	out := make(map[int]byte, len(p.terms))
	for pw, c := range p.terms {
		out[pw+power] = gf256.Mul(c, coeff)
	}
	return Polynomial{terms: out}
}

// AddPolynomial returns p + other, term by term.
func (p Polynomial) AddPolynomial(other Polynomial) Polynomial {
	out := copyTerms(p.terms)
	for pw, c := range other.terms {
		out[pw] = gf256.Add(out[pw], c)
	}
	return Polynomial{terms: out}
}

// SubtractPolynomial returns p − other, which equals AddPolynomial in GF(256).
func (p Polynomial) SubtractPolynomial(other Polynomial) Polynomial {
	return p.AddPolynomial(other)
}

// MultiplyByPolynomial returns p · other by distributing every term of
// other over p and summing the partial products.
func (p Polynomial) MultiplyByPolynomial(other Polynomial) Polynomial {
	result := Zero()
	for pw, c := range other.terms {
		result = result.AddPolynomial(p.MultiplyByTerm(c, pw))
	}
	return result
}

// Remainder returns the remainder of p divided by denominator in GF(256).
// The quotient is discarded. A zero denominator panics through gf256.Div
// unless p is itself zero.
func (p Polynomial) Remainder(denominator Polynomial) Polynomial {
	curr := p
	denDeg := denominator.Degree()
	denLead := denominator.Coefficient(denDeg)

	for {
		currDeg := curr.Degree()
		if currDeg < denDeg {
			return curr
		}
		lead := curr.Coefficient(currDeg)
		if lead == 0 {
			// Only reachable once curr is zero, which a constant
			// denominator can never lower below degree 0.
			return Zero().AddTerm(0, 0)
		}
		multiplier := DivideTerms(lead, currDeg, denLead, denDeg)
		curr = curr.SubtractPolynomial(denominator.MultiplyByPolynomial(multiplier))
	}
}

// Equal reports whether p and other have the same non-zero terms.
func (p Polynomial) Equal(other Polynomial) bool {
	for pw, c := range p.terms {
		if c != 0 && other.terms[pw] != c {
			return false
		}
	}
	for pw, c := range other.terms {
		if c != 0 && p.terms[pw] != c {
			return false
		}
	}
	return true
}

// String renders the non-zero terms in descending power order, e.g.
// "Polynomial: 3*x^2 + 1*x^1 + 7". The zero polynomial renders as
// "Polynomial: 0".
func (p Polynomial) String() string {
	parts := make([]string, 0, len(p.terms))
	for _, pw := range p.powersDesc() {
		c := p.terms[pw]
		if c == 0 {
			continue
		}
		if pw == 0 {
			parts = append(parts, fmt.Sprintf("%d", c))
		} else {
			parts = append(parts, fmt.Sprintf("%d*x^%d", c, pw))
		}
	}
	if len(parts) == 0 {
		return "Polynomial: 0"
	}
	return "Polynomial: " + strings.Join(parts, " + ")
}

// DivideTerms returns the single-term polynomial (c1·x^p1) / (c2·x^p2)
// = (c1/c2)·x^(p1−p2). Callers guarantee p1 ≥ p2 and c2 ≠ 0.
func DivideTerms(c1 byte, p1 int, c2 byte, p2 int) Polynomial {
	return Zero().AddTerm(gf256.Div(c1, c2), p1-p2)
}

// powersDesc returns the stored exponents, highest first.
func (p Polynomial) powersDesc() []int {
	powers := make([]int, 0, len(p.terms))
	for pw := range p.terms {
		powers = append(powers, pw)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(powers)))
	return powers
}

func copyTerms(src map[int]byte) map[int]byte {
	out := make(map[int]byte, len(src)+1)
	for pw, c := range src {
		out[pw] = c
	}
	return out
}
