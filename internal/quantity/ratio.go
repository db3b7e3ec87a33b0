package quantity

import (
	"fmt"
	"math"
)

// Ratio is a small exact rational, used for dimension exponents. CGS
// electromagnetic units carry half-integer exponents, so plain ints are not
// enough, and float exponents would break equality checks.
type Ratio struct {
	Num int
	Den int
}

// NewRatio returns num/den reduced to lowest terms with a positive denominator.
func NewRatio(num, den int) Ratio {
	if den == 0 {
		panic("quantity: ratio with zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Ratio{Num: num, Den: den}
}

// RatioFromInt returns n as a ratio.
func RatioFromInt(n int) Ratio { return Ratio{Num: n, Den: 1} }

// RatioFromFloat approximates f as a small rational. It reports false when no
// denominator up to 64 matches within tolerance, which is how irrational
// exponents on dimensioned quantities get rejected.
func RatioFromFloat(f float64) (Ratio, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Ratio{}, false
	}
	const tol = 1e-9
	for den := 1; den <= 64; den++ {
		num := math.Round(f * float64(den))
		if math.Abs(num) > 1e9 {
			return Ratio{}, false
		}
		if math.Abs(f-num/float64(den)) < tol {
			return NewRatio(int(num), den), true
		}
	}
	return Ratio{}, false
}

// norm maps a zero denominator onto 1, so the zero value {0, 0} means
// exponent zero. Dimension vectors rely on this: single-slot constructors
// and literals leave the other slots at the zero value.
func (r Ratio) norm() Ratio {
	if r.Den == 0 {
		return Ratio{Num: r.Num, Den: 1}
	}
	return r
}

// Add returns r + o.
func (r Ratio) Add(o Ratio) Ratio {
	r, o = r.norm(), o.norm()
	return NewRatio(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den)
}

// Sub returns r - o.
func (r Ratio) Sub(o Ratio) Ratio {
	r, o = r.norm(), o.norm()
	return NewRatio(r.Num*o.Den-o.Num*r.Den, r.Den*o.Den)
}

// Mul returns r * o.
func (r Ratio) Mul(o Ratio) Ratio {
	r, o = r.norm(), o.norm()
	return NewRatio(r.Num*o.Num, r.Den*o.Den)
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	r = r.norm()
	return Ratio{Num: -r.Num, Den: r.Den}
}

// Eq reports equality, treating the zero value as zero.
func (r Ratio) Eq(o Ratio) bool { return r.norm() == o.norm() }

// IsZero reports whether r == 0.
func (r Ratio) IsZero() bool { return r.Num == 0 }

// IsInt reports whether r is a whole number.
func (r Ratio) IsInt() bool { return r.norm().Den == 1 }

// Float returns r as a float64.
func (r Ratio) Float() float64 {
	r = r.norm()
	return float64(r.Num) / float64(r.Den)
}

// String renders "3", "-2" or "3/2".
func (r Ratio) String() string {
	r = r.norm()
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
