package quantity

import (
	"math"
	"strconv"
)

// Kind tags the closed set of value categories a calculation can produce.
type Kind int

const (
	// KindInt is an exact dimensionless integer.
	KindInt Kind = iota
	// KindFloat is a dimensionless floating-point number.
	KindFloat
	// KindDimensioned is a magnitude with a non-trivial dimension vector,
	// stored in SI base units.
	KindDimensioned
)

// Quantity is the value type flowing through evaluation. It is immutable once
// produced; all arithmetic returns fresh values.
type Quantity struct {
	Kind  Kind
	Whole int64   // set for KindInt
	Val   float64 // set for KindFloat and KindDimensioned
	Dim   Dimension
}

// FromInt returns an exact integer quantity.
func FromInt(n int64) Quantity { return Quantity{Kind: KindInt, Whole: n} }

// FromFloat returns a dimensionless float quantity.
func FromFloat(f float64) Quantity { return Quantity{Kind: KindFloat, Val: f} }

// New returns a dimensioned quantity; a zero dimension vector degrades to a
// plain float so classification stays honest.
func New(val float64, dim Dimension) Quantity {
	if dim.IsZero() {
		return FromFloat(val)
	}
	return Quantity{Kind: KindDimensioned, Val: val, Dim: dim}
}

// Value returns the magnitude regardless of kind.
func (q Quantity) Value() float64 {
	if q.Kind == KindInt {
		return float64(q.Whole)
	}
	return q.Val
}

// IsDimensionless reports whether q carries no dimensions (angle included).
func (q Quantity) IsDimensionless() bool { return q.Kind != KindDimensioned }

// IsInteger reports whether q is an exact or integer-valued dimensionless
// number.
func (q Quantity) IsInteger() bool {
	switch q.Kind {
	case KindInt:
		return true
	case KindFloat:
		return q.Val == math.Trunc(q.Val) && !math.IsInf(q.Val, 0)
	default:
		return false
	}
}

// String is a debugging rendering; user-facing formatting lives in the engine.
func (q Quantity) String() string {
	switch q.Kind {
	case KindInt:
		return strconv.FormatInt(q.Whole, 10)
	case KindFloat:
		return strconv.FormatFloat(q.Val, 'g', -1, 64)
	default:
		return strconv.FormatFloat(q.Val, 'g', -1, 64) + " " + q.Dim.Format(siDebugNames)
	}
}

var siDebugNames = [NumDims]string{"m", "kg", "s", "A", "K", "mol", "cd", "rad"}

// Add returns a + b. Both sides must reduce to the same dimension vector.
func Add(a, b Quantity) (Quantity, error) {
	if a.Kind == KindInt && b.Kind == KindInt {
		return FromInt(a.Whole + b.Whole), nil
	}
	if err := requireSameDim("+", a, b); err != nil {
		return Quantity{}, err
	}
	return New(a.Value()+b.Value(), a.Dim), nil
}

// Sub returns a - b with the same compatibility rule as Add.
func Sub(a, b Quantity) (Quantity, error) {
	if a.Kind == KindInt && b.Kind == KindInt {
		return FromInt(a.Whole - b.Whole), nil
	}
	if err := requireSameDim("-", a, b); err != nil {
		return Quantity{}, err
	}
	return New(a.Value()-b.Value(), a.Dim), nil
}

// Mul returns a * b; dimension vectors add elementwise.
func Mul(a, b Quantity) (Quantity, error) {
	if a.Kind == KindInt && b.Kind == KindInt {
		return FromInt(a.Whole * b.Whole), nil
	}
	return New(a.Value()*b.Value(), a.Dim.Add(b.Dim)), nil
}

// Div returns a / b; dimension vectors subtract elementwise. Division is
// always floating-point, matching the source language's semantics.
func Div(a, b Quantity) (Quantity, error) {
	if b.Value() == 0 {
		return Quantity{}, domainErrorf("division by zero")
	}
	return New(a.Value()/b.Value(), a.Dim.Sub(b.Dim)), nil
}

// Neg returns -q.
func Neg(q Quantity) Quantity {
	if q.Kind == KindInt {
		return FromInt(-q.Whole)
	}
	return New(-q.Val, q.Dim)
}

// Pow returns base^exp. The exponent must be dimensionless. A dimensioned
// base requires an exponent expressible as a small rational so the dimension
// vector scales exactly; anything else is a domain error.
func Pow(base, exp Quantity) (Quantity, error) {
	if !exp.IsDimensionless() {
		return Quantity{}, dimensionErrorf("exponent must be dimensionless, got [%s]", exp.Dim.Format(siDebugNames))
	}
	if base.Kind == KindInt && exp.Kind == KindInt && exp.Whole >= 0 {
		if n, ok := intPow(base.Whole, exp.Whole); ok {
			return FromInt(n), nil
		}
	}
	e := exp.Value()
	if base.IsDimensionless() {
		v := base.Value()
		if v < 0 && e != math.Trunc(e) {
			return Quantity{}, domainErrorf("fractional power of negative number")
		}
		return FromFloat(math.Pow(v, e)), nil
	}
	r, ok := RatioFromFloat(e)
	if !ok {
		return Quantity{}, domainErrorf("exponent %g does not divide the dimensions of the base evenly", e)
	}
	if base.Val < 0 && !r.IsInt() {
		return Quantity{}, domainErrorf("fractional power of negative quantity")
	}
	return New(math.Pow(base.Val, e), base.Dim.Scale(r)), nil
}

// Sqrt returns the square root, halving the dimension vector.
func Sqrt(q Quantity) (Quantity, error) {
	if q.Value() < 0 {
		return Quantity{}, domainErrorf("square root of negative value")
	}
	if q.IsDimensionless() {
		return FromFloat(math.Sqrt(q.Value())), nil
	}
	return New(math.Sqrt(q.Val), q.Dim.Scale(NewRatio(1, 2))), nil
}

// Factorial returns q! for a non-negative integer-valued dimensionless scalar.
// Results beyond 20! fall back to floating point via the gamma function.
func Factorial(q Quantity) (Quantity, error) {
	if !q.IsDimensionless() {
		return Quantity{}, domainErrorf("factorial of a dimensioned quantity")
	}
	if !q.IsInteger() {
		return Quantity{}, domainErrorf("factorial of a non-integer value")
	}
	n := int64(q.Value())
	if n < 0 {
		return Quantity{}, domainErrorf("factorial of a negative value")
	}
	if n <= 20 {
		out := int64(1)
		for i := int64(2); i <= n; i++ {
			out *= i
		}
		return FromInt(out), nil
	}
	return FromFloat(math.Gamma(float64(n) + 1)), nil
}

func requireSameDim(op string, a, b Quantity) error {
	var da, db Dimension
	if a.Kind == KindDimensioned {
		da = a.Dim
	}
	if b.Kind == KindDimensioned {
		db = b.Dim
	}
	if !da.Equal(db) {
		return dimensionErrorf("'%s' requires matching dimensions: [%s] vs [%s]",
			op, orOne(da.Format(siDebugNames)), orOne(db.Format(siDebugNames)))
	}
	return nil
}

func orOne(s string) string {
	if s == "" {
		return "1"
	}
	return s
}

func intPow(base, exp int64) (int64, bool) {
	out := int64(1)
	for i := int64(0); i < exp; i++ {
		prev := out
		out *= base
		if base != 0 && out/base != prev {
			return 0, false
		}
	}
	return out, true
}
