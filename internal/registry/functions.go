package registry

import (
	"fmt"
	"math"

	"github.com/chongchonghe/acap/internal/quantity"
)

type functionDef struct {
	name string
	fn   Func
	doc  string
}

// angleArg extracts a value in radians. Dimensionless arguments pass through;
// pure angle arguments (degrees, arcsec, ...) are already stored in radians.
// Anything else is outside the function's domain.
func angleArg(name string, q quantity.Quantity) (float64, error) {
	if q.IsDimensionless() {
		return q.Value(), nil
	}
	if q.Dim.Equal(quantity.Dim(quantity.Angle, 1)) {
		return q.Val, nil
	}
	return 0, &quantity.DomainError{
		Message: fmt.Sprintf("%s requires a dimensionless or angle argument", name),
	}
}

// scalarArg requires a plain number (no dimensions, not even angle).
func scalarArg(name string, q quantity.Quantity) (float64, error) {
	if !q.IsDimensionless() {
		return 0, &quantity.DomainError{
			Message: fmt.Sprintf("%s requires a dimensionless argument", name),
		}
	}
	return q.Value(), nil
}

func trig(name string, f func(float64) float64) Func {
	return func(q quantity.Quantity) (quantity.Quantity, error) {
		v, err := angleArg(name, q)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return quantity.FromFloat(f(v)), nil
	}
}

func scalar(name string, f func(float64) float64, domain func(float64) bool, domainMsg string) Func {
	return func(q quantity.Quantity) (quantity.Quantity, error) {
		v, err := scalarArg(name, q)
		if err != nil {
			return quantity.Quantity{}, err
		}
		if domain != nil && !domain(v) {
			return quantity.Quantity{}, &quantity.DomainError{
				Message: fmt.Sprintf("%s: %s", name, domainMsg),
			}
		}
		return quantity.FromFloat(f(v)), nil
	}
}

func absFn(q quantity.Quantity) (quantity.Quantity, error) {
	if q.Kind == quantity.KindInt && q.Whole < 0 {
		return quantity.FromInt(-q.Whole), nil
	}
	if q.Value() < 0 {
		return quantity.Neg(q), nil
	}
	return q, nil
}

func positive(v float64) bool     { return v > 0 }
func unitInterval(v float64) bool { return v >= -1 && v <= 1 }

// functionDefs is the fixed vocabulary of elementary functions. Trigonometric
// functions normalize angle arguments to radians; inverses return plain
// numbers in radians.
var functionDefs = []functionDef{
	{"sin", trig("sin", math.Sin), "sine"},
	{"cos", trig("cos", math.Cos), "cosine"},
	{"tan", trig("tan", math.Tan), "tangent"},
	{"asin", scalar("asin", math.Asin, unitInterval, "argument outside [-1, 1]"), "inverse sine"},
	{"acos", scalar("acos", math.Acos, unitInterval, "argument outside [-1, 1]"), "inverse cosine"},
	{"atan", scalar("atan", math.Atan, nil, ""), "inverse tangent"},
	{"arcsin", scalar("arcsin", math.Asin, unitInterval, "argument outside [-1, 1]"), "inverse sine"},
	{"arccos", scalar("arccos", math.Acos, unitInterval, "argument outside [-1, 1]"), "inverse cosine"},
	{"arctan", scalar("arctan", math.Atan, nil, ""), "inverse tangent"},
	{"sinh", scalar("sinh", math.Sinh, nil, ""), "hyperbolic sine"},
	{"cosh", scalar("cosh", math.Cosh, nil, ""), "hyperbolic cosine"},
	{"tanh", scalar("tanh", math.Tanh, nil, ""), "hyperbolic tangent"},
	{"asinh", scalar("asinh", math.Asinh, nil, ""), "inverse hyperbolic sine"},
	{"acosh", scalar("acosh", math.Acosh, func(v float64) bool { return v >= 1 }, "argument below 1"), "inverse hyperbolic cosine"},
	{"atanh", scalar("atanh", math.Atanh, func(v float64) bool { return v > -1 && v < 1 }, "argument outside (-1, 1)"), "inverse hyperbolic tangent"},
	{"arcsinh", scalar("arcsinh", math.Asinh, nil, ""), "inverse hyperbolic sine"},
	{"arccosh", scalar("arccosh", math.Acosh, func(v float64) bool { return v >= 1 }, "argument below 1"), "inverse hyperbolic cosine"},
	{"arctanh", scalar("arctanh", math.Atanh, func(v float64) bool { return v > -1 && v < 1 }, "argument outside (-1, 1)"), "inverse hyperbolic tangent"},
	{"sqrt", quantity.Sqrt, "square root"},
	{"exp", scalar("exp", math.Exp, nil, ""), "exponential"},
	{"log", scalar("log", math.Log, positive, "argument must be positive"), "natural logarithm"},
	{"ln", scalar("ln", math.Log, positive, "argument must be positive"), "natural logarithm"},
	{"log10", scalar("log10", math.Log10, positive, "argument must be positive"), "base-10 logarithm"},
	{"log2", scalar("log2", math.Log2, positive, "argument must be positive"), "base-2 logarithm"},
	{"abs", absFn, "absolute value"},
}
