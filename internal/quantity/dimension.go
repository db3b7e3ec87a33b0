package quantity

import (
	"fmt"
	"strings"
)

// Base dimension indices. Angle is a pseudo-dimension: dimensionless in SI,
// but tracked so degree/radian/arcsec values round-trip through conversions.
const (
	Length = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity
	Angle
	NumDims
)

// Dimension is a vector of rational exponents over the base dimensions.
type Dimension [NumDims]Ratio

// Dimensionless is the zero dimension vector.
var Dimensionless Dimension

// Dim builds a dimension with a single integer exponent.
func Dim(index, exp int) Dimension {
	var d Dimension
	d[index] = RatioFromInt(exp)
	return d
}

// DimRat builds a dimension with a single rational exponent.
func DimRat(index int, num, den int) Dimension {
	var d Dimension
	d[index] = NewRatio(num, den)
	return d
}

// Add returns the elementwise sum of d and o (multiplication of quantities).
func (d Dimension) Add(o Dimension) Dimension {
	var out Dimension
	for i := 0; i < NumDims; i++ {
		out[i] = d[i].Add(o[i])
	}
	return out
}

// Sub returns the elementwise difference of d and o (division of quantities).
func (d Dimension) Sub(o Dimension) Dimension {
	var out Dimension
	for i := 0; i < NumDims; i++ {
		out[i] = d[i].Sub(o[i])
	}
	return out
}

// Scale multiplies every exponent by r (exponentiation of quantities).
func (d Dimension) Scale(r Ratio) Dimension {
	var out Dimension
	for i := 0; i < NumDims; i++ {
		out[i] = d[i].Mul(r)
	}
	return out
}

// IsZero reports whether every exponent is zero.
func (d Dimension) IsZero() bool {
	for i := 0; i < NumDims; i++ {
		if !d[i].IsZero() {
			return false
		}
	}
	return true
}

// IsAngle reports whether d is a pure angle (only the angle exponent set).
func (d Dimension) IsAngle() bool {
	for i := 0; i < NumDims; i++ {
		if i != Angle && !d[i].IsZero() {
			return false
		}
	}
	return !d[Angle].IsZero()
}

// Equal reports exact equality of the exponent vectors. Comparison goes
// through Ratio.Eq so an unset slot equals an explicit zero exponent.
func (d Dimension) Equal(o Dimension) bool {
	for i := 0; i < NumDims; i++ {
		if !d[i].Eq(o[i]) {
			return false
		}
	}
	return true
}

// Format renders the dimension as a unit string using the given base unit
// names, astropy style: positive exponents first, negatives after " / ",
// e.g. "kg m2 / s3" or "g(1/2) cm(3/2) / s".
func (d Dimension) Format(names [NumDims]string) string {
	var num, den []string
	for i := 0; i < NumDims; i++ {
		r := d[i]
		if r.IsZero() {
			continue
		}
		if r.Num > 0 {
			num = append(num, expTerm(names[i], r))
		} else {
			den = append(den, expTerm(names[i], r.Neg()))
		}
	}
	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, " ")
	case len(num) == 0:
		return "1 / " + strings.Join(den, " ")
	default:
		return strings.Join(num, " ") + " / " + strings.Join(den, " ")
	}
}

func expTerm(name string, r Ratio) string {
	if r.IsInt() {
		if r.Num == 1 {
			return name
		}
		return fmt.Sprintf("%s%d", name, r.Num)
	}
	return fmt.Sprintf("%s(%s)", name, r)
}
