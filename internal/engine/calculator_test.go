package engine

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chongchonghe/acap/internal/quantity"
)

func newTestCalc() (*Calculator, *Namespace) {
	c := New(nil, DefaultOptions())
	return c, c.NewNamespace()
}

func TestEvaluateSequencing(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("a = 2, b = a * 3, b", ns)
	require.Nil(t, err)
	assert.Equal(t, "6", res.SI)
	assert.Equal(t, quantity.KindInt, res.Raw.Kind)

	// Bindings persist in the namespace across lines.
	res, err = c.EvaluateLine("a + b", ns)
	require.Nil(t, err)
	assert.Equal(t, "8", res.SI)
}

func TestEvaluateForwardReference(t *testing.T) {
	c, ns := newTestCalc()

	_, err := c.EvaluateLine("c", ns)
	require.NotNil(t, err)
	assert.Equal(t, KindName, err.Kind)
}

func TestEvaluatePartialCommit(t *testing.T) {
	c, ns := newTestCalc()

	_, err := c.EvaluateLine("x = 5, y = zz, x", ns)
	require.NotNil(t, err)
	assert.Equal(t, KindName, err.Kind)

	// The binding before the failure stays committed.
	res, err := c.EvaluateLine("x", ns)
	require.Nil(t, err)
	assert.Equal(t, "5", res.SI)
}

func TestEvaluateChainedAssignment(t *testing.T) {
	c, ns := newTestCalc()

	_, err := c.EvaluateLine("a = b = 2, a", ns)
	require.NotNil(t, err)
	assert.Equal(t, KindAssignment, err.Kind)
}

func TestEvaluateNonAssignmentStatementSkipped(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("3 + 4, 5", ns)
	require.Nil(t, err)
	assert.Equal(t, "5", res.SI)
}

func TestEvaluateEmptyInput(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("   ", ns)
	require.Nil(t, err)
	assert.True(t, res.Empty)
}

func TestEvaluateProtonMass(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("m_p", ns)
	require.Nil(t, err)
	assert.Equal(t, "1.672621924e-27 kg", res.SI)
	assert.Equal(t, "1.672621924e-24 g", res.CGS)
}

func TestEvaluateEscapeVelocity(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("M = 1.4 M_sun, R = 10 km, sqrt(2 G M / R) in km/s", ns)
	require.Nil(t, err)
	assert.Equal(t, "sqrt(2*G*M/R)", res.ParsedExpression)
	assert.Equal(t, "km/s", res.TargetUnit)

	require.True(t, strings.HasSuffix(res.Converted, " km/s"), res.Converted)
	v, perr := strconv.ParseFloat(strings.TrimSuffix(res.Converted, " km/s"), 64)
	require.NoError(t, perr)
	assert.InEpsilon(t, 1.92768e5, v, 1e-4)
}

func TestEvaluateTrig(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("sin(90 deg)", ns)
	require.Nil(t, err)
	assert.Equal(t, "1", res.SI)

	_, err = c.EvaluateLine("sin(1 m)", ns)
	require.NotNil(t, err)
	assert.Equal(t, KindDomain, err.Kind)
}

func TestConvertRoundTrip(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("1 pc in km", ns)
	require.Nil(t, err)
	require.True(t, strings.HasSuffix(res.Converted, " km"), res.Converted)
	v, perr := strconv.ParseFloat(strings.TrimSuffix(res.Converted, " km"), 64)
	require.NoError(t, perr)
	assert.InEpsilon(t, 3.0856775814913673e13, v, 1e-9)
}

func TestConvertDimensionMismatch(t *testing.T) {
	c, ns := newTestCalc()

	// Mismatched units degrade the conversion column, not the whole result.
	res, err := c.EvaluateLine("2 m in kg", ns)
	require.Nil(t, err)
	assert.Equal(t, "2 m", res.SI)
	assert.Contains(t, res.Converted, "Error")

	_, cerr := c.ConvertToUnit(res.Raw, "kg")
	require.NotNil(t, cerr)
	assert.Equal(t, KindUnitConversion, cerr.Kind)
}

func TestConvertDimensionlessToAngle(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("asin(1) in deg", ns)
	require.Nil(t, err)
	require.True(t, strings.HasSuffix(res.Converted, " deg"), res.Converted)
	v, perr := strconv.ParseFloat(strings.TrimSuffix(res.Converted, " deg"), 64)
	require.NoError(t, perr)
	assert.InDelta(t, 90, v, 1e-9)
}

func TestConvertDimensionless(t *testing.T) {
	c, _ := newTestCalc()

	// An unknown word in the unit slot is a conversion error.
	_, err := c.ConvertToUnit(quantity.FromInt(7), "whatever")
	require.NotNil(t, err)

	out, err := c.ConvertToUnit(quantity.FromFloat(2.5), "km")
	require.Nil(t, err)
	assert.Equal(t, "2.5", out)
}

func TestNamespaceShadowsRegistry(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("pi = 3, pi", ns)
	require.Nil(t, err)
	assert.Equal(t, "3", res.SI)

	ns.Reset()
	res, err = c.EvaluateLine("pi", ns)
	require.Nil(t, err)
	assert.Equal(t, "3.141592654", res.SI)
}

func TestScientificNotation(t *testing.T) {
	c := New(nil, Options{Digits: 4, Scientific: true, Delimiter: ","})
	ns := c.NewNamespace()

	res, err := c.EvaluateLine("1.5", ns)
	require.Nil(t, err)
	assert.Equal(t, "1.500e+00", res.SI)
}

func TestGaussianUnits(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("Gauss", ns)
	require.Nil(t, err)
	assert.Contains(t, res.SI, "kg(1/2)")
}

func TestCurrentHasNoCGS(t *testing.T) {
	c, ns := newTestCalc()

	res, err := c.EvaluateLine("2 A", ns)
	require.Nil(t, err)
	assert.Equal(t, "2 A", res.SI)
	assert.Contains(t, res.CGS, "no unique CGS representation")
}
