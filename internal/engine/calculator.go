// Package engine is the calculator core: it sequences statements, evaluates
// expressions against a layered namespace, classifies results and formats
// them in SI, CGS and arbitrary requested units.
package engine

import (
	"strings"

	"github.com/chongchonghe/acap/internal/logger"
	"github.com/chongchonghe/acap/internal/parser"
	"github.com/chongchonghe/acap/internal/quantity"
	"github.com/chongchonghe/acap/internal/registry"
)

// Options configures formatting and statement handling.
type Options struct {
	// Digits is the significant digit count for float rendering.
	Digits int
	// Scientific switches float rendering to scientific notation.
	Scientific bool
	// Delimiter separates statements within one input line.
	Delimiter string
	// RequireUnderscore rejects assigned variable names that do not start
	// with an underscore.
	RequireUnderscore bool
}

// DefaultOptions returns the standard ten-significant-digit configuration.
func DefaultOptions() Options {
	return Options{Digits: 10, Delimiter: ","}
}

// Calculator evaluates input lines against the shared registry. It holds no
// session state itself; that lives in the Namespace a caller supplies, so one
// Calculator can serve many sessions.
type Calculator struct {
	reg  *registry.Registry
	opts Options
}

// New creates a calculator. A nil registry means the shared default.
func New(reg *registry.Registry, opts Options) *Calculator {
	if reg == nil {
		reg = registry.Default()
	}
	if opts.Digits <= 0 {
		opts.Digits = 10
	}
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	return &Calculator{reg: reg, opts: opts}
}

// NewNamespace returns a fresh session namespace over the calculator's
// registry.
func (c *Calculator) NewNamespace() *Namespace {
	return NewNamespace(c.reg)
}

// Result is the outcome of one full evaluation.
type Result struct {
	// Empty marks an input with no statements; not an error.
	Empty bool
	// ParsedExpression is the canonical re-printed form of the terminal
	// expression.
	ParsedExpression string
	// Raw is the unformatted quantity, retained for later conversions.
	Raw quantity.Quantity
	// SI and CGS are the formatted renderings in the two base unit systems.
	SI  string
	CGS string
	// TargetUnit and Converted are set when the input carried a trailing
	// "in <unit>" clause. A conversion failure leaves its message in
	// Converted without failing the evaluation.
	TargetUnit string
	Converted  string
}

// EvaluateLine evaluates one possibly multi-statement input against ns.
// Every statement before the last must be an assignment; assignments commit
// to the namespace as they succeed, and the first failure aborts the rest of
// the sequence.
func (c *Calculator) EvaluateLine(input string, ns *Namespace) (*Result, *Error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return &Result{Empty: true}, nil
	}
	logger.Debug("evaluate: %q", input)

	statements := strings.Split(input, c.opts.Delimiter)
	for i := 0; i < len(statements)-1; i++ {
		if err := c.evalAssignment(statements[i], ns); err != nil {
			return nil, err
		}
	}

	terminal := strings.TrimSpace(statements[len(statements)-1])
	terminal, targetUnit := splitConversionClause(terminal)

	node, err := parser.Parse(terminal)
	if err != nil {
		return nil, classify(err)
	}
	raw, err := eval(node, ns)
	if err != nil {
		return nil, classify(err)
	}

	res := &Result{
		ParsedExpression: node.String(),
		Raw:              raw,
		SI:               c.formatSI(raw),
		CGS:              c.formatCGS(raw),
		TargetUnit:       targetUnit,
	}
	if targetUnit != "" {
		converted, convErr := c.ConvertToUnit(raw, targetUnit)
		if convErr != nil {
			// Degraded success: the SI/CGS columns stand on their own.
			res.Converted = "Error: " + convErr.Message
		} else {
			res.Converted = converted
		}
	}
	logger.Debug("evaluate: parsed=%q si=%q cgs=%q", res.ParsedExpression, res.SI, res.CGS)
	return res, nil
}

// evalAssignment handles one non-final statement. Statements without an '='
// are skipped; malformed assignments fail the sequence.
func (c *Calculator) evalAssignment(stmt string, ns *Namespace) *Error {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return nil
	}
	parts := strings.Split(stmt, "=")
	if len(parts) == 1 {
		// Not an assignment; ignored, matching the original behavior.
		return nil
	}
	if len(parts) > 2 {
		return errorf(KindAssignment, "multiple equal signs found in variable assignment")
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return errorf(KindAssignment, "assignment is missing a variable name")
	}
	if strings.ContainsAny(name, " \t") {
		return errorf(KindAssignment, "variable name must not contain spaces")
	}
	if c.opts.RequireUnderscore && !strings.HasPrefix(name, "_") {
		return errorf(KindAssignment, "assigned variable must begin with an underscore")
	}

	node, err := parser.Parse(parts[1])
	if err != nil {
		return classify(err)
	}
	value, err := eval(node, ns)
	if err != nil {
		return classify(err)
	}
	ns.Bind(name, value)
	return nil
}

// ConvertToUnit converts a previously produced quantity into the unit named
// by unitText, which may be any registry-resolvable unit expression such as
// "km/s" or "erg". Dimensionless values format as themselves. A dimensionless
// value requested in a pure angle unit is treated as radians, which keeps
// "in deg" working on bare trigonometric results.
func (c *Calculator) ConvertToUnit(q quantity.Quantity, unitText string) (string, *Error) {
	unitText = strings.TrimSpace(unitText)
	if unitText == "" {
		return "", errorf(KindUnitConversion, "no unit given")
	}

	node, err := parser.Parse(unitText)
	if err != nil {
		return "", errorf(KindUnitConversion, "bad unit %q: %s", unitText, err.Error())
	}
	target, err := eval(node, NewNamespace(c.reg))
	if err != nil {
		return "", errorf(KindUnitConversion, "bad unit %q: %s", unitText, classify(err).Message)
	}

	if q.IsDimensionless() {
		if target.Kind == quantity.KindDimensioned && target.Dim.IsAngle() {
			rad := quantity.New(q.Value(), quantity.Dim(quantity.Angle, 1))
			return c.convertDimensioned(rad, target, unitText)
		}
		if q.Kind == quantity.KindInt {
			return c.formatSI(q), nil
		}
		return c.formatNumber(q.Val), nil
	}

	if target.Kind != quantity.KindDimensioned {
		return "", errorf(KindUnitConversion, "%q is not a unit", unitText)
	}
	return c.convertDimensioned(q, target, unitText)
}

func (c *Calculator) convertDimensioned(q, target quantity.Quantity, unitText string) (string, *Error) {
	if !q.Dim.Equal(target.Dim) {
		return "", errorf(KindUnitConversion, "cannot convert [%s] to %q",
			q.Dim.Format(registry.SIBaseNames), unitText)
	}
	return c.formatNumber(q.Val/target.Val) + " " + unitText, nil
}

// splitConversionClause strips a trailing " in <unit>" clause from the
// terminal statement, returning the bare expression and the requested unit.
func splitConversionClause(stmt string) (expr, unit string) {
	idx := strings.LastIndex(stmt, " in ")
	if idx <= 0 {
		return stmt, ""
	}
	unit = strings.TrimSpace(stmt[idx+len(" in "):])
	if unit == "" {
		return stmt, ""
	}
	return strings.TrimSpace(stmt[:idx]), unit
}
