package engine

import (
	"strconv"

	"github.com/muesli/reflow/wordwrap"

	"github.com/chongchonghe/acap/internal/quantity"
	"github.com/chongchonghe/acap/internal/registry"
)

const diagnosticWrapWidth = 80

// formatNumber renders a magnitude to the configured significant digit count,
// in scientific or general notation.
func (c *Calculator) formatNumber(v float64) string {
	if c.opts.Scientific {
		return strconv.FormatFloat(v, 'e', c.opts.Digits-1, 64)
	}
	return strconv.FormatFloat(v, 'g', c.opts.Digits, 64)
}

// formatSI renders a quantity in SI base units. Dimensionless integers print
// exactly; they are unit-system invariant.
func (c *Calculator) formatSI(q quantity.Quantity) string {
	switch q.Kind {
	case quantity.KindInt:
		return strconv.FormatInt(q.Whole, 10)
	case quantity.KindFloat:
		return c.formatNumber(q.Val)
	default:
		return c.formatNumber(q.Val) + " " + q.Dim.Format(registry.SIBaseNames)
	}
}

// formatCGS renders a quantity in CGS base units. Dimensions without a CGS
// representation degrade to a wrapped diagnostic string instead of failing
// the whole evaluation.
func (c *Calculator) formatCGS(q quantity.Quantity) string {
	switch q.Kind {
	case quantity.KindInt:
		return strconv.FormatInt(q.Whole, 10)
	case quantity.KindFloat:
		return c.formatNumber(q.Val)
	default:
		factor, ok := registry.CGSFactor(q.Dim)
		if !ok {
			msg := "dimensions involving electric current have no unique CGS representation: [" +
				q.Dim.Format(registry.SIBaseNames) + "]"
			return wordwrap.String(msg, diagnosticWrapWidth)
		}
		return c.formatNumber(q.Val*factor) + " " + q.Dim.Format(registry.CGSBaseNames)
	}
}
