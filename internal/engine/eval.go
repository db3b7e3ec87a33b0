package engine

import (
	"github.com/chongchonghe/acap/internal/parser"
	"github.com/chongchonghe/acap/internal/quantity"
	"github.com/chongchonghe/acap/internal/registry"
)

// eval walks a syntax tree against a namespace. It is a pure function of
// (tree, namespace); all failures come back as errors, never panics.
func eval(node parser.Node, ns *Namespace) (quantity.Quantity, error) {
	switch n := node.(type) {
	case *parser.Number:
		if n.IsInt {
			return quantity.FromInt(n.Int), nil
		}
		return quantity.FromFloat(n.Float), nil

	case *parser.Ident:
		return resolveValue(n.Name, ns)

	case *parser.Unary:
		x, err := eval(n.X, ns)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return quantity.Neg(x), nil

	case *parser.Binary:
		l, err := eval(n.L, ns)
		if err != nil {
			return quantity.Quantity{}, err
		}
		r, err := eval(n.R, ns)
		if err != nil {
			return quantity.Quantity{}, err
		}
		switch n.Op {
		case '+':
			return quantity.Add(l, r)
		case '-':
			return quantity.Sub(l, r)
		case '*':
			return quantity.Mul(l, r)
		case '/':
			return quantity.Div(l, r)
		default:
			return quantity.Pow(l, r)
		}

	case *parser.Factorial:
		x, err := eval(n.X, ns)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return quantity.Factorial(x)

	case *parser.Call:
		arg, err := eval(n.Arg, ns)
		if err != nil {
			return quantity.Quantity{}, err
		}
		entry, ok := ns.Resolve(n.Name)
		if !ok {
			return quantity.Quantity{}, errorf(KindName, "name %q is not defined", n.Name)
		}
		if entry.Kind == registry.EntryFunction {
			return entry.Fn(arg)
		}
		// A parenthesized operand after a non-function name is implicit
		// multiplication, e.g. "pc(2)".
		return quantity.Mul(entry.Value, arg)

	default:
		return quantity.Quantity{}, errorf(KindParse, "unknown syntax node")
	}
}

func resolveValue(name string, ns *Namespace) (quantity.Quantity, error) {
	entry, ok := ns.Resolve(name)
	if !ok {
		return quantity.Quantity{}, errorf(KindName, "name %q is not defined", name)
	}
	if entry.Kind == registry.EntryFunction {
		return quantity.Quantity{}, errorf(KindName, "%q is a function and needs an argument", name)
	}
	return entry.Value, nil
}
