package parser

import "strings"

// Node is one node of the expression syntax tree. String renders the
// canonical form used for the "Parsed input" echo; parsing never evaluates.
type Node interface {
	String() string
	prec() int
}

// Printing precedence levels, loosest to tightest.
const (
	precAdd = iota + 1
	precMul
	precUnary
	precPow
	precPostfix
	precAtom
)

// Number is a numeric literal, tagged integer or float at lex time.
type Number struct {
	Lit   string
	IsInt bool
	Int   int64
	Float float64
}

func (n *Number) String() string { return n.Lit }
func (n *Number) prec() int      { return precAtom }

// Ident is a name reference: constant, unit, or session variable.
type Ident struct {
	Name string
}

func (n *Ident) String() string { return n.Name }
func (n *Ident) prec() int      { return precAtom }

// Unary is prefix negation.
type Unary struct {
	X Node
}

func (n *Unary) String() string { return "-" + wrap(n.X, precUnary) }
func (n *Unary) prec() int      { return precUnary }

// Binary is one of + - * / ^.
type Binary struct {
	Op byte
	L  Node
	R  Node
}

func (n *Binary) String() string {
	var b strings.Builder
	switch n.Op {
	case '+', '-':
		b.WriteString(wrap(n.L, precAdd))
		b.WriteString(" " + string(n.Op) + " ")
		b.WriteString(wrap(n.R, precAdd+1))
	case '*', '/':
		b.WriteString(wrap(n.L, precMul))
		b.WriteByte(n.Op)
		b.WriteString(wrap(n.R, precMul+1))
	case '^':
		// Right associative: the left side needs parens at equal precedence.
		b.WriteString(wrap(n.L, precPow+1))
		b.WriteByte('^')
		b.WriteString(wrap(n.R, precPow))
	}
	return b.String()
}

func (n *Binary) prec() int {
	switch n.Op {
	case '+', '-':
		return precAdd
	case '*', '/':
		return precMul
	default:
		return precPow
	}
}

// Factorial is the postfix '!' operator.
type Factorial struct {
	X Node
}

func (n *Factorial) String() string { return wrap(n.X, precPostfix) + "!" }
func (n *Factorial) prec() int      { return precPostfix }

// Call is a function application, e.g. sqrt(x). Whether the name is actually
// a function is decided at evaluation time; a parenthesized operand after a
// plain name is implicit multiplication.
type Call struct {
	Name string
	Arg  Node
}

func (n *Call) String() string { return n.Name + "(" + n.Arg.String() + ")" }
func (n *Call) prec() int      { return precAtom }

func wrap(n Node, min int) string {
	if n.prec() < min {
		return "(" + n.String() + ")"
	}
	return n.String()
}
