// Package parser turns algebraic expression text into a syntax tree. The
// grammar is the calculator's input language: implicit multiplication between
// adjacent operands ("4 pc" means 4*pc), '^' for exponentiation, '!' for
// postfix factorial, and prefix function calls. The parser only builds
// structure; evaluation is a separate pass.
package parser

import (
	"strconv"
	"strings"
)

type parser struct {
	src  string
	toks []Token
	i    int
}

// Parse parses a single non-empty expression.
func Parse(src string) (Node, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, parseErrorf("", "empty expression")
	}
	toks, err := lex(trimmed)
	if err != nil {
		return nil, err
	}
	p := &parser{src: trimmed, toks: toks}
	node, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if p.cur().Type != EOF {
		return nil, parseErrorf(p.fragment(), "unexpected %s", p.cur().Type)
	}
	return node, nil
}

// Binding powers; implicit multiplication binds like explicit '*'.
const (
	bpAdd     = 10
	bpMul     = 20
	bpPow     = 40
	bpPostfix = 50
)

func (p *parser) cur() Token {
	if p.i >= len(p.toks) {
		return Token{Type: EOF, Pos: len(p.src)}
	}
	return p.toks[p.i]
}

func (p *parser) next() Token {
	t := p.cur()
	if p.i < len(p.toks) {
		p.i++
	}
	return t
}

func (p *parser) fragment() string {
	pos := p.cur().Pos
	if pos >= len(p.src) {
		return ""
	}
	return p.src[pos:]
}

func (p *parser) parseExpression(minBP int) (Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		t := p.cur()
		switch t.Type {
		case BANG:
			p.next()
			left = &Factorial{X: left}
			continue

		case PLUS, MINUS, STAR, SLASH, CARET:
			bp, op := bpAdd, byte('+')
			switch t.Type {
			case MINUS:
				op = '-'
			case STAR:
				bp, op = bpMul, '*'
			case SLASH:
				bp, op = bpMul, '/'
			case CARET:
				bp, op = bpPow, '^'
			}
			if bp < minBP {
				return left, nil
			}
			p.next()
			nextMin := bp + 1
			if op == '^' { // right associative
				nextMin = bp
			}
			right, err := p.parseExpression(nextMin)
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: op, L: left, R: right}
			continue

		case NUMBER, IDENT, LPAREN:
			// Implicit multiplication: "4 pc", "2(3 + 4)", "G M_sun".
			if bpMul < minBP {
				return left, nil
			}
			right, err := p.parseExpression(bpMul + 1)
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: '*', L: left, R: right}
			continue

		default:
			return left, nil
		}
	}
}

func (p *parser) parsePrefix() (Node, error) {
	t := p.next()
	switch t.Type {
	case NUMBER:
		return parseNumber(t)

	case IDENT:
		if p.cur().Type == LPAREN {
			p.next()
			arg, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if p.cur().Type != RPAREN {
				return nil, parseErrorf(p.fragment(), "missing closing parenthesis")
			}
			p.next()
			return &Call{Name: t.Lit, Arg: arg}, nil
		}
		return &Ident{Name: t.Lit}, nil

	case MINUS:
		// Unary minus binds tighter than addition but looser than '^',
		// so -x^2 reads as -(x^2).
		x, err := p.parseExpression(bpMul)
		if err != nil {
			return nil, err
		}
		return &Unary{X: x}, nil

	case LPAREN:
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if p.cur().Type != RPAREN {
			return nil, parseErrorf(p.fragment(), "missing closing parenthesis")
		}
		p.next()
		return inner, nil

	case EOF:
		return nil, parseErrorf("", "unexpected end of expression")

	default:
		return nil, parseErrorf(tokenFragment(p.src, t), "unexpected %s", t.Type)
	}
}

func parseNumber(t Token) (Node, error) {
	if !strings.ContainsAny(t.Lit, ".eE") {
		if n, err := strconv.ParseInt(t.Lit, 10, 64); err == nil {
			return &Number{Lit: t.Lit, IsInt: true, Int: n}, nil
		}
		// Larger than int64: fall through to float.
	}
	f, err := strconv.ParseFloat(t.Lit, 64)
	if err != nil {
		return nil, parseErrorf(t.Lit, "malformed number")
	}
	return &Number{Lit: t.Lit, Float: f}, nil
}

func tokenFragment(src string, t Token) string {
	if t.Pos >= len(src) {
		return ""
	}
	return src[t.Pos:]
}
