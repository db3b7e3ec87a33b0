package parser

import "unicode"

// lex converts an expression string into a flat token stream.
func lex(src string) ([]Token, error) {
	var out []Token
	i := 0
	n := len(src)

	for i < n {
		ch := src[i]

		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			i++
			continue
		}

		// Numbers: integer or decimal, optional exponent (1e3, 2.5e-4).
		if isDigit(ch) || (ch == '.' && i+1 < n && isDigit(src[i+1])) {
			start := i
			for i < n && isDigit(src[i]) {
				i++
			}
			if i < n && src[i] == '.' {
				i++
				for i < n && isDigit(src[i]) {
					i++
				}
			}
			if i < n && (src[i] == 'e' || src[i] == 'E') {
				j := i + 1
				if j < n && (src[j] == '+' || src[j] == '-') {
					j++
				}
				if j < n && isDigit(src[j]) {
					i = j
					for i < n && isDigit(src[i]) {
						i++
					}
				}
			}
			out = append(out, Token{Type: NUMBER, Lit: src[start:i], Pos: start})
			continue
		}

		if isIdentStart(ch) {
			start := i
			i++
			for i < n && isIdentPart(src[i]) {
				i++
			}
			out = append(out, Token{Type: IDENT, Lit: src[start:i], Pos: start})
			continue
		}

		var typ TokenType
		switch ch {
		case '+':
			typ = PLUS
		case '-':
			typ = MINUS
		case '*':
			typ = STAR
		case '/':
			typ = SLASH
		case '^':
			typ = CARET
		case '!':
			typ = BANG
		case '(':
			typ = LPAREN
		case ')':
			typ = RPAREN
		default:
			return nil, parseErrorf(src[i:], "unexpected character %q", string(ch))
		}
		out = append(out, Token{Type: typ, Lit: string(ch), Pos: i})
		i++
	}

	return out, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
		(b >= 128 && unicode.IsLetter(rune(b)))
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
