package parser

import "fmt"

// TokenType enumerates the lexical categories of the expression language.
type TokenType int

const (
	EOF TokenType = iota
	NUMBER
	IDENT
	PLUS
	MINUS
	STAR
	SLASH
	CARET
	BANG
	LPAREN
	RPAREN
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case NUMBER:
		return "number"
	case IDENT:
		return "identifier"
	case PLUS:
		return "'+'"
	case MINUS:
		return "'-'"
	case STAR:
		return "'*'"
	case SLASH:
		return "'/'"
	case CARET:
		return "'^'"
	case BANG:
		return "'!'"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// Token is one lexeme with its position in the input.
type Token struct {
	Type TokenType
	Lit  string
	Pos  int
}
