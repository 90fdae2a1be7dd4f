/*
File    : cortado/parser/precedence.go
Package : parser

Binding powers for cortado's operators, lowest to highest: comparison,
additive, multiplicative, power, prefix "-", postfix "!". Grounded on
the teacher's parser_precedence.go table, but with the level ordering
taken verbatim from the spec's §4.1.2 precedence list — notably prefix
"-" binds tighter than "^", the reverse of most C-family languages.
*/
package parser

import "github.com/bencinn/cortado/lexer"

type precedence int

const (
	LOWEST precedence = iota * 10
	COMPARISON
	ADDITIVE
	MULTIPLICATIVE
	POWER
	PREFIX
)

// infixPrecedence returns the binding power of t used as an infix
// operator, or LOWEST if t never appears as one.
func infixPrecedence(t lexer.TokenType) precedence {
	switch t {
	case lexer.EQ, lexer.NE, lexer.LT, lexer.GT, lexer.LE, lexer.GE:
		return COMPARISON
	case lexer.PLUS, lexer.MINUS:
		return ADDITIVE
	case lexer.STAR, lexer.SLASH:
		return MULTIPLICATIVE
	case lexer.CARET:
		return POWER
	default:
		return LOWEST
	}
}
