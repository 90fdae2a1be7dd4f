/*
File    : cortado/eval/literals.go
Package : eval

Number literal construction. Kept separate from the parser so the
lexer/parser layer never needs to import shopspring/decimal: a literal
travels through the AST as plain text and is only parsed into a
decimal.Decimal here, at evaluation time.
*/
package eval

import (
	"github.com/shopspring/decimal"

	"github.com/bencinn/cortado/ast"
	"github.com/bencinn/cortado/diag"
	"github.com/bencinn/cortado/value"
)

func (e *Evaluator) evalInt(n *ast.Int) (value.Value, error) {
	d, err := decimal.NewFromString(n.Text)
	if err != nil {
		return nil, diag.At(diag.ParseError, n.Line, n.Column, "invalid number literal %q", n.Text)
	}
	return value.NewNumber(d), nil
}
