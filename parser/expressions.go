/*
File    : cortado/parser/expressions.go
Package : parser

Expression grammar: Pratt/precedence-climbing binary operators over a
primary grammar of literals, identifiers, parenthesized expressions,
array literals, function calls, and array access/slicing, with postfix
"!" applied directly at the primary level so it binds tighter than any
prefix or infix operator. Grounded on the teacher's
parser_expressions.go nud/led dispatch.
*/
package parser

import (
	"github.com/bencinn/cortado/ast"
	"github.com/bencinn/cortado/lexer"
)

// parseExpression parses one expression whose outer infix operators
// all bind more tightly than minPrec.
func (p *Parser) parseExpression(minPrec precedence) (ast.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for minPrec < infixPrecedence(p.cur.Type) {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parsePrefix parses a unary "-" or falls through to a primary atom
// with its postfix operators applied.
func (p *Parser) parsePrefix() (ast.Node, error) {
	if p.cur.Type == lexer.MINUS {
		pos := position(p.cur)
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseExpression(PREFIX)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{
			Position: pos,
			Op:       "-",
			Left:     &ast.Int{Position: pos, Text: "0"},
			Right:    operand,
		}, nil
	}
	return p.parseAtom()
}

// parseInfix consumes the current infix operator token and parses its
// right-hand side, folding it onto left. "^" is right-associative;
// every other binary operator is left-associative.
func (p *Parser) parseInfix(left ast.Node) (ast.Node, error) {
	op := p.cur
	prec := infixPrecedence(op.Type)
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhsFloor := prec
	if op.Type == lexer.CARET {
		rhsFloor = prec - 1
	}
	right, err := p.parseExpression(rhsFloor)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Position: position(op), Op: string(op.Type), Left: left, Right: right}, nil
}

// parseAtom parses one primary form (literal, identifier, call,
// parenthesized expression, or array literal), then applies any
// immediately following postfix operators: array access/slicing "[...]"
// and factorial "!", in whatever order they appear.
func (p *Parser) parseAtom() (ast.Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case lexer.LBRACKET:
			base, err = p.parseArrayAccess(base)
			if err != nil {
				return nil, err
			}
		case lexer.BANG:
			pos := position(p.cur)
			if err := p.advance(); err != nil {
				return nil, err
			}
			base = &ast.BinaryOp{Position: pos, Op: "!", Left: base}
		default:
			return base, nil
		}
	}
}

// parsePrimary parses one of: an integer literal, a string literal, a
// boolean literal, a parenthesized expression, an array literal, a
// function call, or a bare identifier.
func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.cur
	pos := position(tok)
	switch tok.Type {
	case lexer.NUMBER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Int{Position: pos, Text: tok.Text}, nil
	case lexer.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Str{Position: pos, Text: tok.Text}, nil
	case lexer.TRUE, lexer.FALSE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Bool{Position: pos, Value: tok.Type == lexer.TRUE}, nil
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.LBRACKET:
		return p.parseArrayLiteral()
	case lexer.IDENTIFIER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.LPAREN {
			return p.parseFunctionCall(tok.Text, pos)
		}
		return &ast.Identifier{Position: pos, Name: tok.Text}, nil
	default:
		return nil, p.errorf("unexpected token %q", tok.Text)
	}
}

// parseArrayLiteral parses "[ e1, e2, ... ]".
func (p *Parser) parseArrayLiteral() (ast.Node, error) {
	pos := position(p.cur)
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	var elems []ast.Node
	for p.cur.Type != lexer.RBRACKET {
		elem, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	if err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.Array{Position: pos, Elements: elems}, nil
}

// parseFunctionCall parses "name(arg1, arg2, ...)"; name and its
// position have already been consumed by the caller.
func (p *Parser) parseFunctionCall(name string, pos ast.Position) (ast.Node, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	var args []ast.Node
	for p.cur.Type != lexer.RPAREN {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Position: pos, Name: name, Args: args}, nil
}

// parseArrayAccess parses "[ whereto ]" following base, where whereto
// is a plain index expression or one of the three slice forms
// "from..to", "from..", "..to".
func (p *Parser) parseArrayAccess(base ast.Node) (ast.Node, error) {
	pos := position(p.cur)
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}

	if p.cur.Type == lexer.DOTDOT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		to, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.ArrayAccess{Position: pos, Expr: base, Whereto: &ast.Slice{Position: pos, To: to}}, nil
	}

	first, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.cur.Type == lexer.DOTDOT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.RBRACKET {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.ArrayAccess{Position: pos, Expr: base, Whereto: &ast.Slice{Position: pos, From: first}}, nil
		}
		to, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.ArrayAccess{Position: pos, Expr: base, Whereto: &ast.Slice{Position: pos, From: first, To: to}}, nil
	}

	if err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ArrayAccess{Position: pos, Expr: base, Whereto: first}, nil
}
