/*
File    : cortado/parser/statements.go
Package : parser

Statement-level grammar: assignment, function definition, if, for, and
bare-expression statements, grounded on the teacher's parser_statement.go
split between declarations and expression statements.
*/
package parser

import (
	"github.com/bencinn/cortado/ast"
	"github.com/bencinn/cortado/lexer"
)

// parseStatement parses exactly one statement. Keyword-led forms (def,
// if, for) dispatch directly; anything else is parsed as an expression
// and then reinterpreted as an assignment if '=' follows.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur.Type {
	case lexer.DEF:
		return p.parseFunctionDefinition()
	case lexer.IF:
		return p.parseIf()
	case lexer.FOR:
		return p.parseFor()
	default:
		return p.parseExpressionStatement()
	}
}

// parseExpressionStatement parses an expression, then reinterprets it
// as a Set if the current token is '='. Only Identifier and
// single-index ArrayAccess expressions are valid assignment targets.
func (p *Parser) parseExpressionStatement() (ast.Node, error) {
	pos := position(p.cur)
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.ASSIGN {
		return expr, nil
	}
	if err := p.checkAssignTarget(expr); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.Set{Position: pos, Target: expr, Expr: rhs}, nil
}

// checkAssignTarget reports a ParseError unless target is an
// Identifier or an ArrayAccess with a plain (non-slice) index.
func (p *Parser) checkAssignTarget(target ast.Node) error {
	switch t := target.(type) {
	case *ast.Identifier:
		return nil
	case *ast.ArrayAccess:
		if _, isSlice := t.Whereto.(*ast.Slice); isSlice {
			return p.errorf("cannot assign to a slice expression")
		}
		return nil
	default:
		return p.errorf("invalid assignment target")
	}
}

// parseIf parses "if ( condition ) { block }".
func (p *Parser) parseIf() (ast.Node, error) {
	pos := position(p.cur)
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	block, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return &ast.If{Position: pos, Condition: cond, Block: block}, nil
}

// parseFor parses "for name in elements { block }".
func (p *Parser) parseFor() (ast.Node, error) {
	pos := position(p.cur)
	if err := p.advance(); err != nil { // consume 'for'
		return nil, err
	}
	if p.cur.Type != lexer.IDENTIFIER {
		return nil, p.errorf("expected loop variable name, found %q", p.cur.Text)
	}
	elem := &ast.Identifier{Position: position(p.cur), Name: p.cur.Text}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	elements, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	block, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForLoop{Position: pos, Element: elem, Elements: elements, Block: block}, nil
}

// parseFunctionDefinition parses "def name(p1: T1, p2: T2) { block }".
func (p *Parser) parseFunctionDefinition() (ast.Node, error) {
	pos := position(p.cur)
	if err := p.advance(); err != nil { // consume 'def'
		return nil, err
	}
	if p.cur.Type != lexer.IDENTIFIER {
		return nil, p.errorf("expected function name, found %q", p.cur.Text)
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Param
	for p.cur.Type != lexer.RPAREN {
		if p.cur.Type != lexer.IDENTIFIER {
			return nil, p.errorf("expected parameter name, found %q", p.cur.Text)
		}
		pname := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.IDENTIFIER {
			return nil, p.errorf("expected parameter type, found %q", p.cur.Text)
		}
		params = append(params, ast.Param{Name: pname, TypeTag: p.cur.Text})
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.advance(); err != nil { // consume ')'
		return nil, err
	}
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinition{Position: pos, Name: name, Params: params, Body: body}, nil
}
