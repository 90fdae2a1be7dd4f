/*
File    : cortado/parser/parser.go
Package : parser

Package parser implements cortado's grammar: a Pratt/precedence-
climbing expression parser plus a small statement grammar (assignment,
function definition, if, for, bare expression), grounded on the
teacher's parser.go/parser_precedence.go/parser_expressions.go
structure (precedence table + prefix/infix dispatch), generalized to
this spec's grammar and AST shape.

Parsing is pure: New + Parse never touch I/O, and produce either a
*ast.Block or a *diag.Error with source position.
*/
package parser

import (
	"github.com/bencinn/cortado/ast"
	"github.com/bencinn/cortado/diag"
	"github.com/bencinn/cortado/lexer"
)

// Parser turns a token stream into an AST. It holds exactly one
// token of lookahead (cur); the lexer itself already disambiguates
// multi-character operators like "==" vs "=", so no further
// lookahead is needed.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token
}

// New creates a Parser over src and primes the first token.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses the entire source as a top-level program block.
func Parse(src string) (*ast.Block, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// ParseProgram parses the top-level program rule: a Block running to
// end of input.
func (p *Parser) ParseProgram() (*ast.Block, error) {
	block, err := p.parseStatements(lexer.EOF)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF {
		return nil, p.errorf("expected end of input, found %q", p.cur.Text)
	}
	return block, nil
}

// advance fetches the next token from the lexer into p.cur.
func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// expect consumes the current token if it has the given type,
// otherwise reports a ParseError.
func (p *Parser) expect(t lexer.TokenType) error {
	if p.cur.Type != t {
		return p.errorf("expected %q, found %q", t, p.cur.Text)
	}
	return p.advance()
}

// errorf builds a ParseError positioned at the current token.
func (p *Parser) errorf(format string, args ...interface{}) error {
	return diag.At(diag.ParseError, p.cur.Line, p.cur.Column, format, args...)
}

func position(tok lexer.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}

// parseStatements parses statements separated by ';' (trailing ';'
// optional) until a token of type closing or EOF is reached.
func (p *Parser) parseStatements(closing lexer.TokenType) (*ast.Block, error) {
	block := &ast.Block{Position: position(p.cur)}
	for p.cur.Type != closing && p.cur.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		if p.cur.Type == lexer.SEMI {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.cur.Type != closing && p.cur.Type != lexer.EOF {
			return nil, p.errorf("expected ';' between statements, found %q", p.cur.Text)
		}
	}
	return block, nil
}

// parseBracedBlock parses "{ statements }".
func (p *Parser) parseBracedBlock() (*ast.Block, error) {
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	block, err := p.parseStatements(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}
