package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	l := New(src)
	var types []TokenType
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	return types
}

func TestOperatorsAndPunctuation(t *testing.T) {
	types := tokenTypes(t, "+ - * / ^ ! < > <= >= == != ( ) [ ] { } , ; : = ..")
	assert.Equal(t, []TokenType{
		PLUS, MINUS, STAR, SLASH, CARET, BANG, LT, GT, LE, GE, EQ, NE,
		LPAREN, RPAREN, LBRACKET, RBRACKET, LBRACE, RBRACE, COMMA, SEMI, COLON, ASSIGN, DOTDOT, EOF,
	}, types)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	types := tokenTypes(t, "true false if def for in x_1 Number")
	assert.Equal(t, []TokenType{TRUE, FALSE, IF, DEF, FOR, IN, IDENTIFIER, IDENTIFIER, EOF}, types)
}

func TestNumberLiteral(t *testing.T) {
	l := New("42 3.14 0.5")
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, "42", tok.Text)

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, "3.14", tok.Text)

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, "0.5", tok.Text)
}

func TestStringEscapes(t *testing.T) {
	l := New(`"plain \x41 é end"`)
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, "plain A é end", tok.Text)
}

func TestUnterminatedStringIsParseError(t *testing.T) {
	l := New(`"no closing quote`)
	_, err := l.Next()
	require.Error(t, err)
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("x\ny")
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, tok.Line)

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, tok.Line)
	assert.Equal(t, 1, tok.Column)
}
