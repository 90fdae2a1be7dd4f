package value

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberStringTrimsTrailingZeros(t *testing.T) {
	n := NewNumber(decimal.RequireFromString("1.500"))
	assert.Equal(t, "1.5", n.String())

	whole := NewNumber(decimal.RequireFromString("3.000"))
	assert.Equal(t, "3", whole.String())

	noDot := NewNumber(decimal.RequireFromString("42"))
	assert.Equal(t, "42", noDot.String())
}

func TestBoolString(t *testing.T) {
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "false", NewBool(false).String())
}

func TestArrayStringNested(t *testing.T) {
	inner := NewArray([]Value{NewNumberInt(1), NewNumberInt(2)})
	outer := NewArray([]Value{inner, NewString("x")})
	assert.Equal(t, "[[1, 2], x]", outer.String())
}

func TestArrayCloneIsDeepAndIndependent(t *testing.T) {
	original := NewArray([]Value{NewNumberInt(1), NewArray([]Value{NewNumberInt(2)})})
	clone := original.Clone()

	clone.Elems[0] = NewNumberInt(99)
	clone.Elems[1].(Array).Elems[0] = NewNumberInt(99)

	assert.Equal(t, "1", original.Elems[0].String())
	assert.Equal(t, "2", original.Elems[1].(Array).Elems[0].String())
}

func TestAsNumberCoercions(t *testing.T) {
	n, err := AsNumber(NewBool(true))
	require.NoError(t, err)
	assert.True(t, n.Equal(decimal.NewFromInt(1)))

	n, err = AsNumber(NewBool(false))
	require.NoError(t, err)
	assert.True(t, n.Equal(decimal.NewFromInt(0)))

	_, err = AsNumber(NewString("3"))
	assert.Error(t, err)

	_, err = AsNumber(NewArray(nil))
	assert.Error(t, err)
}

func TestAsStringCoercions(t *testing.T) {
	s, err := AsString(NewNumberInt(7))
	require.NoError(t, err)
	assert.Equal(t, "7", s)

	s, err = AsString(NewBool(true))
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	_, err = AsString(NewArray(nil))
	assert.Error(t, err)
}
