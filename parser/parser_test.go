package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bencinn/cortado/ast"
)

func parseExpr(t *testing.T, src string) ast.Node {
	t.Helper()
	p, err := New(src)
	require.NoError(t, err)
	node, err := p.parseExpression(LOWEST)
	require.NoError(t, err)
	return node
}

func TestPowerBindsTighterThanMultiplication(t *testing.T) {
	node := parseExpr(t, "2 * 3 ^ 2")
	bin := node.(*ast.BinaryOp)
	assert.Equal(t, "*", bin.Op)
	rhs := bin.Right.(*ast.BinaryOp)
	assert.Equal(t, "^", rhs.Op)
}

func TestPowerIsRightAssociative(t *testing.T) {
	node := parseExpr(t, "2 ^ 3 ^ 2")
	bin := node.(*ast.BinaryOp)
	assert.Equal(t, "^", bin.Op)
	assert.Equal(t, "2", bin.Left.(*ast.Int).Text)
	rhs := bin.Right.(*ast.BinaryOp)
	assert.Equal(t, "^", rhs.Op)
}

func TestPrefixMinusBindsTighterThanPower(t *testing.T) {
	node := parseExpr(t, "-x ^ 2")
	bin := node.(*ast.BinaryOp)
	assert.Equal(t, "^", bin.Op)
	neg := bin.Left.(*ast.BinaryOp)
	assert.Equal(t, "-", neg.Op)
	assert.Equal(t, "x", neg.Right.(*ast.Identifier).Name)
}

func TestPostfixFactorialBindsTighterThanPrefixMinus(t *testing.T) {
	node := parseExpr(t, "-x!")
	bin := node.(*ast.BinaryOp)
	assert.Equal(t, "-", bin.Op)
	fact := bin.Right.(*ast.BinaryOp)
	assert.Equal(t, "!", fact.Op)
	assert.Nil(t, fact.Right)
}

func TestSliceForms(t *testing.T) {
	full := parseExpr(t, "a[1..3]").(*ast.ArrayAccess)
	sl := full.Whereto.(*ast.Slice)
	assert.NotNil(t, sl.From)
	assert.NotNil(t, sl.To)

	fromOnly := parseExpr(t, "a[1..]").(*ast.ArrayAccess)
	sl = fromOnly.Whereto.(*ast.Slice)
	assert.NotNil(t, sl.From)
	assert.Nil(t, sl.To)

	toOnly := parseExpr(t, "a[..3]").(*ast.ArrayAccess)
	sl = toOnly.Whereto.(*ast.Slice)
	assert.Nil(t, sl.From)
	assert.NotNil(t, sl.To)

	plain := parseExpr(t, "a[0]").(*ast.ArrayAccess)
	_, isSlice := plain.Whereto.(*ast.Slice)
	assert.False(t, isSlice)
}

func TestFunctionCallParsesArgs(t *testing.T) {
	node := parseExpr(t, `add(1, 2, "x")`)
	call := node.(*ast.FunctionCall)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 3)
}

func TestProgramWithAssignmentIfForAndFunctionDef(t *testing.T) {
	src := `
def square(n: Number) {
	return(n * n);
};

total = 0;
for x in [1, 2, 3] {
	total = total + square(x);
};
if (total > 0) {
	print(total);
}
`
	block, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, block.Statements, 4)

	_, ok := block.Statements[0].(*ast.FunctionDefinition)
	assert.True(t, ok)
	_, ok = block.Statements[1].(*ast.Set)
	assert.True(t, ok)
	_, ok = block.Statements[2].(*ast.ForLoop)
	assert.True(t, ok)
	_, ok = block.Statements[3].(*ast.If)
	assert.True(t, ok)
}

func TestArrayIndexAssignmentTarget(t *testing.T) {
	block, err := Parse(`a[0] = 5;`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 1)
	set := block.Statements[0].(*ast.Set)
	_, ok := set.Target.(*ast.ArrayAccess)
	assert.True(t, ok)
}

func TestSliceAssignmentTargetIsRejected(t *testing.T) {
	_, err := Parse(`a[0..1] = 5;`)
	assert.Error(t, err)
}
