/*
File    : cortado/eval/operators.go
Package : eval

Binary, postfix-factorial, and power-operator semantics, grounded on
the teacher's eval_binary.go / eval_arithmetic.go split. Every
operator — arithmetic, power, equality, and ordering alike — coerces
its operands via value.AsNumber (so Bool participates via 0/1, but
String and Array never silently coerce), matching the spec's §4.2.1
rule that comparison operators, "==" and "!=" included, operate on
as_number(left)/as_number(right).
*/
package eval

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/bencinn/cortado/ast"
	"github.com/bencinn/cortado/diag"
	"github.com/bencinn/cortado/value"
)

func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp) (value.Value, error) {
	if n.Op == "!" {
		return e.evalFactorial(n)
	}

	left, err := e.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "+", "-", "*", "/":
		return e.evalArithmetic(n, left, right)
	case "^":
		return e.evalPower(n, left, right)
	case "==", "!=":
		return e.evalEquality(n, left, right)
	case "<", ">", "<=", ">=":
		return e.evalOrdering(n, left, right)
	default:
		return nil, diag.At(diag.ParseError, n.Line, n.Column, "unknown operator %q", n.Op)
	}
}

func (e *Evaluator) numericOperands(n *ast.BinaryOp, left, right value.Value) (decimal.Decimal, decimal.Decimal, error) {
	l, err := value.AsNumber(left)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, diag.At(diag.TypeError, n.Line, n.Column, "left operand of %q: %s", n.Op, err)
	}
	r, err := value.AsNumber(right)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, diag.At(diag.TypeError, n.Line, n.Column, "right operand of %q: %s", n.Op, err)
	}
	return l, r, nil
}

func (e *Evaluator) evalArithmetic(n *ast.BinaryOp, left, right value.Value) (value.Value, error) {
	l, r, err := e.numericOperands(n, left, right)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "+":
		return value.NewNumber(l.Add(r)), nil
	case "-":
		return value.NewNumber(l.Sub(r)), nil
	case "*":
		return value.NewNumber(l.Mul(r)), nil
	case "/":
		if r.IsZero() {
			return nil, diag.At(diag.DivisionByZero, n.Line, n.Column, "division by zero")
		}
		return value.NewNumber(l.Div(r)), nil
	}
	panic("unreachable")
}

func (e *Evaluator) evalPower(n *ast.BinaryOp, left, right value.Value) (value.Value, error) {
	l, r, err := e.numericOperands(n, left, right)
	if err != nil {
		return nil, err
	}
	result, powErr := power(l, r)
	if powErr != nil {
		return nil, diag.At(diag.DivisionByZero, n.Line, n.Column, "%s", powErr)
	}
	return value.NewNumber(result), nil
}

// power computes base^exp. Integer exponents (positive or negative)
// use exact exponentiation by squaring over decimal.Decimal; a
// fractional exponent falls back to float64 math.Pow since decimal
// has no general n-th-root operation.
func power(base, exp decimal.Decimal) (decimal.Decimal, error) {
	if !exp.IsInteger() {
		bf, _ := base.Float64()
		ef, _ := exp.Float64()
		return decimal.NewFromFloat(math.Pow(bf, ef)), nil
	}

	n := exp.IntPart()
	negative := n < 0
	if negative {
		n = -n
	}

	result := decimal.NewFromInt(1)
	b := base
	for n > 0 {
		if n%2 == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		n /= 2
	}

	if negative {
		if result.IsZero() {
			return decimal.Decimal{}, errDivideByZero
		}
		result = decimal.NewFromInt(1).Div(result)
	}
	return result, nil
}

var errDivideByZero = diag.New(diag.DivisionByZero, "zero raised to a negative power")

func (e *Evaluator) evalFactorial(n *ast.BinaryOp) (value.Value, error) {
	left, err := e.eval(n.Left)
	if err != nil {
		return nil, err
	}
	d, err := value.AsNumber(left)
	if err != nil {
		return nil, diag.At(diag.TypeError, n.Line, n.Column, "operand of '!': %s", err)
	}
	if !d.IsInteger() {
		return nil, diag.At(diag.TypeError, n.Line, n.Column, "'!' requires an integer, got %s", d.String())
	}
	if d.Sign() < 0 {
		return nil, diag.At(diag.DomainError, n.Line, n.Column, "'!' requires a non-negative value, got %s", d.String())
	}
	result := decimal.NewFromInt(1)
	for i := decimal.NewFromInt(2); i.LessThanOrEqual(d); i = i.Add(decimal.NewFromInt(1)) {
		result = result.Mul(i)
	}
	return value.NewNumber(result), nil
}

// evalEquality implements "==" and "!=" exactly like the ordering
// operators: both operands coerce via as_number (spec §4.2.1), so a
// String or Array operand is a TypeError rather than a String-aware
// equality extension.
func (e *Evaluator) evalEquality(n *ast.BinaryOp, left, right value.Value) (value.Value, error) {
	l, r, err := e.numericOperands(n, left, right)
	if err != nil {
		return nil, err
	}
	equal := l.Equal(r)
	if n.Op == "!=" {
		return value.NewBool(!equal), nil
	}
	return value.NewBool(equal), nil
}

func (e *Evaluator) evalOrdering(n *ast.BinaryOp, left, right value.Value) (value.Value, error) {
	l, r, err := e.numericOperands(n, left, right)
	if err != nil {
		return nil, err
	}
	var result bool
	switch n.Op {
	case "<":
		result = l.LessThan(r)
	case ">":
		result = l.GreaterThan(r)
	case "<=":
		result = l.LessThanOrEqual(r)
	case ">=":
		result = l.GreaterThanOrEqual(r)
	}
	return value.NewBool(result), nil
}
