/*
File    : cortado/eval/control_flow.go
Package : eval

If and for execute their body block against the evaluator's *current*
frame rather than a derived child frame, so writes inside an if or for
body are visible after it — including a for-loop's element variable
and any variables written in its body, which remain bound in the
enclosing frame once the loop ends. This merge-back behavior is the
design note §9 resolution ("for-loop frame updates merge back to the
outer frame"), implemented here by simply never swapping e.frame for a
derived one, rather than by copying and merging afterward.
*/
package eval

import (
	"github.com/bencinn/cortado/ast"
	"github.com/bencinn/cortado/diag"
	"github.com/bencinn/cortado/value"
)

func (e *Evaluator) evalIf(n *ast.If) (value.Value, error) {
	cond, err := e.eval(n.Condition)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return nil, diag.At(diag.TypeError, n.Line, n.Column, "if condition must be a Bool, got %s", cond.Kind())
	}
	if !b.B {
		return value.NewNumberInt(0), nil
	}
	if err := e.execBlock(n.Block); err != nil {
		return nil, err
	}
	return value.NewNumberInt(0), nil
}

func (e *Evaluator) evalForLoop(n *ast.ForLoop) (value.Value, error) {
	elements, err := e.eval(n.Elements)
	if err != nil {
		return nil, err
	}
	arr, ok := elements.(value.Array)
	if !ok {
		return nil, diag.At(diag.TypeError, n.Line, n.Column, "for-loop source must be an Array, got %s", elements.Kind())
	}
	for _, item := range arr.Elems {
		e.frame.Set(n.Element.Name, item)
		if err := e.execBlock(n.Block); err != nil {
			return nil, err
		}
	}
	return value.NewNumberInt(0), nil
}
