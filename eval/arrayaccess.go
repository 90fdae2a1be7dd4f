/*
File    : cortado/eval/arrayaccess.go
Package : eval

Indexing and inclusive-bounds slicing (expr[i], expr[a..b], expr[a..],
expr[..b]), plus the Set statement — both the Identifier and the
single-index ArrayAccess assignment targets. Grounded on the teacher's
eval_index.go, generalized from the teacher's exclusive/0-based slice
rule to the spec's inclusive-both-ends rule (design note §9 of the
expanded spec).
*/
package eval

import (
	"github.com/bencinn/cortado/ast"
	"github.com/bencinn/cortado/diag"
	"github.com/bencinn/cortado/value"
)

func (e *Evaluator) evalArrayAccess(n *ast.ArrayAccess) (value.Value, error) {
	base, err := e.eval(n.Expr)
	if err != nil {
		return nil, err
	}
	arr, ok := base.(value.Array)
	if !ok {
		return nil, diag.At(diag.TypeError, n.Line, n.Column, "cannot index a %s", base.Kind())
	}

	if sl, ok := n.Whereto.(*ast.Slice); ok {
		return e.evalSlice(n, arr, sl)
	}

	idx, err := e.evalIndex(n.Whereto, len(arr.Elems))
	if err != nil {
		return nil, err
	}
	return arr.Elems[idx], nil
}

// evalIndex evaluates an index expression and validates it against an
// array of the given length, returning the 0-based position.
func (e *Evaluator) evalIndex(node ast.Node, length int) (int, error) {
	v, err := e.eval(node)
	if err != nil {
		return 0, err
	}
	d, err := value.AsNumber(v)
	if err != nil {
		pos := node.Pos()
		return 0, diag.At(diag.TypeError, pos.Line, pos.Column, "array index: %s", err)
	}
	if !d.IsInteger() {
		pos := node.Pos()
		return 0, diag.At(diag.TypeError, pos.Line, pos.Column, "array index must be an integer, got %s", d.String())
	}
	idx := int(d.IntPart())
	if idx < 0 || idx >= length {
		pos := node.Pos()
		return 0, diag.At(diag.IndexOutOfBounds, pos.Line, pos.Column, "index %d out of bounds for array of length %d", idx, length)
	}
	return idx, nil
}

// evalSlice evaluates an inclusive from..to slice. A nil From means 0;
// a nil To means the last valid index (length-1).
func (e *Evaluator) evalSlice(n *ast.ArrayAccess, arr value.Array, sl *ast.Slice) (value.Value, error) {
	from := 0
	if sl.From != nil {
		idx, err := e.evalIndex(sl.From, len(arr.Elems))
		if err != nil {
			return nil, err
		}
		from = idx
	}
	to := len(arr.Elems) - 1
	if sl.To != nil {
		idx, err := e.evalIndex(sl.To, len(arr.Elems))
		if err != nil {
			return nil, err
		}
		to = idx
	}
	if from > to {
		return value.NewArray(nil), nil
	}
	out := make([]value.Value, to-from+1)
	copy(out, arr.Elems[from:to+1])
	return value.NewArray(out), nil
}

func (e *Evaluator) evalSet(n *ast.Set) (value.Value, error) {
	v, err := e.eval(n.Expr)
	if err != nil {
		return nil, err
	}

	switch target := n.Target.(type) {
	case *ast.Identifier:
		e.frame.Set(target.Name, v)
		return v, nil
	case *ast.ArrayAccess:
		base, err := e.eval(target.Expr)
		if err != nil {
			return nil, err
		}
		arr, ok := base.(value.Array)
		if !ok {
			return nil, diag.At(diag.TypeError, target.Line, target.Column, "cannot index a %s for assignment", base.Kind())
		}
		idx, err := e.evalIndex(target.Whereto, len(arr.Elems))
		if err != nil {
			return nil, err
		}
		arr.Elems[idx] = v
		return v, nil
	default:
		return nil, diag.At(diag.ParseError, n.Line, n.Column, "invalid assignment target")
	}
}
