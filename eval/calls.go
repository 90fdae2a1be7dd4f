/*
File    : cortado/eval/calls.go
Package : eval

Function definition/registration and call dispatch, grounded on the
teacher's eval_call.go dispatch-order logic: a name is first checked
against the feature-gated built-in set, then against user-defined
functions, and UndefinedFunction only if neither claims it. User
function calls get a fresh Frame holding nothing but their bound,
type-checked parameters — no access to the caller's variables, per the
spec's no-closures rule.
*/
package eval

import (
	"errors"

	"github.com/bencinn/cortado/ast"
	"github.com/bencinn/cortado/builtins"
	"github.com/bencinn/cortado/diag"
	"github.com/bencinn/cortado/scope"
	"github.com/bencinn/cortado/value"
)

func (e *Evaluator) evalFunctionDefinition(n *ast.FunctionDefinition) (value.Value, error) {
	if _, exists := e.functions[n.Name]; exists {
		return nil, diag.At(diag.FunctionRedefinition, n.Line, n.Column, "function %q is already defined", n.Name)
	}
	e.functions[n.Name] = n
	return value.NewNumberInt(0), nil
}

func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall) (value.Value, error) {
	if isGatedName(n.Name) {
		if !e.features[n.Name] {
			return nil, diag.At(diag.FeatureDisabled, n.Line, n.Column, "built-in %q is disabled", n.Name)
		}
		return e.callBuiltin(n)
	}

	fn, ok := e.functions[n.Name]
	if !ok {
		return nil, diag.At(diag.UndefinedFunction, n.Line, n.Column, "function %q is not defined", n.Name)
	}
	return e.callUserFunction(n, fn)
}

func isGatedName(name string) bool {
	for _, n := range builtins.Names {
		if n == name {
			return true
		}
	}
	return false
}

// callBuiltin evaluates n's arguments left-to-right and dispatches to
// the builtins package, with "return" handled specially here since it
// must unwind as a control-flow signal instead of producing a value.
func (e *Evaluator) callBuiltin(n *ast.FunctionCall) (value.Value, error) {
	args, err := e.evalArgs(n.Args)
	if err != nil {
		return nil, err
	}

	if n.Name == "return" {
		if len(args) != 1 {
			return nil, diag.At(diag.ArityMismatch, n.Line, n.Column, "return requires exactly 1 argument, got %d", len(args))
		}
		return nil, &returnSignal{Value: args[0]}
	}

	fn, _ := builtins.Lookup(n.Name)
	v, err := fn(e, args)
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) && de.Line == 0 {
			de.Line, de.Column = n.Line, n.Column
		}
		return nil, err
	}
	return v, nil
}

func (e *Evaluator) evalArgs(nodes []ast.Node) ([]value.Value, error) {
	args := make([]value.Value, len(nodes))
	for i, a := range nodes {
		v, err := e.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// callUserFunction checks arity and parameter types, binds arguments
// (Arrays cloned so the callee never aliases the caller's array) into
// a fresh frame containing nothing else, runs the body against that
// frame, and restores the caller's frame afterward. A return(...)
// inside the body is caught here; falling off the end yields Number(0).
func (e *Evaluator) callUserFunction(call *ast.FunctionCall, fn *ast.FunctionDefinition) (value.Value, error) {
	if len(call.Args) != len(fn.Params) {
		return nil, diag.At(diag.ArityMismatch, call.Line, call.Column,
			"%q expects %d argument(s), got %d", fn.Name, len(fn.Params), len(call.Args))
	}

	args, err := e.evalArgs(call.Args)
	if err != nil {
		return nil, err
	}

	callee := scope.New()
	for i, param := range fn.Params {
		arg := args[i]
		if err := checkParamType(param, arg); err != nil {
			pos := call.Args[i].Pos()
			return nil, diag.At(diag.TypeError, pos.Line, pos.Column,
				"argument %q: %s", param.Name, err)
		}
		callee.Set(param.Name, value.Clone(arg))
	}

	caller := e.frame
	e.frame = callee
	err = e.execBlock(fn.Body)
	e.frame = caller

	if err == nil {
		return value.NewNumberInt(0), nil
	}
	var ret *returnSignal
	if errors.As(err, &ret) {
		return ret.Value, nil
	}
	return nil, err
}

func checkParamType(param ast.Param, arg value.Value) error {
	var want value.Kind
	switch param.TypeTag {
	case "Number":
		want = value.NumberKind
	case "String":
		want = value.StringKind
	case "Bool":
		want = value.BoolKind
	case "Array":
		want = value.ArrayKind
	default:
		return errors.New("unknown type tag " + param.TypeTag)
	}
	if arg.Kind() != want {
		return errors.New("expected " + want.String() + ", got " + arg.Kind().String())
	}
	return nil
}
