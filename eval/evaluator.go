/*
File    : cortado/eval/evaluator.go
Package : eval

Package eval implements cortado's tree-walking evaluator: a single
flat scope.Frame active for the lifetime of one function call or the
top-level program (no closures, no scope chain), typed runtime values
via the value package, and the feature-gated built-in commands from
the builtins package. Grounded on the teacher's eval/evaluator.go
(current-environment-plus-recursive-Eval shape), generalized to this
spec's smaller, closed grammar.
*/
package eval

import (
	"bufio"
	"io"

	"github.com/bencinn/cortado/ast"
	"github.com/bencinn/cortado/builtins"
	"github.com/bencinn/cortado/diag"
	"github.com/bencinn/cortado/scope"
	"github.com/bencinn/cortado/value"
)

// Evaluator walks a program's AST. It owns the currently active Frame,
// the table of user-defined functions, which built-in features are
// enabled, and the I/O streams built-ins read from and write to.
type Evaluator struct {
	frame     *scope.Frame
	functions map[string]*ast.FunctionDefinition
	features  map[string]bool
	writer    io.Writer
	stdin     *bufio.Reader
}

// New creates an Evaluator over a fresh top-level frame. enabled lists
// the feature-gated built-in command names this run permits (a subset
// of builtins.Names); writer and stdin back print/input-family calls.
func New(writer io.Writer, stdin io.Reader, enabled []string) *Evaluator {
	features := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		features[name] = true
	}
	return &Evaluator{
		frame:     scope.New(),
		functions: make(map[string]*ast.FunctionDefinition),
		features:  features,
		writer:    writer,
		stdin:     bufio.NewReader(stdin),
	}
}

// Print implements builtins.Host.
func (e *Evaluator) Print(line string) error {
	_, err := io.WriteString(e.writer, line+"\n")
	return err
}

// ReadLine implements builtins.Host.
func (e *Evaluator) ReadLine() (string, bool, error) {
	return builtins.ReadLineFrom(e.stdin)
}

// Run evaluates program as the top-level call boundary: a return(...)
// anywhere in it ends the program early with that value, exactly like
// returning from a user function; falling off the end yields
// Number(0).
func (e *Evaluator) Run(program *ast.Block) (value.Value, error) {
	err := e.execBlock(program)
	if err == nil {
		return value.NewNumberInt(0), nil
	}
	if ret, ok := err.(*returnSignal); ok {
		return ret.Value, nil
	}
	return nil, err
}

// execBlock executes each statement of block in order against the
// evaluator's current frame, stopping at the first error (including a
// returnSignal, which keeps unwinding past execBlock's caller).
func (e *Evaluator) execBlock(block *ast.Block) error {
	for _, stmt := range block.Statements {
		if _, err := e.eval(stmt); err != nil {
			return err
		}
	}
	return nil
}

// eval evaluates any AST node, expression or statement alike, against
// the evaluator's current frame.
func (e *Evaluator) eval(node ast.Node) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Int:
		return e.evalInt(n)
	case *ast.Str:
		return value.NewString(n.Text), nil
	case *ast.Bool:
		return value.NewBool(n.Value), nil
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.Array:
		return e.evalArray(n)
	case *ast.BinaryOp:
		return e.evalBinaryOp(n)
	case *ast.ArrayAccess:
		return e.evalArrayAccess(n)
	case *ast.Set:
		return e.evalSet(n)
	case *ast.If:
		return e.evalIf(n)
	case *ast.ForLoop:
		return e.evalForLoop(n)
	case *ast.FunctionDefinition:
		return e.evalFunctionDefinition(n)
	case *ast.FunctionCall:
		return e.evalFunctionCall(n)
	default:
		return nil, diag.At(diag.ParseError, node.Pos().Line, node.Pos().Column, "unhandled node type %T", node)
	}
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier) (value.Value, error) {
	v, ok := e.frame.Get(n.Name)
	if !ok {
		return nil, diag.At(diag.VariableNotFound, n.Line, n.Column, "variable %q is not defined", n.Name)
	}
	return v, nil
}

func (e *Evaluator) evalArray(n *ast.Array) (value.Value, error) {
	elems := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := e.eval(el)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewArray(elems), nil
}
