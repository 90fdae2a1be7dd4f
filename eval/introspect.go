/*
File    : cortado/eval/introspect.go
Package : eval

Read-only introspection into the evaluator's current frame, used by
host tooling (the REPL's /vars command) rather than by any core
language operation.
*/
package eval

import "github.com/bencinn/cortado/value"

// VariableNames lists the names currently bound in the top-level
// frame.
func (e *Evaluator) VariableNames() []string {
	return e.frame.Names()
}

// Lookup reads a variable from the current frame without going
// through the AST/diagnostic path evalIdentifier uses.
func (e *Evaluator) Lookup(name string) (value.Value, bool) {
	return e.frame.Get(name)
}

// Preset binds name to v in the top-level frame before Run is called.
// Used by cmd/cortado to seed trailing "key=value" CLI arguments as
// String variables, a host-only convenience with no effect on core
// evaluation semantics.
func (e *Evaluator) Preset(name string, v value.Value) {
	e.frame.Set(name, v)
}
