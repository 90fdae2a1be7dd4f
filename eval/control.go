/*
File    : cortado/eval/control.go
Package : eval

Implements return(...) as a typed control-flow signal carried through
Go's ordinary error channel, grounded on the teacher's eval_controls.go
ReturnValue-wrapper pattern: there, the evaluator's object type itself
has a Return variant it can unwrap at any level of recursion. Here
value.Value is a closed 4-variant domain with no such case, so the
signal travels as a *returnSignal satisfying error, caught at the
function-call boundary via errors.As and at the top-level Run
boundary via a type assertion.
*/
package eval

import "github.com/bencinn/cortado/value"

// returnSignal unwinds execBlock/exec all the way out to the nearest
// enclosing function call (or the top-level program), carrying the
// value passed to return(...). It is never presented to the user as a
// diagnostic; callUserFunction and Run always catch it.
type returnSignal struct {
	Value value.Value
}

// Error implements error purely so returnSignal can travel through
// the same (value.Value, error) return signatures as genuine
// diagnostics; it is always intercepted before reaching a caller that
// would print it.
func (r *returnSignal) Error() string {
	return "return outside of a function call"
}
