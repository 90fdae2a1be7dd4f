/*
File    : cortado/scope/frame.go
Package : scope

Package scope implements cortado's variable frame: a single flat
mapping from identifier to value.Value, active for the lifetime of one
function call or the top-level program. Grounded on the teacher's
Scope type, but with the parent-chain, closures, and const/let
bookkeeping removed — the spec's Non-goals explicitly exclude lexical
scoping beyond one frame per call and closures over enclosing
variables, so there is nothing for a scope chain to do here.
*/
package scope

import "github.com/bencinn/cortado/value"

// Frame is the variable mapping active during one function call or
// the top-level program.
type Frame struct {
	vars map[string]value.Value
}

// New creates an empty Frame.
func New() *Frame {
	return &Frame{vars: make(map[string]value.Value)}
}

// Get looks up a variable by name in this frame.
func (f *Frame) Get(name string) (value.Value, bool) {
	v, ok := f.vars[name]
	return v, ok
}

// Set inserts or overwrites a variable binding in this frame.
func (f *Frame) Set(name string, v value.Value) {
	f.vars[name] = v
}

// Names returns the bound variable names in this frame, in no
// particular order; used by host tooling (e.g. the REPL's /vars
// command) to introspect a running program's state.
func (f *Frame) Names() []string {
	names := make([]string, 0, len(f.vars))
	for name := range f.vars {
		names = append(names, name)
	}
	return names
}

// Snapshot returns a shallow copy of the frame's current bindings.
// The evaluator's if and for statements do not use it: they run their
// bodies against the current frame.
func (f *Frame) Snapshot() map[string]value.Value {
	out := make(map[string]value.Value, len(f.vars))
	for k, v := range f.vars {
		out[k] = v
	}
	return out
}

// FromSnapshot builds a Frame from a previously taken Snapshot.
func FromSnapshot(vars map[string]value.Value) *Frame {
	return &Frame{vars: vars}
}
