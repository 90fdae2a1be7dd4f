/*
File    : cortado/value/value.go
Package : value

Package value implements cortado's runtime value domain: a tagged
union of exactly four variants (Number, String, Bool, Array) plus the
as_number/as_string coercions operators and built-ins use. Numbers are
backed by github.com/shopspring/decimal so arithmetic stays exact
fixed-point decimal rather than binary floating point.
*/
package value

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies which of the four Value variants a Value holds.
type Kind int

const (
	NumberKind Kind = iota
	StringKind
	BoolKind
	ArrayKind
)

// String renders a Kind for use in diagnostics (e.g. TypeError messages).
func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "Number"
	case StringKind:
		return "String"
	case BoolKind:
		return "Bool"
	case ArrayKind:
		return "Array"
	default:
		return "Unknown"
	}
}

// Value is the interface every runtime datum implements. A Value
// carries exactly one variant; Kind reports which, and String renders
// the canonical display form used by print and string coercion.
type Value interface {
	Kind() Kind
	String() string
}

// Number is the Number variant: an arbitrary-precision fixed-point
// decimal. Equality and comparison use decimal.Decimal's exact
// semantics, never binary float comparison.
type Number struct {
	D decimal.Decimal
}

// NewNumber wraps a decimal.Decimal as a Number value.
func NewNumber(d decimal.Decimal) Number { return Number{D: d} }

// NewNumberInt wraps a plain int as a Number value, useful for
// constants like the default Number(0) result of a function call that
// never reached return.
func NewNumberInt(n int64) Number { return Number{D: decimal.NewFromInt(n)} }

// Kind implements Value.
func (Number) Kind() Kind { return NumberKind }

// String renders the canonical normalized decimal text: no trailing
// zeros, no trailing dot, matching as_string's Number case in the
// spec's coercion table.
func (n Number) String() string {
	s := n.D.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// String is the String variant: Unicode text.
type String struct {
	S string
}

// NewString wraps a Go string as a String value.
func NewString(s string) String { return String{S: s} }

// Kind implements Value.
func (String) Kind() Kind { return StringKind }

// String renders the text itself — as_string on a String is the
// identity coercion.
func (s String) String() string { return s.S }

// Bool is the Bool variant.
type Bool struct {
	B bool
}

// NewBool wraps a Go bool as a Bool value.
func NewBool(b bool) Bool { return Bool{B: b} }

// Kind implements Value.
func (Bool) Kind() Kind { return BoolKind }

// String renders "true" or "false".
func (b Bool) String() string {
	if b.B {
		return "true"
	}
	return "false"
}

// Array is the Array variant: an ordered, heterogeneous sequence of
// Values. Array is a reference type — assigning an Array to another
// variable shares the same backing slice until one side is replaced
// wholesale; function-call argument passing clones it (see eval's
// call dispatch), matching the spec's no-aliasing-across-calls rule.
type Array struct {
	Elems []Value
}

// NewArray wraps a slice of Values as an Array value.
func NewArray(elems []Value) Array { return Array{Elems: elems} }

// Kind implements Value.
func (Array) Kind() Kind { return ArrayKind }

// String renders "[elem1, elem2, ...]", each element via its own
// String method (so nested arrays print their own bracketed form).
func (a Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range a.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Clone returns a deep copy of the array: each element's own Clone
// (for nested arrays) or the element itself (scalars are immutable
// value types, so sharing them is safe). Used at function-call
// boundaries so a callee's in-place array mutation never aliases the
// caller's argument.
func (a Array) Clone() Array {
	out := make([]Value, len(a.Elems))
	for i, e := range a.Elems {
		if arr, ok := e.(Array); ok {
			out[i] = arr.Clone()
		} else {
			out[i] = e
		}
	}
	return Array{Elems: out}
}

// Clone returns v unchanged for scalar kinds, or a deep copy for
// Array. Centralizes the "copy Array arguments, share scalars" rule
// used when binding call arguments to a fresh callee frame.
func Clone(v Value) Value {
	if arr, ok := v.(Array); ok {
		return arr.Clone()
	}
	return v
}
