/*
File    : cortado/builtins/builtins.go
Package : builtins

Implements cortado's feature-gated standard commands: print, input,
inputf, split, and join. (The sixth gated name, "return", is control
flow rather than a value-producing call and is handled directly by the
eval package; see eval/calls.go.) Grounded on the teacher's std package
layout (one file per command family), trimmed to the five commands
this closed value domain and grammar actually need.

Built-ins never see AST nodes — by the time a call reaches this
package its arguments are already evaluated value.Values, matching the
spec's left-to-right argument evaluation rule.
*/
package builtins

import (
	"bufio"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bencinn/cortado/diag"
	"github.com/bencinn/cortado/value"
)

// Host is the slice of an evaluator that built-ins need: somewhere to
// print to, and a line reader to pull input from. Implemented by
// eval.Evaluator; kept as a narrow interface here so this package
// never has to import eval.
type Host interface {
	Print(line string) error
	ReadLine() (string, bool, error)
}

// Func is the signature every built-in command implements.
type Func func(h Host, args []value.Value) (value.Value, error)

// Names lists every feature-gated standard command, including
// "return" — the full gate list a features map needs to describe,
// even though Call itself never dispatches "return".
var Names = []string{"print", "return", "input", "inputf", "split", "join"}

// registry holds the commands Call can dispatch directly.
var registry = map[string]Func{
	"print":  Print,
	"input":  Input,
	"inputf": Inputf,
	"split":  Split,
	"join":   Join,
}

// Lookup reports whether name is a dispatchable built-in (anything in
// registry; "return" is deliberately excluded since eval handles it).
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Print writes each argument's as_string form on its own line,
// matching the spec's "one newline per print argument" rule. It
// returns Number(0), matching the default value for a command with no
// other useful result.
func Print(h Host, args []value.Value) (value.Value, error) {
	for _, a := range args {
		s, err := value.AsString(a)
		if err != nil {
			return nil, diag.New(diag.TypeError, "print: %s", err)
		}
		if err := h.Print(s); err != nil {
			return nil, err
		}
	}
	return value.NewNumberInt(0), nil
}

// Input reads one line from stdin and returns it as a String. At end
// of input it returns an empty String, matching a line reader that has
// run dry rather than erroring.
func Input(h Host, args []value.Value) (value.Value, error) {
	line, _, err := h.ReadLine()
	if err != nil {
		return nil, err
	}
	return value.NewString(line), nil
}

// Inputf reads one line from stdin, splits both its fmt argument and
// that line on a single space, and parses each input token per the
// corresponding format tag ("%Number", "%String", or "%Bool"),
// returning an Array of the parsed values. A length mismatch between
// fmt and the input line, an unrecognized format tag, or a token that
// doesn't parse per its tag is InputFormatError.
func Inputf(h Host, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, diag.New(diag.ArityMismatch, "inputf expects 1 argument, got %d", len(args))
	}
	fmtStr, ok := args[0].(value.String)
	if !ok {
		return nil, diag.New(diag.TypeError, "inputf: argument must be a String, got %s", args[0].Kind())
	}

	line, _, err := h.ReadLine()
	if err != nil {
		return nil, err
	}

	tags := strings.Split(fmtStr.S, " ")
	tokens := strings.Split(line, " ")
	if len(tags) != len(tokens) {
		return nil, diag.New(diag.InputFormatError, "inputf: expected %d token(s), got %d", len(tags), len(tokens))
	}

	elems := make([]value.Value, len(tags))
	for i, tag := range tags {
		v, err := parseFormatToken(tag, tokens[i])
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewArray(elems), nil
}

func parseFormatToken(tag, token string) (value.Value, error) {
	switch tag {
	case "%Number":
		d, err := decimal.NewFromString(token)
		if err != nil {
			return nil, diag.New(diag.InputFormatError, "inputf: %q is not a valid Number", token)
		}
		return value.NewNumber(d), nil
	case "%String":
		return value.NewString(token), nil
	case "%Bool":
		switch token {
		case "true":
			return value.NewBool(true), nil
		case "false":
			return value.NewBool(false), nil
		default:
			return nil, diag.New(diag.InputFormatError, "inputf: %q is not a valid Bool", token)
		}
	default:
		return nil, diag.New(diag.InputFormatError, "inputf: unknown format tag %q", tag)
	}
}

// Split evaluates its first argument (a String), trims it, and splits
// it on its second argument (a String delimiter, default " " when
// omitted). Each resulting token is coerced to Number if it parses as
// decimal, else Bool if it is "true"/"false", else left as String.
func Split(h Host, args []value.Value) (value.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, diag.New(diag.ArityMismatch, "split expects 1 or 2 arguments, got %d", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, diag.New(diag.TypeError, "split: first argument must be a String, got %s", args[0].Kind())
	}
	delim := " "
	if len(args) == 2 {
		sep, ok := args[1].(value.String)
		if !ok {
			return nil, diag.New(diag.TypeError, "split: second argument must be a String, got %s", args[1].Kind())
		}
		delim = sep.S
	}

	parts := strings.Split(strings.TrimSpace(s.S), delim)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = coerceToken(p)
	}
	return value.NewArray(elems), nil
}

// coerceToken applies split's per-token coercion: Number if it parses
// as decimal, else Bool if it is exactly "true"/"false", else String.
func coerceToken(token string) value.Value {
	if d, err := decimal.NewFromString(token); err == nil {
		return value.NewNumber(d)
	}
	switch token {
	case "true":
		return value.NewBool(true)
	case "false":
		return value.NewBool(false)
	default:
		return value.NewString(token)
	}
}

// Join requires both arguments to be Array and returns their
// concatenation as a new Array.
func Join(h Host, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, diag.New(diag.ArityMismatch, "join expects 2 arguments, got %d", len(args))
	}
	a, ok := args[0].(value.Array)
	if !ok {
		return nil, diag.New(diag.TypeError, "join: first argument must be an Array, got %s", args[0].Kind())
	}
	b, ok := args[1].(value.Array)
	if !ok {
		return nil, diag.New(diag.TypeError, "join: second argument must be an Array, got %s", args[1].Kind())
	}
	elems := make([]value.Value, 0, len(a.Elems)+len(b.Elems))
	elems = append(elems, a.Elems...)
	elems = append(elems, b.Elems...)
	return value.NewArray(elems), nil
}

// ReadLineFrom adapts a bufio.Reader to the (line, ok, err) shape
// ReadLine needs, used by eval.Evaluator's Host implementation.
func ReadLineFrom(r *bufio.Reader) (string, bool, error) {
	line, err := r.ReadString('\n')
	if len(line) == 0 && err != nil {
		return "", false, nil
	}
	line = strings.TrimRight(line, "\r\n")
	return line, true, nil
}
