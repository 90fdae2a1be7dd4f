/*
File    : cortado/value/coerce.go
Package : value

Implements the as_number / as_string coercions from the spec's data
model: Number passes through itself, Bool coerces to 1/0, and String
is never accepted as a number; as_string renders any of the four
variants except Array, which has no string form.
*/
package value

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AsNumber implements as_number: Number returns itself; Bool becomes
// 1 or 0; String and Array fail with a TypeError-shaped error (the
// caller attaches source position).
func AsNumber(v Value) (decimal.Decimal, error) {
	switch x := v.(type) {
	case Number:
		return x.D, nil
	case Bool:
		if x.B {
			return decimal.NewFromInt(1), nil
		}
		return decimal.NewFromInt(0), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot coerce %s to Number", v.Kind())
	}
}

// AsString implements as_string: Number renders its canonical decimal
// text, String is the identity, Bool renders "true"/"false", and
// Array has no string form.
func AsString(v Value) (string, error) {
	if _, ok := v.(Array); ok {
		return "", fmt.Errorf("cannot coerce Array to String")
	}
	return v.String(), nil
}
