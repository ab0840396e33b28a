// Package options normalizes heterogeneous option sources (plain values, labelled
// options, named groups and action rows) into one searchable shape.
package options

import (
	"strconv"
)

// ValueKind discriminates the scalar carried by a Value.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueString
	ValueNumber
	ValueBool
)

// Value is an option identity. Values compare equal only when both kind and text
// match, so the number 1 and the string "1" are different options. The zero Value
// means "nothing selected".
type Value struct {
	kind ValueKind
	text string
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: ValueString, text: s}
}

// Int returns a numeric value.
func Int(n int64) Value {
	return Value{kind: ValueNumber, text: strconv.FormatInt(n, 10)}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: ValueNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: ValueBool, text: strconv.FormatBool(b)}
}

// Of converts a Go scalar into a Value. Unsupported types yield the zero Value.
func Of(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Number(float64(x))
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	default:
		return Value{}
	}
}

// Strings converts a list of strings into Values.
func Strings(values ...string) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = String(v)
	}
	return out
}

// Kind reports what the value holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsZero reports whether v is the empty value.
func (v Value) IsZero() bool {
	return v.kind == ValueNone
}

// String returns the stringified value used for labels and matching.
func (v Value) String() string {
	return v.text
}
