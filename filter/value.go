package filter

import (
	"strconv"
	"strings"
)

// ValueKind tags the shape of a filter value. Combination behavior (AND/OR)
// is decided by the filter kind, never inferred from the value shape.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueInt
	ValueString
	ValueMany
)

// Value is the tagged value carried by a filter: nothing, a single scalar,
// or an ordered list of scalars.
type Value struct {
	Kind ValueKind
	Int  int
	Str  string
	Many []Value
}

func NoValue() Value {
	return Value{Kind: ValueNone}
}

func IntValue(n int) Value {
	return Value{Kind: ValueInt, Int: n}
}

func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

func ManyValue(vs ...Value) Value {
	return Value{Kind: ValueMany, Many: vs}
}

// IntsValue builds a Many value from a list of ids.
func IntsValue(ids []int) Value {
	vs := make([]Value, 0, len(ids))
	for _, id := range ids {
		vs = append(vs, IntValue(id))
	}
	return Value{Kind: ValueMany, Many: vs}
}

func (v Value) IsNone() bool {
	return v.Kind == ValueNone || (v.Kind == ValueMany && len(v.Many) == 0)
}

// Ints flattens the value into integer scalars, dropping anything that is
// not an int.
func (v Value) Ints() []int {
	switch v.Kind {
	case ValueInt:
		return []int{v.Int}
	case ValueMany:
		out := make([]int, 0, len(v.Many))
		for _, e := range v.Many {
			if e.Kind == ValueInt {
				out = append(out, e.Int)
			}
		}
		return out
	default:
		return nil
	}
}

// Scalars returns the value as a flat list of single-valued Values.
func (v Value) Scalars() []Value {
	switch v.Kind {
	case ValueNone:
		return nil
	case ValueMany:
		out := make([]Value, 0, len(v.Many))
		for _, e := range v.Many {
			out = append(out, e.Scalars()...)
		}
		return out
	default:
		return []Value{v}
	}
}

// AsMany wraps a scalar into a one-element Many. Used when an OR-combining
// custom filter receives a single request value.
func (v Value) AsMany() Value {
	if v.Kind == ValueMany || v.Kind == ValueNone {
		return v
	}
	return Value{Kind: ValueMany, Many: []Value{v}}
}

// String renders the value for URLs and option labels.
func (v Value) String() string {
	switch v.Kind {
	case ValueInt:
		return strconv.Itoa(v.Int)
	case ValueString:
		return v.Str
	case ValueMany:
		parts := make([]string, 0, len(v.Many))
		for _, e := range v.Many {
			parts = append(parts, e.String())
		}
		return strings.Join(parts, "_")
	default:
		return ""
	}
}
