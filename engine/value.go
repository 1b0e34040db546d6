package engine

import "fmt"

// ValueKind tags the payload of a property Value.
type ValueKind int

const (
	KindInt ValueKind = iota
	KindInt64
	KindUint
	KindFloat
	KindBool
	KindString
	KindCaps
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindCaps:
		return "caps"
	default:
		return "unknown"
	}
}

// Value is a tagged property value. Property keys are not validated against
// a schema; unknown keys pass through to the engine unchecked and the
// element may silently ignore them.
type Value struct {
	kind ValueKind
	i    int64
	u    uint64
	f    float64
	b    bool
	s    string
	c    Caps
}

// Int wraps a signed integer.
func Int(v int) Value { return Value{kind: KindInt, i: int64(v)} }

// Int64 wraps a 64-bit signed integer. It keeps its width through
// Interface, so properties typed as 64-bit integers receive an int64.
func Int64(v int64) Value { return Value{kind: KindInt64, i: v} }

// Uint64 wraps a 64-bit unsigned integer.
func Uint64(v uint64) Value { return Value{kind: KindUint, u: v} }

// Float wraps a float.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Bool wraps a bool.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String wraps a string.
func String(v string) Value { return Value{kind: KindString, s: v} }

// CapsValue wraps a capability filter, e.g. for a capsfilter element's
// "caps" property. Ownership of the caps transfers to the receiving element.
func CapsValue(c Caps) Value { return Value{kind: KindCaps, c: c} }

// Kind returns the payload tag.
func (v Value) Kind() ValueKind { return v.kind }

// Caps returns the wrapped caps, or nil for non-caps values.
func (v Value) Caps() Caps {
	if v.kind != KindCaps {
		return nil
	}
	return v.c
}

// Interface unwraps the payload for handoff to the engine binding.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return int(v.i)
	case KindInt64:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindCaps:
		return v.c
	default:
		return nil
	}
}

// GoString helps log records show the tag alongside the payload.
func (v Value) GoString() string {
	return fmt.Sprintf("%s(%v)", v.kind, v.Interface())
}
