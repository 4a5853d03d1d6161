package value

import (
	"math"
	"slices"
	"time"
)

// Kind identifies the shape of a Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindSeq
	KindMap
	KindFunc
	KindDate
	KindOther
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "bool",
	KindInt:       "int",
	KindFloat:     "float",
	KindString:    "string",
	KindSeq:       "seq",
	KindMap:       "map",
	KindFunc:      "func",
	KindDate:      "date",
	KindOther:     "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a tagged union over the shapes listed in Kind.
// The zero Value is Undefined.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	seq   []Value
	m     map[string]Value
	t     time.Time
	valid bool
	raw   any
}

func Undefined() Value { return Value{} }

func Null() Value { return Value{kind: KindNull} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func String(s string) Value { return Value{kind: KindString, s: s} }

// Seq builds an ordered sequence. The slice is copied.
func Seq(items ...Value) Value {
	return Value{kind: KindSeq, seq: slices.Clone(items)}
}

// Map builds a string-keyed mapping. The map is copied.
func Map(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: KindMap, m: cp}
}

// Func wraps a callable reference. fn is kept as-is and returned by Raw.
func Func(fn any) Value { return Value{kind: KindFunc, raw: fn} }

// Date wraps a valid calendar instant.
func Date(t time.Time) Value { return Value{kind: KindDate, t: t, valid: true} }

// InvalidDate is a date-shaped value whose instant is the invalid-date sentinel.
func InvalidDate() Value { return Value{kind: KindDate} }

// Other wraps a value that fits no other kind.
func Other(x any) Value { return Value{kind: KindOther, raw: x} }

func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload; false for non-Bool kinds.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Int returns the integer payload; 0 for non-Int kinds.
func (v Value) Int() int64 {
	if v.kind == KindInt {
		return v.i
	}
	return 0
}

// Number returns a float64 view of Int and Float values and NaN otherwise.
func (v Value) Number() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	default:
		return math.NaN()
	}
}

// Str returns the text payload; "" for non-String kinds.
func (v Value) Str() string {
	if v.kind == KindString {
		return v.s
	}
	return ""
}

// Len returns the number of items of a Seq, keys of a Map or bytes of a String.
func (v Value) Len() int {
	switch v.kind {
	case KindSeq:
		return len(v.seq)
	case KindMap:
		return len(v.m)
	case KindString:
		return len(v.s)
	default:
		return 0
	}
}

// Items returns a copy of the Seq elements.
func (v Value) Items() []Value {
	if v.kind != KindSeq {
		return nil
	}
	return slices.Clone(v.seq)
}

// Index returns the i-th element of a Seq or Undefined when out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindSeq || i < 0 || i >= len(v.seq) {
		return Undefined()
	}
	return v.seq[i]
}

// Keys returns the Map keys in sorted order.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the Map entry for key or Undefined.
func (v Value) Get(key string) Value {
	if v.kind != KindMap {
		return Undefined()
	}
	return v.m[key]
}

// Time returns the instant of a Date and whether it is valid.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}
	return v.t, v.valid
}

// Raw returns the wrapped payload of Func and Other values.
func (v Value) Raw() any { return v.raw }
