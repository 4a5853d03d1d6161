package check

import (
	"math"

	"github.com/zairakai/helpers/pkg/value"
)

// IsTrue reports whether v is the boolean true.
func IsTrue(v value.Value) bool {
	return v.Kind() == value.KindBool && v.Bool()
}

// IsFalse reports whether v is the boolean false. Other falsy shapes such as 0
// or "" do not qualify.
func IsFalse(v value.Value) bool {
	return v.Kind() == value.KindBool && !v.Bool()
}

// IsNull reports whether v is the null marker. Undefined is not null.
func IsNull(v value.Value) bool {
	return v.Kind() == value.KindNull
}

// IsUndefined reports whether v is the absent marker.
func IsUndefined(v value.Value) bool {
	return v.Kind() == value.KindUndefined
}

// IsSet reports whether v is neither null nor undefined.
func IsSet(v value.Value) bool {
	return !IsNull(v) && !IsUndefined(v)
}

func IsArray(v value.Value) bool {
	return v.Kind() == value.KindSeq
}

// IsObject reports whether v is a key-value mapping. Sequences and null are
// not objects.
func IsObject(v value.Value) bool {
	return v.Kind() == value.KindMap
}

func IsString(v value.Value) bool {
	return v.Kind() == value.KindString
}

// IsNumber reports whether v is numeric and not NaN. Infinities are numbers.
func IsNumber(v value.Value) bool {
	switch v.Kind() {
	case value.KindInt:
		return true
	case value.KindFloat:
		return !math.IsNaN(v.Number())
	default:
		return false
	}
}

// IsInteger reports whether v is a number without a fractional component.
func IsInteger(v value.Value) bool {
	switch v.Kind() {
	case value.KindInt:
		return true
	case value.KindFloat:
		f := v.Number()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
	default:
		return false
	}
}

// IsFloat reports whether v is a number with a fractional component.
// Integral values such as 0 or 123.0 are not floats.
func IsFloat(v value.Value) bool {
	return v.Kind() == value.KindFloat && IsNumber(v) && !IsInteger(v)
}

func IsBoolean(v value.Value) bool {
	return v.Kind() == value.KindBool
}

func IsFunction(v value.Value) bool {
	return v.Kind() == value.KindFunc
}

// IsDate reports whether v is a date holding a valid instant.
func IsDate(v value.Value) bool {
	_, ok := v.Time()
	return ok
}
