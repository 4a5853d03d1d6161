package check

import (
	"strings"
	"unicode"

	"github.com/zairakai/helpers/pkg/value"
)

// IsEmpty reports whether v carries no content. The first matching rule wins:
// null or undefined, blank text, a sequence without items, a mapping without
// keys, the number 0 and the boolean false are empty. Every other shape,
// including NaN, functions and dates, is not.
func IsEmpty(v value.Value) bool {
	switch {
	case IsNull(v) || IsUndefined(v):
		return true
	case IsString(v):
		return trimSpace(v.Str()) == ""
	case IsArray(v):
		return v.Len() == 0
	case IsObject(v):
		return v.Len() == 0
	case IsNumber(v):
		return v.Number() == 0
	case IsBoolean(v):
		return IsFalse(v)
	default:
		return false
	}
}

func IsNotEmpty(v value.Value) bool {
	return !IsEmpty(v)
}

// IsBlank reports whether v is null, undefined or whitespace-only text, and
// otherwise defers to IsEmpty.
func IsBlank(v value.Value) bool {
	if IsNull(v) || IsUndefined(v) {
		return true
	}
	if IsString(v) {
		return trimSpace(v.Str()) == ""
	}
	return IsEmpty(v)
}

func IsPresent(v value.Value) bool {
	return !IsBlank(v)
}

// Filled is an alias of IsPresent.
func Filled(v value.Value) bool {
	return IsPresent(v)
}

// Blank is an alias of IsBlank.
func Blank(v value.Value) bool {
	return IsBlank(v)
}

// trimSpace strips Unicode white space and the byte order mark U+FEFF.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
