package sanitizer

import (
	"github.com/rivo/uniseg"

	"github.com/zairakai/helpers/pkg/check"
	"github.com/zairakai/helpers/pkg/value"
)

// Ellipsis is the single-character marker appended by Truncate.
const Ellipsis = "…"

// Truncate caps s at size characters. When s is longer, the first size
// characters are kept and Ellipsis is appended; otherwise s is returned as is.
//
// Characters are grapheme clusters, so a base letter with its combining marks,
// a flag or an emoji sequence is never split. Negative sizes act as 0.
func Truncate(s string, size int) string {
	size = max(size, 0)
	if uniseg.GraphemeClusterCount(s) <= size {
		return s
	}

	rest, state := s, -1
	for range size {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return s[:len(s)-len(rest)] + Ellipsis
}

// StrLimit coerces v to text and truncates it with Truncate.
// Empty values (see check.IsEmpty) yield "".
func StrLimit(v value.Value, size int) string {
	if check.IsEmpty(v) {
		return ""
	}
	s, _ := v.Text()
	return Truncate(s, size)
}
