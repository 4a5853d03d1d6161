package sanitizer

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/zairakai/helpers/pkg/check"
	"github.com/zairakai/helpers/pkg/value"
)

// Transformers carry state between calls, so each borrower gets its own chain.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// normalize is the comparison-form pipeline. The trailing Trim catches
// whitespace exposed by removing a trailing combining mark.
var normalize = Compose(Trim, ToLower, FoldDiacritics, Trim)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// FoldDiacritics strips combining marks and returns the text in canonical
// composed form, so an accented "e" becomes "e" whether the accent is
// precomposed or decomposed.
// Letters without a decomposition, such as "ø" or "ß", are kept.
func FoldDiacritics(s string) string {
	if isASCII(s) {
		return s
	}

	t := foldPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		foldPool.Put(t)
	}()

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize produces the comparison form of s: trimmed, lowercased, composed
// and free of combining marks. It is idempotent.
func Normalize(s string) string {
	return normalize(s)
}

// NormalizeString normalizes text values. Every other kind, null and
// undefined included, is returned unchanged.
func NormalizeString(v value.Value) value.Value {
	if !check.IsString(v) {
		return v
	}
	return value.String(Normalize(v.Str()))
}

// Capitalize upper-cases the first character and lower-cases the rest.
// Empty values (see check.IsEmpty) yield "".
func Capitalize(v value.Value) string {
	if check.IsEmpty(v) {
		return ""
	}

	s, _ := v.Text()
	first, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(first)) + strings.ToLower(s[size:])
}

// NormalizeWhitespace collapses every whitespace run into one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
