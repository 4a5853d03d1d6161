package slug

import (
	"crypto/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/zairakai/helpers/pkg/check"
	"github.com/zairakai/helpers/pkg/value"
)

const separator = "-"

var hyphenRunRegex = regexp.MustCompile(`-{2,}`)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength    int
	suffixLength int
}

// MaxLength caps the slug at n characters. A hyphen left dangling by the cut
// is removed. Zero or negative means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// WithSuffix appends a random [a-z0-9] suffix of the given length to reduce
// collisions, e.g. "hello-world-x7g3k2". When combined with MaxLength the
// main part is shortened to make room for the suffix.
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// Make derives a URL-safe slug from s.
//
// The text is decomposed (NFD), combining diacritical marks U+0300..U+036F are
// dropped, the result is lowercased and trimmed, every whitespace run becomes
// one hyphen, characters outside [A-Za-z0-9_-] are removed and hyphen runs
// collapse to one. Leading and trailing hyphens are trimmed last.
// Without options Make is idempotent.
func Make(s string, opts ...Option) string {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	s = norm.NFD.String(s)
	s = strings.Map(dropCombiningMark, s)
	s = strings.ToLower(s)
	s = strings.Join(strings.FieldsFunc(s, unicode.IsSpace), separator)
	s = strings.Map(keepWordOrHyphen, s)
	s = hyphenRunRegex.ReplaceAllString(s, separator)
	s = strings.Trim(s, separator)

	if cfg.suffixLength > 0 {
		return withSuffix(s, cfg)
	}
	return truncate(s, cfg.maxLength)
}

// From coerces v to text and slugifies it. Numbers use their decimal form,
// so 123.45 becomes "12345". Empty values (see check.IsEmpty) yield "".
func From(v value.Value, opts ...Option) string {
	if check.IsEmpty(v) {
		return ""
	}
	s, _ := v.Text()
	return Make(s, opts...)
}

func dropCombiningMark(r rune) rune {
	if r >= '\u0300' && r <= '\u036f' {
		return -1
	}
	return r
}

func keepWordOrHyphen(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		return r
	}
	return -1
}

// truncate works on bytes: at this point the slug is pure ASCII.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return strings.TrimRight(s[:n], separator)
}

func withSuffix(s string, cfg *config) string {
	suffixLen := cfg.suffixLength
	if cfg.maxLength > 0 && suffixLen > cfg.maxLength {
		suffixLen = cfg.maxLength
	}
	suffix := generateSuffix(suffixLen)

	if cfg.maxLength > 0 {
		room := cfg.maxLength - len(separator) - suffixLen
		if room <= 0 {
			s = ""
		} else {
			s = truncate(s, room)
		}
	}

	if s == "" {
		return suffix
	}
	return s + separator + suffix
}

// generateSuffix creates a random alphanumeric suffix of the given length.
func generateSuffix(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}
