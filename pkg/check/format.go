package check

import (
	"errors"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/zairakai/helpers/pkg/value"
)

var (
	// Intentionally loose: one @, a dot in the domain, no whitespace.
	emailRegex = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)

	schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*$`)
)

// Schemes whose URLs are meaningless without a host.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ws":    true,
	"wss":   true,
}

// IsNumeric reports whether v is a number (see IsNumber, so ±Inf counts) or
// text that parses in full as a finite number after trimming surrounding
// whitespace. Text may also be an unsigned integer with a 0x, 0o or 0b prefix.
// Text with a numeric prefix only, such as "123abc", is not numeric.
func IsNumeric(v value.Value) bool {
	switch v.Kind() {
	case value.KindInt, value.KindFloat:
		return IsNumber(v)
	case value.KindString:
		return isNumericText(v.Str())
	default:
		return false
	}
}

func isNumericText(s string) bool {
	s = trimSpace(s)
	if base := radixOf(s); base != 0 {
		_, err := strconv.ParseUint(s[2:], base, 64)
		return err == nil || errors.Is(err, strconv.ErrRange)
	}
	if s == "" || strings.ContainsAny(s, "_xXpP") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return isFinite(f)
}

// radixOf returns the base named by a 0x, 0o or 0b prefix, or 0.
func radixOf(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 0
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsEmail reports whether v is text shaped like local@domain.tld.
// It is not an RFC 5322 parser.
func IsEmail(v value.Value) bool {
	return IsString(v) && emailRegex.MatchString(v.Str())
}

// IsURL reports whether v is text that parses as an absolute URL.
// Network schemes (http, https, ftp, ws, wss) also require a host.
func IsURL(v value.Value) bool {
	if !IsString(v) {
		return false
	}

	u, err := url.Parse(v.Str())
	if err != nil || u.Scheme == "" || !schemeRegex.MatchString(u.Scheme) {
		return false
	}
	if hostSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return false
	}
	return true
}

// IsUUID reports whether v is text holding a UUID in any form accepted by
// uuid.Parse (canonical, braced, urn-prefixed or bare hex).
func IsUUID(v value.Value) bool {
	if !IsString(v) {
		return false
	}
	_, err := uuid.Parse(v.Str())
	return err == nil
}
