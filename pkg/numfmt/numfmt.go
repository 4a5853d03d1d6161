package numfmt

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultLocale is used by Format when the requested locale is invalid.
	DefaultLocale = "en-US"
	// DefaultDecimals is the number of fraction digits the CLI uses when none is given.
	DefaultDecimals = 2
)

// ErrInvalidLocale is returned when a locale is not a well-formed BCP 47 tag.
var ErrInvalidLocale = errors.New("numfmt: invalid locale")

// Formatter renders a number with exactly decimals fraction digits.
type Formatter interface {
	Format(value float64, decimals int) string
}

// LocaleFormatter formats numbers for a single locale.
// It is safe for concurrent use.
type LocaleFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

var _ Formatter = (*LocaleFormatter)(nil)

// New returns a formatter for the given BCP 47 locale, e.g. "en-US" or "fr-FR".
func New(locale string) (*LocaleFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLocale, locale, err)
	}
	return &LocaleFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}, nil
}

// Locale returns the parsed locale tag.
func (f *LocaleFormatter) Locale() language.Tag {
	return f.tag
}

// Format renders value with exactly decimals fraction digits, rounding as
// needed. Negative decimals act as 0.
func (f *LocaleFormatter) Format(value float64, decimals int) string {
	decimals = max(decimals, 0)
	return f.printer.Sprint(number.Decimal(value, number.Scale(decimals)))
}

var fallback, _ = New(DefaultLocale)

// Format is a convenience wrapper around New(locale).Format. An invalid
// locale falls back to DefaultLocale.
func Format(value float64, decimals int, locale string) string {
	f, err := New(locale)
	if err != nil {
		f = fallback
	}
	return f.Format(value, decimals)
}
