package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zairakai/helpers/pkg/sanitizer"
	"github.com/zairakai/helpers/pkg/value"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trims and lowercases", input: "  Hello World  ", expected: "hello world"},
		{name: "strips precomposed accent", input: "Café", expected: "cafe"},
		{name: "strips decomposed accent", input: "Cafe\u0301", expected: "cafe"},
		{name: "folds several marks", input: "Crème Brûlée", expected: "creme brulee"},
		{name: "keeps letters without decomposition", input: "Øre Straße", expected: "øre straße"},
		{name: "handles empty string", input: "", expected: ""},
		{name: "handles whitespace only", input: " \t\n ", expected: ""},
		{name: "leaves inner whitespace alone", input: "a  b", expected: "a  b"},
		{name: "trims space exposed by stripped mark", input: "abc \u0301", expected: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"  Café  ", "ÀÉÎÕÜ", "Cafe\u0301 \u0301", "plain", "  "}
	for _, in := range inputs {
		once := sanitizer.Normalize(in)
		assert.Equal(t, once, sanitizer.Normalize(once), "input %q", in)
	}
}

func TestNormalizeString(t *testing.T) {
	t.Run("normalizes text", func(t *testing.T) {
		got := sanitizer.NormalizeString(value.String("  ÉCOLE "))
		assert.Equal(t, value.KindString, got.Kind())
		assert.Equal(t, "ecole", got.Str())
	})

	t.Run("passes null through", func(t *testing.T) {
		assert.Equal(t, value.KindNull, sanitizer.NormalizeString(value.Null()).Kind())
	})

	t.Run("passes undefined through", func(t *testing.T) {
		assert.Equal(t, value.KindUndefined, sanitizer.NormalizeString(value.Undefined()).Kind())
	})

	t.Run("passes numbers through", func(t *testing.T) {
		got := sanitizer.NormalizeString(value.Int(42))
		assert.Equal(t, value.KindInt, got.Kind())
		assert.Equal(t, int64(42), got.Int())
	})
}

func TestFoldDiacritics(t *testing.T) {
	assert.Equal(t, "Francais", sanitizer.FoldDiacritics("Français"))
	assert.Equal(t, "ASCII only", sanitizer.FoldDiacritics("ASCII only"))
	assert.Equal(t, "nino", sanitizer.FoldDiacritics("niño"))
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name     string
		input    value.Value
		expected string
	}{
		{name: "lowercase word", input: value.String("hello"), expected: "Hello"},
		{name: "uppercase word", input: value.String("WORLD"), expected: "World"},
		{name: "mixed case sentence", input: value.String("hELLO wORLD"), expected: "Hello world"},
		{name: "non-ascii first letter", input: value.String("élan"), expected: "Élan"},
		{name: "single letter", input: value.String("a"), expected: "A"},
		{name: "number is coerced", input: value.Int(123), expected: "123"},
		{name: "empty string", input: value.String(""), expected: ""},
		{name: "null", input: value.Null(), expected: ""},
		{name: "undefined", input: value.Undefined(), expected: ""},
		{name: "zero is empty", input: value.Int(0), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Capitalize(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, sanitizer.Capitalize(value.String(got)))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", sanitizer.NormalizeWhitespace("  a \t b\n\nc  "))
	assert.Equal(t, "", sanitizer.NormalizeWhitespace(" \n "))
}
