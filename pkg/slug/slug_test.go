package slug_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zairakai/helpers/pkg/slug"
	"github.com/zairakai/helpers/pkg/value"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{name: "simple text", input: "Hello World", expected: "hello-world"},
		{name: "with punctuation", input: "Hello, World!", expected: "hello-world"},
		{name: "with numbers", input: "Product 123", expected: "product-123"},
		{name: "multiple spaces", input: "Too    Many     Spaces", expected: "too-many-spaces"},
		{name: "tabs and newlines", input: "one\ttwo\nthree", expected: "one-two-three"},
		{name: "leading and trailing spaces", input: "  Trim Me  ", expected: "trim-me"},
		{name: "french accents", input: "Café Français", expected: "cafe-francais"},
		{name: "decomposed accent", input: "Cafe\u0301", expected: "cafe"},
		{name: "repeated hyphens", input: "Hello---World", expected: "hello-world"},
		{name: "spaced hyphen", input: "Hello - World", expected: "hello-world"},
		{name: "punctuation is removed not separated", input: "Price: $19.99", expected: "price-1999"},
		{name: "email like", input: "Test@Example.com", expected: "testexamplecom"},
		{name: "underscore is a word character", input: "snake_case words", expected: "snake_case-words"},
		{name: "leading and trailing hyphens", input: "- edges -", expected: "edges"},
		{name: "letters without decomposition are dropped", input: "Øre", expected: "re"},
		{name: "non latin script", input: "日本語 text", expected: "text"},
		{name: "only special characters", input: "!@#$%^&*()", expected: ""},
		{name: "empty string", input: "", expected: ""},
		{
			name:     "max length trims dangling hyphen",
			input:    "This is a very long title that should be truncated",
			opts:     []slug.Option{slug.MaxLength(20)},
			expected: "this-is-a-very-long",
		},
		{
			name:     "max length larger than slug",
			input:    "Short",
			opts:     []slug.Option{slug.MaxLength(50)},
			expected: "short",
		},
		{
			name:     "zero max length means no limit",
			input:    "No Limit Here",
			opts:     []slug.Option{slug.MaxLength(0)},
			expected: "no-limit-here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slug.Make(tt.input, tt.opts...)
			assert.Equal(t, tt.expected, got)
			if got != "" {
				assert.Regexp(t, slugPattern, got)
			}
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"Café Français",
		"Hello---World",
		"  - mixed _ input - ",
		"Price: $19.99",
		"",
	}

	for _, in := range inputs {
		once := slug.Make(in)
		assert.Equal(t, once, slug.Make(once), "input %q", in)
	}
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    value.Value
		expected string
	}{
		{name: "string", input: value.String("Hello World"), expected: "hello-world"},
		{name: "float", input: value.Float(123.45), expected: "12345"},
		{name: "integer", input: value.Int(42), expected: "42"},
		{name: "negative integer", input: value.Int(-7), expected: "7"},
		{name: "boolean true", input: value.Bool(true), expected: "true"},
		{name: "null", input: value.Null(), expected: ""},
		{name: "undefined", input: value.Undefined(), expected: ""},
		{name: "zero", input: value.Int(0), expected: ""},
		{name: "blank string", input: value.String("   "), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

func TestMakeWithSuffix(t *testing.T) {
	t.Run("appends suffix", func(t *testing.T) {
		got := slug.Make("Hello World", slug.WithSuffix(6))
		assert.Regexp(t, `^hello-world-[a-z0-9]{6}$`, got)
	})

	t.Run("suffix only for empty slug", func(t *testing.T) {
		got := slug.Make("!!!", slug.WithSuffix(4))
		assert.Regexp(t, `^[a-z0-9]{4}$`, got)
	})

	t.Run("shortens main part to fit max length", func(t *testing.T) {
		got := slug.Make("Hello World", slug.WithSuffix(6), slug.MaxLength(10))
		assert.Len(t, got, 10)
		assert.Regexp(t, `^hel-[a-z0-9]{6}$`, got)
	})

	t.Run("suffix longer than max length", func(t *testing.T) {
		got := slug.Make("Hello World", slug.WithSuffix(8), slug.MaxLength(5))
		assert.Regexp(t, `^[a-z0-9]{5}$`, got)
	})

	t.Run("suffixes differ between calls", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 20 {
			seen[slug.Make("post", slug.WithSuffix(8))] = struct{}{}
		}
		require.Greater(t, len(seen), 1)
	})
}

func BenchmarkMake(b *testing.B) {
	input := "The Quick Brown Fox Jumps Over the Lazy Dog: Café Édition"
	b.ReportAllocs()
	for b.Loop() {
		_ = slug.Make(input)
	}
}
