package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zairakai/helpers/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Run("runs transforms in order", func(t *testing.T) {
		got := sanitizer.Apply("  Crème  ",
			sanitizer.Trim,
			sanitizer.FoldDiacritics,
			strings.ToUpper,
		)
		assert.Equal(t, "CREME", got)
	})

	t.Run("returns input without transforms", func(t *testing.T) {
		assert.Equal(t, "as is", sanitizer.Apply("as is"))
	})

	t.Run("works with non-string types", func(t *testing.T) {
		double := func(n int) int { return n * 2 }
		inc := func(n int) int { return n + 1 }
		assert.Equal(t, 7, sanitizer.Apply(3, double, inc))
	})
}

func TestCompose(t *testing.T) {
	clean := sanitizer.Compose(
		sanitizer.Trim,
		sanitizer.NormalizeWhitespace,
		sanitizer.FoldDiacritics,
	)

	assert.Equal(t, "Creme brulee", clean("  Crème   brûlée\n"))
	assert.Equal(t, "", clean(""))
}
