package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zairakai/helpers/pkg/check"
	"github.com/zairakai/helpers/pkg/logger"
	"github.com/zairakai/helpers/pkg/numfmt"
	"github.com/zairakai/helpers/pkg/sanitizer"
	"github.com/zairakai/helpers/pkg/slug"
	"github.com/zairakai/helpers/pkg/value"
)

func runSlug(_ context.Context, a *App, args []string) error {
	fs := a.flagSet("slug")
	maxLen := fs.Int("max", 0, "maximum slug length (0 = unlimited)")
	suffix := fs.Int("suffix", 0, "append a random suffix of this length")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := a.text(fs)
	if err != nil {
		return err
	}

	var opts []slug.Option
	if *maxLen > 0 {
		opts = append(opts, slug.MaxLength(*maxLen))
	}
	if *suffix > 0 {
		opts = append(opts, slug.WithSuffix(*suffix))
	}
	fmt.Fprintln(a.stdout, slug.Make(s, opts...))
	return nil
}

func runNormalize(_ context.Context, a *App, args []string) error {
	fs := a.flagSet("normalize")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.text(fs)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, sanitizer.Normalize(s))
	return nil
}

func runLimit(_ context.Context, a *App, args []string) error {
	fs := a.flagSet("limit")
	n := fs.Int("n", 100, "maximum number of characters")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.text(fs)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, sanitizer.StrLimit(value.String(s), *n))
	return nil
}

func runCapitalize(_ context.Context, a *App, args []string) error {
	fs := a.flagSet("capitalize")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.text(fs)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, sanitizer.Capitalize(value.String(s)))
	return nil
}

func runNumber(ctx context.Context, a *App, args []string) error {
	fs := a.flagSet("number")
	decimals := fs.Int("d", numfmt.DefaultDecimals, "number of fraction digits")
	locale := fs.String("locale", a.env.Locale, "BCP 47 locale")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := a.text(fs)
	if err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if !check.IsNumeric(value.String(s)) {
		return fmt.Errorf("number: %q is not numeric", s)
	}
	n, err := parseNumber(s)
	if err != nil {
		return fmt.Errorf("number: %w", err)
	}

	f, err := numfmt.New(*locale)
	if err != nil {
		return err
	}
	a.log.DebugContext(ctx, "formatting number", logger.Locale(f.Locale().String()))
	fmt.Fprintln(a.stdout, f.Format(n, *decimals))
	return nil
}

// parseNumber reads decimal text, falling back to 0x, 0o and 0b integers.
func parseNumber(s string) (float64, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, err
	}
	return float64(u), nil
}
