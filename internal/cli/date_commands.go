package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/zairakai/helpers/pkg/datetime"
)

func runFromNow(_ context.Context, a *App, args []string) error {
	fs := a.flagSet("fromnow")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.text(fs)
	if err != nil {
		return err
	}

	t, err := a.cal.Parse(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, a.cal.FromNow(t))
	return nil
}

func runBetween(_ context.Context, a *App, args []string) error {
	fs := a.flagSet("between")
	unitName := fs.String("unit", "day", "comparison granularity: second, minute, hour, day, week, month or year")
	inclName := fs.String("incl", string(datetime.Inclusive), `bound inclusivity: "[]", "()", "[)" or "(]"`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("between: want DATE START END, got %d arguments", fs.NArg())
	}

	unit, err := datetime.ParseUnit(*unitName)
	if err != nil {
		return err
	}
	incl, err := datetime.ParseInclusivity(*inclName)
	if err != nil {
		return err
	}

	var dates [3]time.Time
	for i := range dates {
		if dates[i], err = a.cal.Parse(fs.Arg(i)); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.stdout, a.cal.IsBetween(dates[0], dates[1], dates[2], unit, incl))
	return nil
}
