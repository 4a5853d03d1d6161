package validator

import (
	"time"

	"github.com/zairakai/helpers/pkg/datetime"
)

func PastDate(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return datetime.IsPast(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "date must be in the past",
			Rule:    "date_past",
		},
	}
}

func FutureDate(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return datetime.IsFuture(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "date must be in the future",
			Rule:    "date_future",
		},
	}
}

// DateBetween checks value against an inclusive day range.
func DateBetween(field string, value, start, end time.Time) Rule {
	return Rule{
		Check: func() bool {
			return datetime.IsBetween(value, start, end, datetime.Day, datetime.Inclusive)
		},
		Error: ValidationError{
			Field:   field,
			Message: "date must be between " + start.Format(time.DateOnly) + " and " + end.Format(time.DateOnly),
			Rule:    "date_between",
		},
	}
}
