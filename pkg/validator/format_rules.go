package validator

import (
	"regexp"

	"github.com/zairakai/helpers/pkg/check"
	"github.com/zairakai/helpers/pkg/value"
)

// E.164: optional plus, no leading zero, up to 15 digits.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

func Email(field, v string) Rule {
	return Rule{
		Check: func() bool {
			return check.IsEmail(value.String(v))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Rule:    "email",
		},
	}
}

func URL(field, v string) Rule {
	return Rule{
		Check: func() bool {
			return check.IsURL(value.String(v))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL",
			Rule:    "url",
		},
	}
}

func Phone(field, v string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(v)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number in international format",
			Rule:    "phone",
		},
	}
}

func UUID(field, v string) Rule {
	return Rule{
		Check: func() bool {
			return check.IsUUID(value.String(v))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid UUID",
			Rule:    "uuid",
		},
	}
}

// Numeric accepts numbers and strings that parse as a finite number in full.
func Numeric(field string, v value.Value) Rule {
	return Rule{
		Check: func() bool {
			return check.IsNumeric(v)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be numeric",
			Rule:    "numeric",
		},
	}
}

// Filled fails for any value check.IsBlank reports as blank.
func Filled(field string, v value.Value) Rule {
	return Rule{
		Check: func() bool {
			return check.IsPresent(v)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not be blank",
			Rule:    "filled",
		},
	}
}
