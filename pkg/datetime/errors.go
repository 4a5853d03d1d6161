package datetime

import "errors"

var (
	ErrInvalidDate        = errors.New("datetime: invalid date")
	ErrInvalidInclusivity = errors.New("datetime: invalid inclusivity")
	ErrInvalidUnit        = errors.New("datetime: invalid unit")
)
