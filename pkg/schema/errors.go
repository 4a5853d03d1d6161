package schema

import "errors"

var (
	ErrCompile           = errors.New("schema: compile failed")
	ErrDuplicateSchema   = errors.New("schema: already registered")
	ErrInvalidInput      = errors.New("schema: input is not representable as JSON")
	ErrUnsupportedFormat = errors.New("schema: unsupported document format")
	ErrDecode            = errors.New("schema: decode failed")
)
