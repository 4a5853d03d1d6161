package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/zairakai/helpers/pkg/validator"
	"github.com/zairakai/helpers/pkg/value"
)

// Result is the non-failing outcome of SafeValidate.
type Result[T any] struct {
	Success bool     `json:"success"`
	Data    T        `json:"data"`
	Errors  []string `json:"errors,omitempty"`
}

// Validate checks data against s and decodes it into T.
//
// data may be any JSON-marshalable Go value, a value.Value, or raw JSON as
// []byte or json.RawMessage. On schema failure the error is
// validator.ValidationErrors with one entry per failing leaf; Field holds the
// dotted path of the offending value ("pagination.perPage", "data.0.email").
func Validate[T any](s *Schema, data any) (T, error) {
	var out T

	doc, err := s.validate(data)
	if err != nil {
		return out, err
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out, nil
}

// SafeValidate is Validate without an error return. Each failure is reported
// as "path: message".
func SafeValidate[T any](s *Schema, data any) Result[T] {
	out, err := Validate[T](s, data)
	if err == nil {
		return Result[T]{Success: true, Data: out}
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return Result[T]{Errors: verrs.Messages()}
	}
	return Result[T]{Errors: []string{err.Error()}}
}

func (s *Schema) validate(data any) (any, error) {
	doc, err := toDocument(data)
	if err != nil {
		return nil, err
	}
	applyDefaults(s.compiled, doc, 0)

	if err := s.compiled.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, err
		}
		var errs validator.ValidationErrors
		collectLeaves(ve, &errs)
		return nil, errs
	}
	return doc, nil
}

// toDocument converts data into the generic form the validator expects:
// map[string]any, []any, string, bool, json.Number or nil.
func toDocument(data any) (any, error) {
	switch d := data.(type) {
	case json.RawMessage:
		return unmarshalJSON(d)
	case []byte:
		return unmarshalJSON(d)
	case value.Value:
		data = d.Native()
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return unmarshalJSON(b)
}

func unmarshalJSON(b []byte) (any, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return doc, nil
}

const maxDefaultsDepth = 32

// applyDefaults fills absent object properties from their "default" keyword.
func applyDefaults(s *jsonschema.Schema, doc any, depth int) {
	s = resolve(s)
	if s == nil || depth > maxDefaultsDepth {
		return
	}

	switch d := doc.(type) {
	case map[string]any:
		for name, prop := range s.Properties {
			v, ok := d[name]
			if !ok {
				if p := resolve(prop); p != nil && p.Default != nil {
					d[name] = p.Default
				}
				continue
			}
			applyDefaults(prop, v, depth+1)
		}
	case []any:
		items := itemsOf(s)
		for _, v := range d {
			applyDefaults(items, v, depth+1)
		}
	}
}

func resolve(s *jsonschema.Schema) *jsonschema.Schema {
	for range maxDefaultsDepth {
		if s == nil || s.Ref == nil {
			return s
		}
		s = s.Ref
	}
	return s
}

func itemsOf(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Items2020 != nil {
		return s.Items2020
	}
	if items, ok := s.Items.(*jsonschema.Schema); ok {
		return items
	}
	return nil
}

func collectLeaves(ve *jsonschema.ValidationError, errs *validator.ValidationErrors) {
	if len(ve.Causes) == 0 {
		errs.Add(validator.ValidationError{
			Field:   pointerToPath(ve.InstanceLocation),
			Message: ve.Message,
			Rule:    lastSegment(ve.KeywordLocation),
		})
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, errs)
	}
}

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// pointerToPath turns a JSON pointer such as "/data/0/email" into "data.0.email".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	parts := strings.Split(ptr, "/")
	for i, p := range parts {
		parts[i] = pointerUnescaper.Replace(p)
	}
	return strings.Join(parts, ".")
}

func lastSegment(ptr string) string {
	if i := strings.LastIndex(ptr, "/"); i >= 0 {
		return ptr[i+1:]
	}
	return ptr
}
