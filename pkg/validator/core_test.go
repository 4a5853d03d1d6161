package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zairakai/helpers/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "email", Message: "is required"},
			{Field: "password", Message: "too short"},
		}
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "password", Message: "too short", Rule: "min_length"},
		{Field: "email", Message: "is required", Rule: "required"},
		{Field: "password", Message: "missing digit", Rule: "pattern"},
	}

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Len(t, errs.GetErrors("email"), 1)
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.Equal(t, []string{
		"password: too short",
		"email: is required",
		"password: missing digit",
	}, errs.Messages())
	assert.False(t, errs.IsEmpty())
}

func TestValidationError_String(t *testing.T) {
	assert.Equal(t, "root failure", validator.ValidationError{Message: "root failure"}.String())
	assert.Equal(t, "age: too low", validator.ValidationError{Field: "age", Message: "too low"}.String())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Ada"),
			validator.Min("age", 36, 18),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "  "),
			validator.Email("email", "nope"),
			validator.Min("age", 12, 18),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"name", "email", "age"}, verrs.Fields())
		assert.Equal(t, "required", verrs[0].Rule)
		assert.Equal(t, "email", verrs[1].Rule)
		assert.Equal(t, "min", verrs[2].Rule)
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestErrorMatching(t *testing.T) {
	err := validator.Apply(validator.Required("name", ""))
	wrapped := fmt.Errorf("create user: %w", err)

	assert.True(t, errors.Is(wrapped, validator.ErrValidationFailed))
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)

	plain := errors.New("boom")
	assert.False(t, errors.Is(plain, validator.ErrValidationFailed))
	assert.False(t, validator.IsValidationError(plain))
	assert.Nil(t, validator.ExtractValidationErrors(plain))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}
