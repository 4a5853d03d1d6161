package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zairakai/helpers/pkg/logger"
)

func TestAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{name: "component", attr: logger.Component("cli"), key: "component", want: "cli"},
		{name: "command", attr: logger.Command("slug"), key: "command", want: "slug"},
		{name: "schema", attr: logger.Schema("user"), key: "schema", want: "user"},
		{name: "locale", attr: logger.Locale("fr-FR"), key: "locale", want: "fr-FR"},
		{name: "duration", attr: logger.Duration(1500 * time.Microsecond), key: "duration_ms", want: 1.5},
		{name: "count", attr: logger.Count(3), key: "count", want: int64(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}
