package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zairakai/helpers/internal/cli"
	"github.com/zairakai/helpers/pkg/datetime"
	"github.com/zairakai/helpers/pkg/logger"
)

var ref = time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)

type harness struct {
	app    *cli.App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(stdin string) *harness {
	h := &harness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	h.app = cli.New(
		cli.WithIO(strings.NewReader(stdin), h.stdout, h.stderr),
		cli.WithLogger(logger.Discard()),
		cli.WithCalendar(datetime.New(
			datetime.WithClock(datetime.FixedClock(ref)),
			datetime.WithLocation(time.UTC),
		)),
	)
	return h
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	return h.app.Run(context.Background(), args)
}

func TestRun_TextCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		expected string
	}{
		{name: "slug from args", args: []string{"slug", "Café", "Français"}, expected: "cafe-francais"},
		{name: "slug from stdin", args: []string{"slug"}, stdin: "Hello---World\n", expected: "hello-world"},
		{name: "slug max length", args: []string{"slug", "-max", "9", "Hello Big World"}, expected: "hello-big"},
		{name: "normalize", args: []string{"normalize", "  ÉCOLE  "}, expected: "ecole"},
		{name: "limit", args: []string{"limit", "-n", "5", "Hello World"}, expected: "Hello…"},
		{name: "limit short text", args: []string{"limit", "-n", "10", "Short"}, expected: "Short"},
		{name: "capitalize", args: []string{"capitalize", "hELLO"}, expected: "Hello"},
		{name: "number default locale", args: []string{"number", "1234.5"}, expected: "1,234.50"},
		{name: "number german", args: []string{"number", "-d", "1", "-locale", "de-DE", "1234.56"}, expected: "1.234,6"},
		{name: "number hex", args: []string{"number", "-d", "0", "0x10"}, expected: "16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.stdin)
			require.NoError(t, h.run(t, tt.args...))
			assert.Equal(t, tt.expected+"\n", h.stdout.String())
		})
	}
}

func TestRun_Number_Invalid(t *testing.T) {
	h := newHarness("")
	err := h.run(t, "number", "12abc")
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))

	err = newHarness("").run(t, "number", "-locale", "not a locale!", "12")
	require.Error(t, err)
}

func TestRun_Inspect(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		h := newHarness("")
		require.NoError(t, h.run(t, "inspect", `"  "`))
		out := h.stdout.String()
		assert.Regexp(t, `kind\s+string`, out)
		assert.Regexp(t, `empty\s+true`, out)
		assert.Regexp(t, `blank\s+true`, out)
	})

	t.Run("json report", func(t *testing.T) {
		h := newHarness("12.5")
		require.NoError(t, h.run(t, "inspect", "-json"))
		assert.JSONEq(t, `{
			"kind": "float", "empty": false, "blank": false, "numeric": true,
			"integer": false, "float": true, "email": false, "url": false, "uuid": false
		}`, h.stdout.String())
	})

	t.Run("invalid json", func(t *testing.T) {
		assert.Error(t, newHarness("").run(t, "inspect", "{"))
	})
}

func TestRun_Validate(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		return p
	}

	t.Run("valid yaml file", func(t *testing.T) {
		p := write("config.yaml", "apiUrl: https://api.example.com\n")
		h := newHarness("")
		require.NoError(t, h.run(t, "validate", "-schema", "config", p))
		assert.Equal(t, "valid\n", h.stdout.String())
	})

	t.Run("invalid toml file", func(t *testing.T) {
		p := write("config.toml", "apiUrl = \"nope\"\nretries = -1\n")
		h := newHarness("")
		err := h.run(t, "validate", "-schema", "config", p)
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Contains(t, h.stdout.String(), "apiUrl: ")
		assert.Contains(t, h.stdout.String(), "retries: ")
	})

	t.Run("stdin with explicit format", func(t *testing.T) {
		h := newHarness(`{"total": 3, "lastPage": 1}`)
		require.NoError(t, h.run(t, "validate", "-schema", "pagination", "-format", "json", "-"))
	})

	t.Run("schema file", func(t *testing.T) {
		sp := write("tag.json", `{"type": "object", "required": ["tag"], "properties": {"tag": {"type": "string"}}}`)
		h := newHarness(`{"tag": 3}`)
		err := h.run(t, "validate", "-schema", sp)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("unknown schema", func(t *testing.T) {
		err := newHarness("{}").run(t, "validate", "-schema", "nope")
		require.Error(t, err)
		assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	})

	t.Run("missing schema flag", func(t *testing.T) {
		assert.Error(t, newHarness("{}").run(t, "validate"))
	})
}

func TestRun_DateCommands(t *testing.T) {
	t.Run("fromnow", func(t *testing.T) {
		h := newHarness("")
		require.NoError(t, h.run(t, "fromnow", "2023-06-15T10:00:00Z"))
		assert.Equal(t, "2 hours ago\n", h.stdout.String())
	})

	t.Run("fromnow invalid", func(t *testing.T) {
		err := newHarness("").run(t, "fromnow", "someday")
		assert.ErrorIs(t, err, datetime.ErrInvalidDate)
	})

	t.Run("between", func(t *testing.T) {
		h := newHarness("")
		require.NoError(t, h.run(t, "between", "-incl", "[)", "2023-06-15", "2023-06-01", "2023-06-15"))
		assert.Equal(t, "false\n", h.stdout.String())
	})

	t.Run("between wrong arity", func(t *testing.T) {
		assert.Error(t, newHarness("").run(t, "between", "2023-06-15"))
	})

	t.Run("between bad unit", func(t *testing.T) {
		err := newHarness("").run(t, "between", "-unit", "fortnight", "2023-06-15", "2023-06-01", "2023-06-30")
		assert.ErrorIs(t, err, datetime.ErrInvalidUnit)
	})
}

func TestRun_Dispatch(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		h := newHarness("")
		require.NoError(t, h.run(t, "help"))
		assert.Contains(t, h.stdout.String(), "Usage: helpers")
		assert.Contains(t, h.stdout.String(), "validate")
	})

	t.Run("version", func(t *testing.T) {
		h := newHarness("")
		require.NoError(t, h.run(t, "version"))
		assert.Equal(t, cli.Version+"\n", h.stdout.String())
	})

	t.Run("unknown command", func(t *testing.T) {
		err := newHarness("").run(t, "frobnicate")
		assert.ErrorIs(t, err, cli.ErrUnknownCommand)
	})

	t.Run("no command", func(t *testing.T) {
		err := newHarness("").run(t)
		assert.ErrorIs(t, err, cli.ErrUnknownCommand)
	})

	t.Run("command help", func(t *testing.T) {
		h := newHarness("")
		require.NoError(t, h.run(t, "limit", "-h"))
		assert.Contains(t, h.stderr.String(), "-n")
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitOK, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitError, cli.ExitCode(errors.New("boom")))
}

func TestEnv_Validate(t *testing.T) {
	good := cli.Env{LogLevel: "debug", LogFormat: "json", Locale: "fr-FR"}
	assert.NoError(t, good.Validate())

	bad := cli.Env{LogLevel: "loud", LogFormat: "xml", Locale: "not a locale!"}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}
