package cli

import (
	"errors"

	"github.com/zairakai/helpers/pkg/logger"
	"github.com/zairakai/helpers/pkg/numfmt"
)

// EnvPrefix prefixes every environment variable read by Env.
const EnvPrefix = "HELPERS_"

// Env is the process configuration, read from HELPERS_* variables.
type Env struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Locale    string `env:"LOCALE" envDefault:"en-US"`
}

// Validate rejects values the logger or number formatter cannot use.
func (e *Env) Validate() error {
	var errs []error
	if _, err := logger.ParseLevel(e.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseFormat(e.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if _, err := numfmt.New(e.Locale); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
