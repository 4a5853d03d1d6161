// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads .env files, and
// github.com/caarlos0/env/v11, which maps variables onto struct fields through
// `env` tags:
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	    Locale    string `env:"LOCALE" envDefault:"en-US"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("HELPERS_")); err != nil {
//	    return err
//	}
//
// The default .env file is read at most once per process and is optional.
// Files passed with WithEnvFiles must exist. Values from files never override
// variables that are already set.
//
// Successful loads are cached per type and prefix; Reset clears the cache,
// which is mostly useful in tests. If the config type implements Validator,
// Validate runs before the value is cached and its error is joined with
// ErrInvalidConfig.
package config
