// Package logger builds log/slog loggers for command-line tools.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(logger.Component("cli")),
//	)
//	log.Info("validated document", logger.Schema("user"), logger.Duration(elapsed))
//
// Records go to stderr in text form at info level unless configured
// otherwise. WithContextValue copies request-scoped context values into every
// record logged through the *Context methods.
//
// ParseLevel and ParseFormat turn user input, such as environment variables,
// into options.
package logger
