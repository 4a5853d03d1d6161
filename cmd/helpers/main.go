package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zairakai/helpers/internal/cli"
	"github.com/zairakai/helpers/pkg/config"
	"github.com/zairakai/helpers/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var env cli.Env
	if err := config.Load(&env, config.WithPrefix(cli.EnvPrefix)); err != nil {
		fmt.Fprintln(os.Stderr, "helpers:", err)
		os.Exit(cli.ExitError)
	}

	app := cli.New(cli.WithEnv(env))
	err := app.Run(ctx, os.Args[1:])
	if err != nil {
		app.Logger().ErrorContext(ctx, "command failed", logger.Error(err))
	}
	stop()
	os.Exit(cli.ExitCode(err))
}
