// Command jobs runs the periodic jobs once, for cron or manual use.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/app"
	"github.com/GlebRadaev/coursemarket/internal/config"
)

func main() {
	job := flag.String("job", "", "job to run, all jobs when empty")
	cfg := config.New()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := app.New()
	if err := a.Bootstrap(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("Can't start jobs")
	}
	defer a.Close()

	runner := a.Jobs()
	defer runner.Close()

	run := func() error { return runner.RunAll(ctx) }
	if *job != "" {
		run = func() error { return runner.Run(ctx, *job) }
	}
	if err := run(); err != nil {
		zap.L().Error("job failed",
			zap.String("job", *job),
			zap.String("available", strings.Join(runner.Names(), ",")),
			zap.Error(err),
		)
		runner.Close()
		a.Close()
		os.Exit(1)
	}
}
