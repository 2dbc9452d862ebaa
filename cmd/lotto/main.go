package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lotto/internal/application"
	"lotto/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logx.NewLogger(os.Stdout, slog.LevelDebug)
	slog.SetDefault(log)

	if err := application.Run(ctx, log); err != nil {
		log.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called above
	}

	log.Info("application stopped")
}
