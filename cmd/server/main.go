package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"casino-platform/internal/app"
	"casino-platform/internal/config"
	"casino-platform/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	server, err := app.NewServer(cfg, zl)
	if err != nil {
		zl.Fatal("startup failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
