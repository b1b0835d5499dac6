package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-onboarding/internal/app"
	"go-onboarding/internal/config"
	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/shared/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	infra, err := app.Connect(cfg, log, false)
	if err != nil {
		log.Fatal("connect infrastructure failed", zap.Error(err))
	}
	defer infra.Close()

	if err := app.RunConsumer(ctx, infra); err != nil {
		log.Fatal("run consumer failed", zap.Error(err))
	}
}
