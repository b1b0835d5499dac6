package main

import (
	"context"

	"go-onboarding/internal/app"
	"go-onboarding/internal/bootstrap"
	"go-onboarding/internal/config"
	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/shared/logger"
	"go-onboarding/internal/shared/tracing"

	"github.com/gin-gonic/gin"
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

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	apperror.Init()

	shutdownTracing, err := tracing.InitTracing(context.Background(), cfg.Tracing, cfg.AppEnv, log)
	if err != nil {
		log.Fatal("init tracing failed", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("shutdown tracing failed", zap.Error(err))
		}
	}()

	infra, err := app.Connect(cfg, log, true)
	if err != nil {
		log.Fatal("connect infrastructure failed", zap.Error(err))
	}
	defer infra.Close()

	if cfg.Database.AutoMigrate {
		if err := app.Migrate(infra); err != nil {
			log.Fatal("migrate database failed", zap.Error(err))
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// build dependency + routes
	auditLogger, err := app.BuildApp(r, infra)
	if err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}

	if err := bootstrap.StartHTTPServer(r, bootstrap.DefaultServerConfig(cfg.Port), auditLogger, log); err != nil {
		log.Error("http server stopped", zap.Error(err))
	}
}
