package app

import (
	"database/sql"
	"errors"

	"go-onboarding/internal/config"
	"go-onboarding/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// Infra memegang koneksi bersama yang dibuat sekali per proses.
type Infra struct {
	Config *config.Config
	Logger *zap.Logger
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
}

// Connect membuka database dan (opsional) Redis sesuai config.
func Connect(cfg *config.Config, logger *zap.Logger, withRedis bool) (*Infra, error) {
	gormDB, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	infra := &Infra{Config: cfg, Logger: logger, GormDB: gormDB, DB: sqlDB}

	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, connectRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("redis connection established", zap.String("addr", cfg.Redis.Addr))
		infra.Redis = rdb
	}

	return infra, nil
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.Driver == "sqlite" {
		return connection.OpenSQLite(cfg.Path)
	}
	return connection.ConnectGORMWithRetry(
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.Port,
		cfg.SSLMode,
		connectRetries,
	)
}

func (i *Infra) Close() error {
	var errs []error
	if i.Redis != nil {
		errs = append(errs, i.Redis.Close())
	}
	if i.DB != nil {
		errs = append(errs, i.DB.Close())
	}
	return errors.Join(errs...)
}
