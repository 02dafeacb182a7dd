package main

import (
	"chargemap/internal/config"
	"chargemap/pkg/cache"
	"chargemap/pkg/logger"
	"chargemap/pkg/storage/postgres"
	"chargemap/pkg/token"
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const ephemeralKeyBits = 2048

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage",
			zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.DatabaseName), zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getRedis connects to the postal code cache. It returns a nil client when no
// address is configured.
func getRedis(ctx context.Context, cfg *config.Config) (*redis.Client, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis address is not configured, postal code cache disabled")

		return nil, func() {}
	}

	client, err := cache.Connect(ctx, cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.Redis.DialTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}

	return client, func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// getKeys returns the configured RSA key pair. Without a configured private
// key an ephemeral pair is generated, so tokens do not survive a restart.
func getKeys(ctx context.Context, cfg *config.Config) (string, string) {
	if cfg.JWT.PrivateKey != "" {
		if cfg.JWT.PublicKey == "" {
			logger.Fatal(ctx, "jwt public key is required when a private key is configured")
		}

		return cfg.JWT.PrivateKey, cfg.JWT.PublicKey
	}

	logger.Warn(ctx, "jwt keys are not configured, generating an ephemeral key pair")
	privatePEM, publicPEM, err := token.GenerateKeyPair(ephemeralKeyBits)
	if err != nil {
		logger.Fatal(ctx, "could not generate RSA key pair", zap.Error(err))
	}

	return privatePEM, publicPEM
}
