package main

import (
	"chargemap/internal/account"
	"chargemap/internal/api"
	"chargemap/internal/api/handler/v1handler"
	"chargemap/internal/config"
	"chargemap/internal/station"
	"chargemap/pkg/cache"
	"chargemap/pkg/logger"
	"chargemap/pkg/password"
	"chargemap/pkg/token"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps, publicKey string) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg, publicKey))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			var postalCodeCache station.PostalCodeCache
			client, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()
			if client != nil {
				postalCodeCache = cache.NewPostalCodes(client, cfg.Redis.PostalCodeTTL)
			}

			privateKey, publicKey := getKeys(ctx, cfg)
			issuer, err := token.NewIssuerFromPEM(privateKey, cfg.JWT.TTL)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Stations: station.New(strg, postalCodeCache),
					Accounts: account.New(strg, password.NewBcrypt(cfg.Password.BcryptCost), issuer),
				},
			}, publicKey)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
