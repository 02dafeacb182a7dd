// Package main provides the CLI entrypoint for the charging station service.
// It wires subcommands (serve, migrate, import, user, jwt), loads configuration, and initializes logging.
package main

import (
	"chargemap/internal/config"
	"chargemap/pkg/logger"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCommand builds the CLI. The configuration is loaded once the config
// flag has been parsed and before any subcommand runs, so subcommands read cfg
// only inside their Run functions.
func rootCommand() *cobra.Command {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "chargemap",
		Short:         "Berlin charging station and postal code service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")

			loaded, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("could not load config file %s: %w", path, err)
			}
			*cfg = *loaded

			logger.Setup(cfg.Environment, cfg.LogLevel)
			logger.Debug(cmd.Context(), "config loaded", zap.String("path", path))

			return nil
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		importCommand(cfg),
		userCommand(cfg),
		JWTCommand(cfg),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := rootCommand().ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
