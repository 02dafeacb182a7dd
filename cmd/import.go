package main

import (
	"chargemap/internal/config"
	"chargemap/internal/importer"
	"chargemap/pkg/logger"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const skipSource = "-"

// importCommand constructs the 'import' subcommand that loads the postal code
// and charging station CSV files. Postal codes are imported first since
// stations reference them.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports postal codes and charging stations from CSV files",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			postalCodesPath := sourcePath(cmd, "postal-codes", cfg.Import.PostalCodesPath)
			stationsPath := sourcePath(cmd, "stations", cfg.Import.StationsPath)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			imp := importer.New(strg)

			if postalCodesPath != "" {
				report, err := importFile(ctx, postalCodesPath, imp.ImportPostalCodes)
				if err != nil {
					logger.Fatal(ctx, "could not import postal codes", zap.String("path", postalCodesPath), zap.Error(err))
				}
				logger.Info(ctx, "postal code import finished", zap.String("path", postalCodesPath), zap.Any("report", report))
			}

			if stationsPath != "" {
				report, err := importFile(ctx, stationsPath, imp.ImportStations)
				if err != nil {
					logger.Fatal(ctx, "could not import stations", zap.String("path", stationsPath), zap.Error(err))
				}
				logger.Info(ctx, "station import finished", zap.String("path", stationsPath), zap.Any("report", report))
			}
		},
	}

	cmd.Flags().String("postal-codes", "", "Postal code CSV path, defaults to import.postalCodesPath, \"-\" skips it")
	cmd.Flags().String("stations", "", "Charging station CSV path, defaults to import.stationsPath, \"-\" skips it")

	return cmd
}

// sourcePath resolves a CSV flag against its configured default. An empty
// result means the dataset is skipped.
func sourcePath(cmd *cobra.Command, flag, configured string) string {
	path, _ := cmd.Flags().GetString(flag)
	switch path {
	case "":
		return configured
	case skipSource:
		return ""
	default:
		return path
	}
}

func importFile(
	ctx context.Context,
	path string,
	fn func(ctx context.Context, r io.Reader) (importer.Report, error),
) (importer.Report, error) {
	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		return importer.Report{}, err //nolint: wrapcheck
	}
	defer func() { _ = f.Close() }()

	return fn(ctx, f)
}
