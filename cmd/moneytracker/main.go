package main

import (
	"context"
	"os"

	"github.com/3Finn1Light1/Money-Manager/internal/cli"
	"github.com/3Finn1Light1/Money-Manager/internal/core"
	"github.com/3Finn1Light1/Money-Manager/internal/export"
	applog "github.com/3Finn1Light1/Money-Manager/internal/log"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()

	logger := cli.SetupLogger("info")
	cfg := cli.LoadAndValidateConfig(logger)
	// Re-level once the configured level is known.
	logger = cli.SetupLogger(cfg.LogLevel)

	repo := cli.InitSQLite(logger, cfg.DBPath)
	defer repo.Close()

	logger.Info("Starting moneytracker",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldPath, cfg.DBPath)

	ledger := core.NewLedger()
	exporter := export.NewExporter(cfg.ExportPath,
		logger.Logger.With(applog.FieldComponent, applog.ComponentExport))

	app := cli.NewApp(ledger, repo, exporter, os.Stdin, os.Stdout, logger)
	app.Run(context.Background())

	logger.Info("Stopped moneytracker", applog.FieldOperation, applog.OpShutdown)
}
