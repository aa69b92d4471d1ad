package main

import (
	"context"
	"embed"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/jmholzer/outvoice-api/config"
	"github.com/jmholzer/outvoice-api/postgres"
	"github.com/jmholzer/outvoice-api/server"
	"github.com/jmholzer/outvoice-api/smtp"
	"github.com/lmittmann/tint"
)

//go:embed config.toml
var configFS embed.FS

func main() {
	cfg, err := config.Load(configFS)
	if err != nil {
		slog.Error("Could not load the configuration", "error", err)
		os.Exit(1)
	}

	logger := createLogger(cfg)

	if cfg.Sentry.Enabled {
		initSentry(logger, cfg)
	}

	ctx := context.Background()

	db, err := postgres.NewDB(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("Could not initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Error("Could not migrate database", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, postgres.NewAddressStore(db)).
		WithLogger(logger)

	if cfg.Email.Host != "" {
		mailer, err := smtp.NewEmailService(cfg.Email, cfg.App.CompanyName)
		if err != nil {
			logger.Error("Could not initialize mailer", "error", err)
			os.Exit(1)
		}
		srv.WithMailer(mailer)
	} else {
		logger.Info("No smtp host configured, invoice e-mail is disabled")
	}

	if err := srv.Start(ctx); err != nil {
		logger.Error("Server stopped with an error", "error", err)
		os.Exit(1)
	}
}

func createLogger(cfg *config.Config) *slog.Logger {
	var logger *slog.Logger
	switch cfg.Log.Format {
	case config.LogFormatPlaintext:
		logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:     cfg.Log.Level.ToSlog(),
			AddSource: cfg.Log.Verbose && cfg.App.Debug,
		}))
	default:
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     cfg.Log.Level.ToSlog(),
			AddSource: cfg.Log.Verbose && cfg.App.Debug,
		}))
	}
	slog.SetDefault(logger)
	return logger
}

func initSentry(logger *slog.Logger, cfg *config.Config) {
	logger.Debug("Trying to initialise Sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:                cfg.Sentry.DSN,
		Debug:              cfg.App.Debug,
		AttachStacktrace:   true,
		SampleRate:         cfg.Sentry.SampleRate,
		EnableTracing:      true,
		TracesSampleRate:   cfg.Sentry.TracesRate,
		ProfilesSampleRate: cfg.Sentry.ProfilesRate,
		ServerName:         cfg.App.Name,
		Release:            cfg.App.Version,
		Environment:        string(cfg.App.Env),
	}); err != nil {
		logger.Error("Sentry initialization failed", "error", err)
	} else {
		logger.Debug("Sentry initialised")
	}
}
