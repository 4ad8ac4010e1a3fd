package components

import (
	"context"
	"log/slog"
	"os"

	"mpesa-bridge/internal/config"
	"mpesa-bridge/internal/daraja"
	"mpesa-bridge/internal/ports"
	"mpesa-bridge/internal/service"
	"mpesa-bridge/pkg/logger"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type Components struct {
	HttpServer *ports.Server
	Gateway    *daraja.Client
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	gateway := daraja.NewClient(cfg.Daraja, logger)
	results := service.NewService(logger)

	httpServer := ports.NewServer(ctx, cfg, logger, gateway, results)

	return &Components{
		HttpServer: httpServer,
		Gateway:    gateway,
	}, nil
}

func (c *Components) Shutdown() error {
	return c.HttpServer.Stop()
}

func SetupLogger(cfg config.Config) *slog.Logger {
	log := &slog.Logger{}

	switch cfg.Env {
	case envLocal:
		log = logger.SetupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
