package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "mpesa-bridge/docs"
	"mpesa-bridge/internal/components"
	"mpesa-bridge/internal/config"

	"golang.org/x/sync/errgroup"
)

// @title Mpesa Bridge API
// @version 1.0
// @description HTTP bridge between a merchant application and the Daraja mobile-money gateway (B2C disbursements and C2B collections)

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Println(err.Error())
		return
	}

	logger := components.SetupLogger(*cfg)

	eg, ctx := errgroup.WithContext(context.Background())

	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, os.Interrupt, syscall.SIGTERM)

	comps, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("Bad configuration", slog.String("error", err.Error()))
		return
	}

	eg.Go(func() error {
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("failed to run HttpServer", slog.String("error", err.Error()))
			return err
		}
		return nil
	})

	<-sigQuit
	logger.Info("The program is exiting")

	if err := comps.Shutdown(); err != nil {
		logger.Error("Error while shutting down the components", slog.String("error", err.Error()))
	}

	if err := eg.Wait(); err != nil {
		return
	}

	logger.Info("The program has exited")
}
