package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/xoso/internal/app"
)

//	@title			Xoso API
//	@version		1.0
//	@description	Vietnamese lottery ticket tracking and settlement service

// @host		localhost:8080
// @BasePath	/
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run starts the service and blocks until SIGINT or SIGTERM. Start failures
// go through zerolog because the zap logger may not be configured yet.
func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	xoso := app.New()
	if err := xoso.Start(ctx); err != nil {
		log.Error().Err(err).Msg("Can't start xoso")
		zap.L().Error("Can't start xoso", zap.Error(err))
		return err
	}
	zap.L().Info("Xoso started, waiting for shutdown signal")

	if err := xoso.Wait(ctx, cancel); err != nil {
		zap.L().Error("Xoso stopped with errors", zap.Error(err))
		return err
	}

	zap.L().Info("Xoso stopped cleanly")
	return nil
}
