// Command server runs the Trend Trails API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/trendtrails/server/internal/app"
	"github.com/trendtrails/server/internal/config"
	"github.com/trendtrails/server/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", map[string]interface{}{"error": err.Error()})
	}

	log := logger.New(cfg.Log, "trendtrails-server")
	logger.SetGlobalLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Startup failed", map[string]interface{}{"error": err.Error()})
	}

	if err := application.Run(ctx); err != nil {
		log.Fatal("Server exited with error", map[string]interface{}{"error": err.Error()})
	}
}
