package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/namefreezers/weather-console/internal/config"
	"github.com/namefreezers/weather-console/internal/console"
)

func main() {
	logger, err := config.NewLogger(os.Getenv("LOG_LEVEL"), "warn")
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console.NewCalculatorLoop(os.Stdin, os.Stdout, logger).Run(ctx)
}
