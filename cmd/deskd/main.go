package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/meridianfx/deskd/internal/cache"
	"github.com/meridianfx/deskd/internal/config"
	"github.com/meridianfx/deskd/internal/dataapi"
	"github.com/meridianfx/deskd/internal/pricer"
	"github.com/meridianfx/deskd/internal/risk"
	"github.com/meridianfx/deskd/internal/server"
	"github.com/meridianfx/deskd/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New("deskd", cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// Wire clients and services
	dataClient := dataapi.NewClient(cfg.DataAPI, zapLogger)
	pricerClient := pricer.NewClient(cfg.Pricer, zapLogger)
	refdata := cache.New(cfg.Redis, dataClient, zapLogger)
	defer refdata.Close()
	riskSvc := risk.NewService(dataClient, pricerClient, zapLogger)

	srv := server.NewServer(cfg.Server, zapLogger, dataClient, refdata, riskSvc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLogger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLogger.Fatal("http server failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
