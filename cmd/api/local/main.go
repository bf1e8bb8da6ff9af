//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/address-cleanser/address-cleanser/internal/config"
	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/logger"
	"github.com/address-cleanser/address-cleanser/internal/server"
	"go.uber.org/zap"
)

// @title           Address Cleanser API
// @version         1.0.12
// @description     REST API for parsing, validating, and formatting US addresses

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       cfg.Log.Level,
		Stage:       cfg.Stage,
		EnableJSON:  cfg.Stage == constants.ProdEnvironment,
		EnableColor: cfg.Stage != constants.ProdEnvironment,
		File:        cfg.Log.File,
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := server.New(cfg)
	defer s.Close()

	if err := s.Run(ctx); err != nil {
		logger.Error("Error starting server", zap.Error(err))
		return err
	}
	return nil
}
