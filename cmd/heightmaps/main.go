// Package main is the entry point for the heightmap terrain viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/heightmaps/internal/app"
	"github.com/Faultbox/heightmaps/internal/config"
	"github.com/Faultbox/heightmaps/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", path)
		return 0
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Close()

	logger.Info("=== Height Maps ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create and run the viewer
	v, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return 1
	}
	defer v.Close()

	if err := v.Run(ctx); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
