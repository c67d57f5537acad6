package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"contentguard/config"
	"contentguard/server"
	"contentguard/utils"

	"go.uber.org/zap"
)

func main() {
	configPath := os.Getenv("CONTENTGUARD_CONFIG")
	if configPath == "" {
		configPath = "./config/config.prod.yml"
	}

	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Log, false)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
