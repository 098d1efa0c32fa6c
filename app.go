package main

import (
	"fmt"
	"net/http"

	"dhanbridge/config"
	"dhanbridge/controllers"
	"dhanbridge/orders"
	"dhanbridge/quotes"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func handler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "dhanbridge is up")
}

func main() {
	// .env is optional; real deployments inject the environment directly
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	// one redis client for the whole process, shared by the token source
	// and the rotation endpoint
	var redisClient *config.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = config.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Fatal("redis init failed", zap.Error(err))
		}
	}
	tokens := config.NewTokenSource(cfg, redisClient)

	webhook := controllers.NewWebhook(
		cfg,
		quotes.NewClient(cfg, tokens, logger),
		orders.NewForwarder(cfg, tokens, logger),
		logger,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handler)
	registerRoutes(mux, cfg, webhook, redisClient, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
