package main

import (
	"net/http"

	"dhanbridge/authentication"
	"dhanbridge/config"
	"dhanbridge/controllers"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func registerRoutes(mux *http.ServeMux, cfg config.Config, webhook *controllers.Webhook, redis *config.RedisClient, logger *zap.Logger) {
	// Alert ingestion
	mux.HandleFunc("/webhook", webhook.Handle)

	// Token rotation
	mux.HandleFunc("/auth/settoken", authentication.NewTokenHandler(cfg, redis, logger).SetToken)

	// Observability
	mux.Handle("/metrics", promhttp.Handler())
}
