package main

import (
	"context"
	"log"
	"time"

	"shipment-risk-assistant/internal/core/cache"
	"shipment-risk-assistant/internal/core/config"
	"shipment-risk-assistant/internal/core/logger"
	"shipment-risk-assistant/internal/core/server"
	assistantadapter "shipment-risk-assistant/internal/features/assistant/adapters"
	assistanthandler "shipment-risk-assistant/internal/features/assistant/handler"
	assistantservice "shipment-risk-assistant/internal/features/assistant/service"
	predictionadapter "shipment-risk-assistant/internal/features/prediction/adapters"
	predictionservice "shipment-risk-assistant/internal/features/prediction/service"
	shipmentadapter "shipment-risk-assistant/internal/features/shipments/adapters"

	"go.uber.org/zap"
)

// @title Shipment Risk Assistant API
// @version 1.0
// @description This API answers natural-language questions about shipments and their SLA breach risk.
// @contact.name API Support
// @contact.email support@shipmentriskassistant.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("mock_predictions", cfg.Prediction.UseMock),
	)

	timeout := time.Duration(cfg.ExternalTimeoutSeconds) * time.Second

	// Intent caching is optional; without Redis every message is classified
	// fresh. Shipment data is never cached either way.
	var intents cache.Cache
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Failed to configure Redis cache", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			l.Warn("Redis unreachable, intent caching disabled", zap.Error(err))
		} else {
			intents = redisCache
			defer redisCache.Close()
		}
		cancel()
	}

	completion := assistantadapter.NewCompletionAdapter(
		cfg.Completion.Endpoint,
		cfg.Completion.APIKey,
		cfg.Completion.Model,
		timeout,
	)
	shipmentStore := shipmentadapter.NewShipmentAPIAdapter(cfg.ShipmentAPI.URL, timeout)

	mlEndpoint := predictionadapter.NewMLEndpointAdapter(cfg.Prediction.Endpoint, cfg.Prediction.APIKey, timeout)
	mockSource := predictionadapter.NewMockFileSource(cfg.Prediction.MockPath)
	predictor := predictionservice.NewSlaPredictor(mlEndpoint, mockSource, cfg.Prediction.UseMock)

	pipeline := assistantservice.NewPipeline(
		completion,
		shipmentStore,
		predictor,
		intents,
		time.Duration(cfg.Cache.IntentTTLSeconds)*time.Second,
	)
	assistantHdl := assistanthandler.NewAssistantHandler(pipeline)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/assistant/query", assistantHdl.Query)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
