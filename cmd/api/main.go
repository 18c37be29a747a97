package main

import (
	"context"
	"log"
	"time"

	"sigep-gateway/internal/core/cache"
	"sigep-gateway/internal/core/config"
	"sigep-gateway/internal/core/httpclient"
	"sigep-gateway/internal/core/logger"
	"sigep-gateway/internal/core/proxy"
	"sigep-gateway/internal/core/server"
	sigepadapter "sigep-gateway/internal/features/sigep/adapters"
	sigephandler "sigep-gateway/internal/features/sigep/handler"
	sigepservice "sigep-gateway/internal/features/sigep/service"
	trackingadapter "sigep-gateway/internal/features/tracking/adapters"
	trackinghandler "sigep-gateway/internal/features/tracking/handler"
	"sigep-gateway/internal/features/tracking/ports"
	trackingservice "sigep-gateway/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title SIGEP Gateway API
// @version 1.0
// @description HTTP front for the Correios SIGEP and SRO web services: labels, PLP batches and tracking.
// @contact.name API Support
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
	)

	proxySettings := proxy.FromConfig(cfg.Proxy)
	if proxySettings.HasProxy() {
		l.Info("Using upstream proxy", zap.String("proxy", proxySettings.String()))
	}

	// Initialize SIGEP Gateway
	creds, err := sigepadapter.CredentialsFromConfig(cfg.Sigep)
	if err != nil {
		l.Fatal("Invalid SIGEP credentials", zap.Error(err))
	}
	gateway := sigepadapter.NewAtendeClienteGateway(creds, cfg.Sigep.URL, httpclient.NewClient(cfg.Sigep.Timeout(), proxySettings))
	l.Info("SIGEP gateway configured",
		zap.String("endpoint", gateway.Endpoint()),
		zap.Bool("sandbox", creds.Sandbox),
	)

	// Initialize Batch Store and run Health Check
	redisAdapter, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisAdapter.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisAdapter.Ping(ctx); err != nil {
		cancel()
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	cancel()
	l.Info("Redis connection verified")

	batchRepo := sigepadapter.NewRedisBatchRepository(redisAdapter)

	// Initialize SIGEP Services & Handler
	labelSvc := sigepservice.NewSigepService(gateway)
	plpSvc := sigepservice.NewPLPService(gateway, batchRepo, creds)
	sigepHdl := sigephandler.NewSigepHandler(labelSvc, plpSvc)

	// Initialize Tracking Providers
	sroAdapter := trackingadapter.NewSROAdapter(cfg.SRO.User, cfg.SRO.Password, cfg.SRO.URL,
		httpclient.NewClient(cfg.SRO.Timeout(), proxySettings))

	trackingProviders := []ports.TrackingProvider{
		sroAdapter,
	}

	// Initialize Tracking Service & Handler
	trackingSvc := trackingservice.NewTrackingService(trackingProviders)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/services", sigepHdl.ListServices)
	srv.App.Get("/services/:code/availability", sigepHdl.CheckAvailability)
	srv.App.Get("/client", sigepHdl.GetClient)
	srv.App.Post("/labels", sigepHdl.IssueLabels)
	srv.App.Post("/plps", sigepHdl.CreateBatch)
	srv.App.Get("/plps/:id/xml", sigepHdl.GetBatchDocument)
	srv.App.Get("/tracking/:code", trackingHdl.GetTracking)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
