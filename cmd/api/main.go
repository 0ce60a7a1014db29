// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/agrisaarthi/assistant-platform/internal/assistant"
	"github.com/agrisaarthi/assistant-platform/internal/config"
	"github.com/agrisaarthi/assistant-platform/internal/handler"
	"github.com/agrisaarthi/assistant-platform/internal/market"
	"github.com/agrisaarthi/assistant-platform/internal/middleware"
	natsclient "github.com/agrisaarthi/assistant-platform/internal/nats"
	"github.com/agrisaarthi/assistant-platform/internal/service"
	"github.com/agrisaarthi/assistant-platform/internal/storage"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
	"github.com/agrisaarthi/assistant-platform/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "assistant-platform", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to NATS for alert fan-out, when configured
	var natsClient *natsclient.Client
	if cfg.NATSURL != "" {
		natsClient, err = natsclient.Connect(ctx, natsclient.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		defer natsClient.Close()
	}

	// Durable key-value store for chat sessions
	store, err := storage.NewFileStore(cfg.StorageDir)
	if err != nil {
		log.Error("failed to open storage", zap.Error(err))
		os.Exit(1)
	}

	// Assistant provider; falls back to the built-in reply when no
	// external provider is configured.
	apiKey := cfg.AnthropicAPIKey
	if assistant.Kind(cfg.AssistantProvider) == assistant.KindOpenAI {
		apiKey = cfg.OpenAIAPIKey
	}
	provider, err := assistant.New(assistant.Kind(cfg.AssistantProvider), apiKey)
	if err != nil {
		log.Warn("failed to create assistant provider, using built-in replies", zap.Error(err))
		provider = assistant.NewCannedProvider()
	}

	// Initialize services
	conversationSvc := service.NewConversationService(store, provider, cfg.ReplyDelay, log)
	defer conversationSvc.Close()

	schemeSvc, err := service.NewSchemeService()
	if err != nil {
		log.Error("failed to load scheme catalog", zap.Error(err))
		os.Exit(1)
	}

	var alertPublisher service.AlertPublisher
	if natsClient != nil {
		alertPublisher = natsClient
	}
	alertSvc := service.NewAlertService(alertPublisher, log)
	diagnosisSvc := service.NewDiagnosisService(cfg.AnalysisDelay)
	marketClient := market.NewClient(cfg.MarketAPIBaseURL, cfg.MarketAPIKey, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(natsClient)
	sessionHandler := handler.NewSessionHandler(conversationSvc, log)
	messageHandler := handler.NewMessageHandler(conversationSvc, log)
	marketHandler := handler.NewMarketHandler(marketClient, log)
	schemeHandler := handler.NewSchemeHandler(schemeSvc)
	alertHandler := handler.NewAlertHandler(alertSvc, log)
	diagnosisHandler := handler.NewDiagnosisHandler(diagnosisSvc, log)
	speechHandler := handler.NewSpeechHandler()

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS())

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes with authentication
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		// Chat sessions
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)
			r.Get("/", sessionHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sessionHandler.Get)
				r.Delete("/", sessionHandler.Delete)
				r.Put("/select", sessionHandler.Select)
				r.Put("/archive", sessionHandler.Archive)

				// Messages
				r.Get("/messages", messageHandler.List)
				r.Post("/messages", messageHandler.Send)
			})
		})

		// Display language
		r.Put("/language", sessionHandler.SetLanguage)

		// Mandi prices
		r.Get("/market/prices", marketHandler.Prices)

		// Government schemes
		r.Get("/schemes", schemeHandler.List)

		// Wildlife alerts
		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", alertHandler.List)
			r.Post("/", alertHandler.Report)
			r.Get("/stream", alertHandler.Stream)
		})

		// Crop diagnosis
		r.Post("/diagnosis", diagnosisHandler.Diagnose)

		// Speech recognition locales
		r.Get("/speech/locales", speechHandler.Locales)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
