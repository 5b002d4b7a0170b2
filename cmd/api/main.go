package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"travel-assistant/config"
	_ "travel-assistant/docs" // Swagger docs
	"travel-assistant/internal/agent"
	agentHTTP "travel-assistant/internal/agent/delivery/http"
	tgDelivery "travel-assistant/internal/agent/delivery/telegram"
	"travel-assistant/internal/agent/handlers"
	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/httpserver"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/provider/mock"
	"travel-assistant/internal/provider/places"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/datemath"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
	"travel-assistant/pkg/telegram"
)

// @title       Travel Assistant API
// @description Routes travel questions to specialised agents and keeps per-user conversation history.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Travel Assistant...")
	logger.Infof(ctx, "Environment: %s, storage: %s", cfg.Environment.Name, cfg.Storage.Driver)

	// 3. Storage
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open storage: %v", err)
		return
	}
	defer st.close()

	// 4. LLM
	providers, skipped, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	for _, e := range skipped {
		logger.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	managerCfg, err := llmprovider.ManagerConfigFrom(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Invalid LLM config: %v", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)

	// 5. Dates
	dates, err := datemath.NewParser(cfg.Dispatch.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Dispatch.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 6. Providers: mock data unless a real vendor is configured
	mockProvider := mock.New(dates.Location())
	deps := handlers.Deps{
		LLM:       llm,
		Flights:   mockProvider,
		Hotels:    mockProvider,
		Places:    mockProvider,
		Weather:   mockProvider,
		Transport: mockProvider,
		Logger:    logger,
	}
	if cfg.Places.APIKey != "" {
		placesClient, perr := places.New(ctx, places.Config{
			APIKey:   cfg.Places.APIKey,
			Endpoint: cfg.Places.Endpoint,
			Language: cfg.Places.Language,
		})
		if perr != nil {
			logger.Warnf(ctx, "Places provider not available, using mock data: %v", perr)
		} else {
			deps.Places = placesClient
			logger.Info(ctx, "✅ Places provider initialized")
		}
	}

	// 7. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 8. Agent domain
	agents := agent.NewRegistry(handlers.NewAll(deps, handlers.Config{
		MaxOptions:        cfg.Dispatch.MaxOptions,
		ProviderTimeout:   cfg.Dispatch.ProviderTimeout,
		GenerationTimeout: cfg.Dispatch.GenerationTimeout,
		RetryBackoff:      cfg.Dispatch.ProviderRetryBackoff,
		Dates:             dates,
	})...)
	if !agents.Complete() {
		logger.Error(ctx, "Agent registry is missing a category handler")
		return
	}

	uc := orchestrator.New(orchestrator.Deps{
		Router:        router.New(llm, logger, cfg.Dispatch.ClassifyTimeout),
		Registry:      agents,
		Trips:         st.trips,
		Conversations: st.conversations,
		Metrics:       metrics.NewDispatch(registry),
		Logger:        logger,
	}, orchestrator.Config{
		PersistTimeout: cfg.Dispatch.PersistTimeout,
		Dates:          dates,
	})

	mw := middleware.New(logger, middleware.Config{
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		Metrics:        metrics.NewHTTP(registry),
	})

	// 9. Telegram channel (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, uc, bot, tgDelivery.Config{
			ProcessTimeout: 2 * cfg.Dispatch.GenerationTimeout,
			SecretToken:    cfg.Telegram.WebhookSecret,
		})
		registerWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret)
	} else {
		logger.Warn(ctx, "Telegram channel skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		CORSOrigins:     cfg.CORS.AllowedOrigins,
		Middleware:      mw,
		Gatherer:        registry,
		Ready:           st.ping,
		AgentHandler:    agentHTTP.New(logger, uc),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
