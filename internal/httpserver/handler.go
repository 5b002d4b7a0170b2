package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	agentHTTP "travel-assistant/internal/agent/delivery/http"
	"travel-assistant/internal/model"
)

const (
	agentPrefix     = "/api/v1/agent"
	telegramWebhook = "/webhook/telegram"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestID(), srv.mw.Metrics())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.corsOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.gatherer != nil {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	agentHTTP.RegisterRoutes(srv.gin.Group(agentPrefix), srv.agentHandler, srv.mw)
	srv.l.Infof(ctx, "Agent routes registered under %s", agentPrefix)

	if srv.telegramHandler != nil {
		srv.gin.POST(telegramWebhook, srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST %s", telegramWebhook)
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}

// withCORS allows every origin outside production.
func (srv HTTPServer) withCORS(h http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}
	if srv.environment == string(model.EnvironmentProduction) && len(srv.corsOrigins) > 0 {
		opts.AllowedOrigins = srv.corsOrigins
		opts.AllowCredentials = true
	} else {
		opts.AllowedOrigins = []string{"*"}
	}
	return cors.New(opts).Handler(h)
}
