package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	agentHTTP "travel-assistant/internal/agent/delivery/http"
	tgDelivery "travel-assistant/internal/agent/delivery/telegram"
	"travel-assistant/internal/middleware"
	"travel-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string
	gatherer    prometheus.Gatherer
	mw          middleware.Middleware
	ready       ReadinessCheck

	// Agent domain
	agentHandler    agentHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string

	Middleware middleware.Middleware
	Gatherer   prometheus.Gatherer // backs GET /metrics, nil disables it
	Ready      ReadinessCheck      // backs GET /ready, nil means always ready

	AgentHandler    agentHTTP.Handler
	TelegramHandler tgDelivery.Handler // optional
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		corsOrigins:     cfg.CORSOrigins,
		gatherer:        cfg.Gatherer,
		mw:              cfg.Middleware,
		ready:           cfg.Ready,
		agentHandler:    cfg.AgentHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.agentHandler == nil {
		return errors.New("agent handler is required")
	}
	return nil
}

// Handler returns the root handler with CORS applied.
func (srv HTTPServer) Handler() http.Handler {
	return srv.withCORS(srv.gin)
}
