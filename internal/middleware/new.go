package middleware

import (
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *metrics.HTTP
}

// Config configures the middleware set. Metrics may be nil.
type Config struct {
	RequestsPerMin int
	Metrics        *metrics.HTTP
}

func New(l log.Logger, cfg Config) Middleware {
	if l == nil {
		l = log.NewNop()
	}
	if cfg.RequestsPerMin <= 0 {
		cfg.RequestsPerMin = DefaultRequestsPerMin
	}
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin),
		metrics: cfg.Metrics,
	}
}
