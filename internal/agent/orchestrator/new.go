package orchestrator

import (
	"time"

	"travel-assistant/internal/agent"
	convrepo "travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/router"
	triprepo "travel-assistant/internal/trip/repository"
	"travel-assistant/pkg/datemath"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

// Deps are the collaborators of the orchestrator. Trips and Metrics may be nil.
type Deps struct {
	Router        router.Router
	Registry      *agent.Registry
	Trips         triprepo.Repository
	Conversations convrepo.Repository
	Metrics       *metrics.Dispatch
	Logger        pkgLog.Logger
}

// Config bounds the orchestrator's own store calls.
type Config struct {
	PersistTimeout    time.Duration
	TripLookupTimeout time.Duration
	Dates             *datemath.Parser
}

type Orchestrator struct {
	router         router.Router
	registry       *agent.Registry
	trips          triprepo.Repository
	turns          convrepo.Repository
	metrics        *metrics.Dispatch
	dates          *datemath.Parser
	l              pkgLog.Logger
	persistTimeout time.Duration
	tripTimeout    time.Duration
}

var _ agent.UseCase = (*Orchestrator)(nil)

func New(d Deps, cfg Config) *Orchestrator {
	if d.Router == nil || d.Registry == nil || d.Conversations == nil {
		panic("orchestrator: router, registry and conversation store are required")
	}
	if d.Logger == nil {
		d.Logger = pkgLog.NewNop()
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = DefaultPersistTimeout
	}
	if cfg.TripLookupTimeout <= 0 {
		cfg.TripLookupTimeout = DefaultTripLookupTimeout
	}
	if cfg.Dates == nil {
		cfg.Dates, _ = datemath.NewParser("UTC")
	}

	return &Orchestrator{
		router:         d.Router,
		registry:       d.Registry,
		trips:          d.Trips,
		turns:          d.Conversations,
		metrics:        d.Metrics,
		dates:          cfg.Dates,
		l:              d.Logger,
		persistTimeout: cfg.PersistTimeout,
		tripTimeout:    cfg.TripLookupTimeout,
	}
}
