package handlers

import (
	"time"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/provider"
	"travel-assistant/pkg/datemath"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// Deps are the collaborators injected into the handlers. Provider fields may
// be nil; the handler then synthesizes without live options.
type Deps struct {
	LLM       llmprovider.TextGenerator
	Flights   provider.FlightProvider
	Hotels    provider.HotelProvider
	Places    provider.PlaceProvider
	Weather   provider.WeatherProvider
	Transport provider.TransportProvider
	Logger    log.Logger
}

// Config bounds the work each handler does per request.
type Config struct {
	MaxOptions        int
	ProviderTimeout   time.Duration
	GenerationTimeout time.Duration
	RetryBackoff      time.Duration
	Dates             *datemath.Parser
	Now               func() time.Time
	Rules             Rules
}

func (c Config) withDefaults() Config {
	if c.Dates == nil {
		c.Dates, _ = datemath.NewParser("UTC")
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	c.Rules = c.Rules.withDefaults()
	return c
}

// NewAll builds one handler per category, ready to register.
func NewAll(d Deps, cfg Config) []agent.Handler {
	return []agent.Handler{
		NewTripPlanner(d, cfg),
		NewTransport(d, cfg),
		NewAccommodation(d, cfg),
		NewTranslation(d, cfg),
		NewFoodActivity(d, cfg),
		NewGeneric(d, cfg),
	}
}
