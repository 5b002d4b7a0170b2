package handlers

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/internal/provider"
)

// Transport compares flights and public transport between two cities.
type Transport struct {
	base
	flights provider.FlightProvider
	legs    provider.TransportProvider
}

var _ agent.Handler = (*Transport)(nil)

func NewTransport(d Deps, cfg Config) *Transport {
	return &Transport{base: newBase(d, cfg), flights: d.Flights, legs: d.Transport}
}

func (h *Transport) Category() model.Category {
	return model.CategoryTransport
}

// Mode resolves which providers a query consults.
func (h *Transport) Mode(in agent.Input) TravelMode {
	rule, _ := h.cfg.Rules.TransportMode.Evaluate(in)
	return rule.Value
}

func (h *Transport) Handle(ctx context.Context, in agent.Input) agent.AgentResponse {
	in = h.prepare(in)
	origin, destination := in.Value(KeyOrigin), in.Value(KeyDestination)
	depart := h.date(in, KeyDepartureDate, KeyStartDate)
	ret := h.date(in, KeyReturnDate, KeyEndDate)
	mode := h.Mode(in)

	var (
		flights []provider.FlightOption
		legs    []provider.TransportLeg
	)
	if origin != "" && destination != "" {
		g, gctx := errgroup.WithContext(ctx)
		if mode != ModeGround && h.flights != nil {
			g.Go(func() error {
				var err error
				flights, err = fetch(gctx, h.base, func(ctx context.Context) ([]provider.FlightOption, error) {
					return h.flights.SearchFlights(ctx, provider.SearchFlightsOptions{Origin: origin, Destination: destination, Date: depart})
				})
				return err
			})
		}
		if mode != ModeFlight && h.legs != nil {
			g.Go(func() error {
				var err error
				legs, err = fetch(gctx, h.base, func(ctx context.Context) ([]provider.TransportLeg, error) {
					return h.legs.SearchLegs(ctx, provider.SearchLegsOptions{Origin: origin, Destination: destination, Date: depart})
				})
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return h.fail(ctx, LogPrefixTransport, ErrMsgTransport, err)
		}
	}
	flights = truncate(flights, h.limit(MaxFlightOptions))
	legs = truncate(legs, h.limit(MaxLegOptions))

	prompt := fmt.Sprintf(PromptTransport,
		orUnspecified(origin),
		orUnspecified(destination),
		h.formatDate(depart, in.Value(KeyDepartureDate)),
		h.formatDate(ret, in.Value(KeyReturnDate)),
		orUnspecified(h.days(in, []string{KeyDepartureDate, KeyStartDate}, []string{KeyReturnDate, KeyEndDate})),
		orUnspecified(in.Value(KeyBudget)),
		orUnspecified(in.Value(KeyPreferredMode)),
		orUnspecified(firstNonBlank(in.Value(KeyPassengers), in.Value(KeyPeople))),
		orUnspecified(in.Value(KeySpecialRequirements)),
		toJSON(flights),
		toJSON(legs),
		in.Query,
	)

	text, err := h.generate(ctx, prompt, TemperatureTransport)
	if err != nil {
		return h.fail(ctx, LogPrefixTransport, ErrMsgTransport, err)
	}

	options := append(
		lo.Map(flights, func(f provider.FlightOption, _ int) agent.ExternalOption { return agent.FlightOption(f) }),
		lo.Map(legs, func(l provider.TransportLeg, _ int) agent.ExternalOption { return agent.TransportLegOption(l) })...,
	)
	return agent.Succeeded(text, options)
}
