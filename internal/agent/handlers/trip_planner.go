package handlers

import (
	"context"
	"fmt"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
)

// TripPlanner builds a day-by-day itinerary. It consults no provider.
type TripPlanner struct {
	base
}

var _ agent.Handler = (*TripPlanner)(nil)

func NewTripPlanner(d Deps, cfg Config) *TripPlanner {
	return &TripPlanner{base: newBase(d, cfg)}
}

func (h *TripPlanner) Category() model.Category {
	return model.CategoryTripPlanning
}

func (h *TripPlanner) Handle(ctx context.Context, in agent.Input) agent.AgentResponse {
	in = h.prepare(in)

	summary := ""
	if s := in.Value(KeyTripSummary); s != "" {
		summary = "行程概要: " + s + "\n"
	}
	prompt := fmt.Sprintf(PromptTripPlanning,
		orUnspecified(in.Value(KeyDestination)),
		orUnspecified(h.days(in, []string{KeyStartDate, KeyDepartureDate}, []string{KeyEndDate, KeyReturnDate})),
		orUnspecified(in.Value(KeyBudget)),
		orUnspecified(in.Value(KeyInterests)),
		orUnspecified(in.Value(KeyTravelStyle)),
		orUnspecified(in.Value(KeySpecialRequirements)),
		summary,
		in.Query,
	)

	text, err := h.generate(ctx, prompt, TemperatureTripPlanning)
	if err != nil {
		return h.fail(ctx, LogPrefixTripPlanning, ErrMsgTripPlanning, err)
	}
	return agent.Succeeded(text, nil)
}
