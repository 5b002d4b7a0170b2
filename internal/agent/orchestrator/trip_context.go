package orchestrator

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/agent/handlers"
	"travel-assistant/internal/model"
)

// resolveTrip copies the caller's context and, when q names a trip the caller
// owns, folds the trip into it. It returns the trip id that applies to this
// query: empty whenever the trip is missing, unreadable or owned by someone else.
func (o *Orchestrator) resolveTrip(ctx context.Context, q agent.Query) (map[string]string, string) {
	queryCtx := make(map[string]string, len(q.Context)+9)
	for k, v := range q.Context {
		queryCtx[k] = v
	}

	tripID := strings.TrimSpace(q.TripID)
	if tripID == "" || o.trips == nil {
		return queryCtx, ""
	}

	lookupCtx, cancel := context.WithTimeout(ctx, o.tripTimeout)
	defer cancel()

	trip, err := o.trips.GetTrip(lookupCtx, tripID)
	if err != nil {
		o.l.Warnf(ctx, "%s: trip=%s: %v", LogPrefixResolveTrip, tripID, err)
		return queryCtx, ""
	}
	if trip.ID == "" {
		o.l.Debugf(ctx, "%s: trip=%s not found", LogPrefixResolveTrip, tripID)
		return queryCtx, ""
	}
	if !trip.OwnedBy(q.UserID) {
		o.l.Warnf(ctx, "%s: trip=%s: %v", LogPrefixResolveTrip, tripID, agent.ErrOwnershipViolation)
		return queryCtx, ""
	}

	o.foldTrip(queryCtx, trip)
	return queryCtx, tripID
}

// foldTrip adds the trip's fields to queryCtx. Values the caller supplied win.
func (o *Orchestrator) foldTrip(queryCtx map[string]string, t model.Trip) {
	start, end := o.dates.Format(t.StartDate), o.dates.Format(t.EndDate)
	days := o.dates.CalendarDays(t.StartDate, t.EndDate)

	var budget string
	if t.Budget > 0 {
		budget = strconv.FormatFloat(t.Budget, 'f', -1, 64)
	}
	interests := strings.Join(t.Interests, InterestSeparator)

	setIfAbsent(queryCtx, handlers.KeyDestination, t.Destination)
	setIfAbsent(queryCtx, handlers.KeyStartDate, start)
	setIfAbsent(queryCtx, handlers.KeyEndDate, end)
	setIfAbsent(queryCtx, handlers.KeyBudget, budget)
	setIfAbsent(queryCtx, handlers.KeyInterests, interests)
	setIfAbsent(queryCtx, handlers.KeyTravelStyle, t.TravelStyle)
	setIfAbsent(queryCtx, handlers.KeySpecialRequirements, t.SpecialRequirements)
	if days > 0 {
		setIfAbsent(queryCtx, handlers.KeyDuration, strconv.Itoa(days))
	}

	var parts []string
	if t.Destination != "" {
		parts = append(parts, fmt.Sprintf(TripSummaryDestination, t.Destination))
	}
	if start != "" && end != "" {
		parts = append(parts, fmt.Sprintf(TripSummaryDates, start, end))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf(TripSummaryDuration, days))
	}
	if budget != "" {
		parts = append(parts, fmt.Sprintf(TripSummaryBudget, budget))
	}
	if interests != "" {
		parts = append(parts, fmt.Sprintf(TripSummaryInterests, interests))
	}
	if t.TravelStyle != "" {
		parts = append(parts, fmt.Sprintf(TripSummaryStyle, t.TravelStyle))
	}
	if t.SpecialRequirements != "" {
		parts = append(parts, fmt.Sprintf(TripSummaryRequirement, t.SpecialRequirements))
	}
	setIfAbsent(queryCtx, handlers.KeyTripSummary, strings.Join(parts, TripSummarySeparator))
}

func setIfAbsent(m map[string]string, key, value string) {
	if value == "" || strings.TrimSpace(m[key]) != "" {
		return
	}
	m[key] = value
}
