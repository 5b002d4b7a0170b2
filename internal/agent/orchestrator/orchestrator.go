package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-assistant/internal/agent"
	convrepo "travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

// HandleQuery classifies q, dispatches it to a handler and records the turn.
// Only input validation and caller cancellation are returned as errors.
func (o *Orchestrator) HandleQuery(ctx context.Context, q agent.Query) (agent.Envelope, error) {
	if strings.TrimSpace(q.Text) == "" {
		return agent.Envelope{}, agent.ErrEmptyQuery
	}
	if strings.TrimSpace(q.UserID) == "" {
		return agent.Envelope{}, agent.ErrMissingUser
	}

	start := time.Now()
	env, tripID := o.dispatch(ctx, q)

	if err := ctx.Err(); err != nil {
		o.l.Infof(ctx, "%s: request abandoned, turn not recorded: %v", LogPrefixHandleQuery, err)
		return agent.Envelope{}, err
	}

	o.persist(ctx, q, tripID, env)
	o.metrics.ObserveQuery(env.AgentUsed, env.Matched, env.Error == "", time.Since(start))
	return env, nil
}

// dispatch never panics: anything raised while folding the trip, resolving
// or running the handler becomes the apology envelope.
func (o *Orchestrator) dispatch(ctx context.Context, q agent.Query) (env agent.Envelope, tripID string) {
	env = agent.Envelope{
		AgentUsed:  model.CategoryGeneric.String(),
		Category:   model.CategoryGeneric,
		Confidence: ConfidenceFallback,
	}
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "%s: recovered panic: %v", LogPrefixHandleQuery, r)
			env.Text = ApologyText
			env.Error = ErrMsgInternal
			env.Options = nil
		}
	}()

	queryCtx, tripID := o.resolveTrip(ctx, q)

	result := o.router.Classify(ctx, q.Text, queryCtx)
	if result.Matched {
		env.Confidence = ConfidenceMatched
	} else {
		o.l.Debugf(ctx, "%s: %v, routing to %s", LogPrefixHandleQuery, agent.ErrClassificationAmbiguous, model.CategoryGeneric)
	}
	env.Matched = result.Matched

	h, err := o.registry.Resolve(result.Category)
	if err != nil {
		o.l.Errorf(ctx, "%s: category=%s: %v", LogPrefixHandleQuery, result.Category, err)
		env.Text = ApologyText
		env.Error = ErrMsgNoHandler
		return env, tripID
	}
	env.Category = h.Category()
	env.AgentUsed = h.Category().String()

	resp := h.Handle(ctx, agent.Input{
		Query:   q.Text,
		TripID:  tripID,
		UserID:  q.UserID,
		Context: queryCtx,
	})
	if !resp.Success {
		o.l.Warnf(ctx, "%s: agent=%s degraded: %s", LogPrefixHandleQuery, env.AgentUsed, resp.Error)
		env.Text = ApologyText
		env.Error = resp.Error
		if env.Error == "" {
			env.Error = ErrMsgUnexpected
		}
		return env, tripID
	}

	env.Text = resp.Text
	env.Options = resp.Options
	return env, tripID
}

// persist records the turn on a context detached from the caller so a client
// disconnecting after dispatch cannot drop history. Failures are logged only.
func (o *Orchestrator) persist(ctx context.Context, q agent.Query, tripID string, env agent.Envelope) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.persistTimeout)
	defer cancel()

	_, err := o.turns.Append(pctx, convrepo.AppendOptions{
		UserID:    q.UserID,
		TripID:    tripID,
		Query:     q.Text,
		Response:  env.Text,
		AgentUsed: env.AgentUsed,
	})
	if err != nil {
		o.l.Errorf(ctx, "%s: %v: %v", LogPrefixPersist, agent.ErrPersistenceFailure, err)
		o.metrics.PersistFailed()
	}
}

// History lists the caller's turns, optionally narrowed to one trip.
func (o *Orchestrator) History(ctx context.Context, sc model.Scope, input agent.HistoryInput) ([]model.ConversationTurn, error) {
	if sc.UserID == "" {
		return nil, agent.ErrMissingUser
	}

	turns, err := o.turns.List(ctx, convrepo.ScopeOptions{UserID: sc.UserID, TripID: strings.TrimSpace(input.TripID)})
	if err != nil {
		o.l.Errorf(ctx, "%s: %v", LogPrefixHistory, err)
		return nil, fmt.Errorf("%w: %w", agent.ErrPersistenceFailure, err)
	}
	return turns, nil
}

// ClearHistory deletes the caller's turns, optionally narrowed to one trip.
func (o *Orchestrator) ClearHistory(ctx context.Context, sc model.Scope, input agent.HistoryInput) (int64, error) {
	if sc.UserID == "" {
		return 0, agent.ErrMissingUser
	}

	n, err := o.turns.DeleteScope(ctx, convrepo.ScopeOptions{UserID: sc.UserID, TripID: strings.TrimSpace(input.TripID)})
	if err != nil {
		o.l.Errorf(ctx, "%s: %v", LogPrefixClearHistory, err)
		return 0, fmt.Errorf("%w: %w", agent.ErrPersistenceFailure, err)
	}
	o.l.Infof(ctx, "%s: removed %d turns", LogPrefixClearHistory, n)
	return n, nil
}
