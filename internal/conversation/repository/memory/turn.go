package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

func (r *implRepository) Append(ctx context.Context, opt repository.AppendOptions) (model.ConversationTurn, error) {
	if err := opt.Validate(); err != nil {
		return model.ConversationTurn{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.ConversationTurn{}, err
	}

	turn := model.ConversationTurn{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		TripID:    opt.TripID,
		Query:     opt.Query,
		Response:  opt.Response,
		AgentUsed: opt.AgentUsed,
		Timestamp: r.now().UTC().Truncate(time.Millisecond),
	}

	r.mu.Lock()
	r.turns = append(r.turns, turn)
	r.mu.Unlock()
	return turn, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ScopeOptions) ([]model.ConversationTurn, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := lo.Filter(r.turns, func(t model.ConversationTurn, _ int) bool { return inScope(t, opt) })
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *implRepository) DeleteScope(ctx context.Context, opt repository.ScopeOptions) (int64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	kept := lo.Reject(r.turns, func(t model.ConversationTurn, _ int) bool { return inScope(t, opt) })
	removed := int64(len(r.turns) - len(kept))
	r.turns = kept
	return removed, nil
}

func inScope(t model.ConversationTurn, opt repository.ScopeOptions) bool {
	return t.UserID == opt.UserID && (opt.TripID == "" || t.TripID == opt.TripID)
}
