package agent

import (
	"context"

	"travel-assistant/internal/model"
)

// Handler synthesizes a response for one category. Implementations never
// return errors: failures are reported through AgentResponse.Error.
type Handler interface {
	Category() model.Category
	Handle(ctx context.Context, in Input) AgentResponse
}

//go:generate mockery --name UseCase
type UseCase interface {
	HandleQuery(ctx context.Context, q Query) (Envelope, error)
	History(ctx context.Context, sc model.Scope, input HistoryInput) ([]model.ConversationTurn, error)
	ClearHistory(ctx context.Context, sc model.Scope, input HistoryInput) (int64, error)
}
