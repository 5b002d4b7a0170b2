package repository

import (
	"context"

	"travel-assistant/internal/model"
)

// Repository is the append-only conversation turn log.
type Repository interface {
	// Append stores a new turn with a server-assigned id and timestamp.
	Append(ctx context.Context, opt AppendOptions) (model.ConversationTurn, error)
	// List returns the turns in scope ordered by timestamp ascending.
	List(ctx context.Context, opt ScopeOptions) ([]model.ConversationTurn, error)
	// DeleteScope removes every turn in scope and reports how many were removed.
	DeleteScope(ctx context.Context, opt ScopeOptions) (int64, error)
}
