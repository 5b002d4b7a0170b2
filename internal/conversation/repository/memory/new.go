package memory

import (
	"sync"
	"time"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

type implRepository struct {
	mu    sync.RWMutex
	turns []model.ConversationTurn
	now   func() time.Time
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-process conversation store. now may be nil.
func New(now func() time.Time) *implRepository {
	if now == nil {
		now = time.Now
	}
	return &implRepository{now: now}
}
