package memory

import (
	"context"
	"sync"

	"travel-assistant/internal/model"
	"travel-assistant/internal/trip/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	trips map[string]model.Trip
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-process trip store seeded with trips.
func New(trips ...model.Trip) *implRepository {
	r := &implRepository{trips: make(map[string]model.Trip, len(trips))}
	for _, t := range trips {
		r.Put(t)
	}
	return r
}

// Put inserts or replaces a trip.
func (r *implRepository) Put(t model.Trip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trips[t.ID] = t
}

func (r *implRepository) GetTrip(ctx context.Context, id string) (model.Trip, error) {
	if err := ctx.Err(); err != nil {
		return model.Trip{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.trips[id], nil
}
