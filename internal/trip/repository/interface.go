package repository

import (
	"context"

	"travel-assistant/internal/model"
)

// Repository reads trip snapshots. Trips are owned and edited elsewhere.
type Repository interface {
	// GetTrip returns the trip with the given id, or a zero Trip when none exists.
	GetTrip(ctx context.Context, id string) (model.Trip, error)
}
