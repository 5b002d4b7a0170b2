package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"travel-assistant/internal/model"
	"travel-assistant/internal/trip/repository"
	"travel-assistant/pkg/log"
)

type tripRow struct {
	ID                  string         `db:"id"`
	UserID              string         `db:"user_id"`
	Destination         string         `db:"destination"`
	StartDate           sql.NullTime   `db:"start_date"`
	EndDate             sql.NullTime   `db:"end_date"`
	Budget              float64        `db:"budget"`
	Interests           pq.StringArray `db:"interests"`
	TravelStyle         string         `db:"travel_style"`
	SpecialRequirements string         `db:"special_requirements"`
}

func (row tripRow) toModel() model.Trip {
	var start, end time.Time
	if row.StartDate.Valid {
		start = row.StartDate.Time
	}
	if row.EndDate.Valid {
		end = row.EndDate.Time
	}
	return model.Trip{
		ID:                  row.ID,
		UserID:              row.UserID,
		Destination:         row.Destination,
		StartDate:           start,
		EndDate:             end,
		Budget:              row.Budget,
		Interests:           []string(row.Interests),
		TravelStyle:         row.TravelStyle,
		SpecialRequirements: row.SpecialRequirements,
	}
}

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a PostgreSQL-backed trip Repository.
func New(db *sqlx.DB, l log.Logger) *implRepository {
	if db == nil {
		panic("trip/repository/postgre: db is required")
	}
	if l == nil {
		l = log.NewNop()
	}
	return &implRepository{db: db, l: l}
}

// GetTrip treats a malformed id the same as a missing trip.
func (r *implRepository) GetTrip(ctx context.Context, id string) (model.Trip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Trip{}, nil
	}

	const query = `
		SELECT id, user_id, destination, start_date, end_date, budget, interests, travel_style, special_requirements
		FROM trips WHERE id = $1 LIMIT 1`

	var row tripRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Trip{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTrip"), err)
		return model.Trip{}, repository.ErrFailedToGet
	}
	return row.toModel(), nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("trip/repository/postgre.%s", method)
}
