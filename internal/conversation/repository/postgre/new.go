package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a PostgreSQL-backed conversation Repository.
func New(db *sqlx.DB, l log.Logger) *implRepository {
	if db == nil {
		panic("conversation/repository/postgre: db is required")
	}
	if l == nil {
		l = log.NewNop()
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/postgre.%s", method)
}
