package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

type turnRow struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	TripID    sql.NullString `db:"trip_id"`
	Query     string         `db:"query"`
	Response  string         `db:"response"`
	AgentUsed string         `db:"agent_used"`
	CreatedAt time.Time      `db:"created_at"`
}

func (row turnRow) toModel() model.ConversationTurn {
	return model.ConversationTurn{
		ID:        row.ID,
		UserID:    row.UserID,
		TripID:    row.TripID.String,
		Query:     row.Query,
		Response:  row.Response,
		AgentUsed: row.AgentUsed,
		Timestamp: row.CreatedAt.UTC().Truncate(time.Millisecond),
	}
}

func (r *implRepository) Append(ctx context.Context, opt repository.AppendOptions) (model.ConversationTurn, error) {
	if err := opt.Validate(); err != nil {
		return model.ConversationTurn{}, err
	}

	const query = `
		INSERT INTO conversation_turns (id, user_id, trip_id, query, response, agent_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, date_trunc('milliseconds', NOW()))
		RETURNING id, user_id, trip_id, query, response, agent_used, created_at`

	tripID := sql.NullString{String: opt.TripID, Valid: opt.TripID != ""}
	var row turnRow
	err := r.db.QueryRowxContext(ctx, query,
		uuid.NewString(), opt.UserID, tripID, opt.Query, opt.Response, opt.AgentUsed,
	).StructScan(&row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Append"), err)
		return model.ConversationTurn{}, repository.ErrFailedToInsert
	}
	return row.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ScopeOptions) ([]model.ConversationTurn, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	where, args := scopeClause(opt)
	query := `SELECT id, user_id, trip_id, query, response, agent_used, created_at
		FROM conversation_turns WHERE ` + where + ` ORDER BY created_at ASC`

	var rows []turnRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repository.ErrFailedToList
	}

	turns := make([]model.ConversationTurn, 0, len(rows))
	for _, row := range rows {
		turns = append(turns, row.toModel())
	}
	return turns, nil
}

func (r *implRepository) DeleteScope(ctx context.Context, opt repository.ScopeOptions) (int64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}

	where, args := scopeClause(opt)
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversation_turns WHERE `+where, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteScope"), err)
		return 0, repository.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteScope"), err)
		return 0, repository.ErrFailedToDelete
	}
	return n, nil
}

func scopeClause(opt repository.ScopeOptions) (string, []interface{}) {
	if opt.TripID == "" {
		return "user_id = $1", []interface{}{opt.UserID}
	}
	return "user_id = $1 AND trip_id = $2", []interface{}{opt.UserID, opt.TripID}
}
