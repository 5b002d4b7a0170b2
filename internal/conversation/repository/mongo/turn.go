package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

func (r *implRepository) Append(ctx context.Context, opt repository.AppendOptions) (model.ConversationTurn, error) {
	if err := opt.Validate(); err != nil {
		return model.ConversationTurn{}, err
	}

	// BSON dates carry millisecond precision.
	doc := turnDocument{
		ID:        primitive.NewObjectID(),
		User:      opt.UserID,
		Trip:      opt.TripID,
		Query:     opt.Query,
		Response:  opt.Response,
		AgentUsed: opt.AgentUsed,
		Timestamp: r.now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Append"), err)
		return model.ConversationTurn{}, repository.ErrFailedToInsert
	}
	return doc.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ScopeOptions) ([]model.ConversationTurn, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.coll.Find(ctx, scopeFilter(opt), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repository.ErrFailedToList
	}
	defer cur.Close(ctx)

	var docs []turnDocument
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("List"), err)
		return nil, repository.ErrFailedToList
	}

	turns := make([]model.ConversationTurn, 0, len(docs))
	for _, d := range docs {
		turns = append(turns, d.toModel())
	}
	return turns, nil
}

func (r *implRepository) DeleteScope(ctx context.Context, opt repository.ScopeOptions) (int64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteMany(ctx, scopeFilter(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteScope"), err)
		return 0, repository.ErrFailedToDelete
	}
	return res.DeletedCount, nil
}
