package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/pkg/log"
)

const DefaultCollection = "conversations"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
	now  func() time.Time
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a MongoDB-backed conversation Repository.
func New(db *mongo.Database, collection string, l log.Logger) *implRepository {
	if db == nil {
		panic("conversation/repository/mongo: db is required")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	if l == nil {
		l = log.NewNop()
	}
	return &implRepository{coll: db.Collection(collection), l: l, now: time.Now}
}

// EnsureIndexes creates the scope index used by List and DeleteScope.
func (r *implRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "trip", Value: 1}, {Key: "timestamp", Value: 1}},
		Options: options.Index().SetName("user_trip_timestamp"),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", r.dsn("EnsureIndexes"), err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/mongo.%s", method)
}
