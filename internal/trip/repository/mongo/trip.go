package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"travel-assistant/internal/model"
	"travel-assistant/internal/trip/repository"
	"travel-assistant/pkg/log"
)

const DefaultCollection = "trips"

type tripDocument struct {
	ID                  primitive.ObjectID `bson:"_id"`
	User                string             `bson:"user"`
	Destination         string             `bson:"destination"`
	StartDate           time.Time          `bson:"startDate"`
	EndDate             time.Time          `bson:"endDate"`
	Budget              float64            `bson:"budget"`
	Interests           []string           `bson:"interests"`
	TravelStyle         string             `bson:"travelStyle"`
	SpecialRequirements string             `bson:"specialRequirements"`
}

func (d tripDocument) toModel() model.Trip {
	return model.Trip{
		ID:                  d.ID.Hex(),
		UserID:              d.User,
		Destination:         d.Destination,
		StartDate:           d.StartDate,
		EndDate:             d.EndDate,
		Budget:              d.Budget,
		Interests:           d.Interests,
		TravelStyle:         d.TravelStyle,
		SpecialRequirements: d.SpecialRequirements,
	}
}

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a MongoDB-backed trip Repository.
func New(db *mongo.Database, collection string, l log.Logger) *implRepository {
	if db == nil {
		panic("trip/repository/mongo: db is required")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	if l == nil {
		l = log.NewNop()
	}
	return &implRepository{coll: db.Collection(collection), l: l}
}

// GetTrip treats a malformed id the same as a missing trip.
func (r *implRepository) GetTrip(ctx context.Context, id string) (model.Trip, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Trip{}, nil
	}

	var doc tripDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Trip{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTrip"), err)
		return model.Trip{}, repository.ErrFailedToGet
	}
	return doc.toModel(), nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("trip/repository/mongo.%s", method)
}
