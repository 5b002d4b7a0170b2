package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

type turnDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	User      string             `bson:"user"`
	Trip      string             `bson:"trip,omitempty"`
	Query     string             `bson:"query"`
	Response  string             `bson:"response"`
	AgentUsed string             `bson:"agentUsed"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (d turnDocument) toModel() model.ConversationTurn {
	return model.ConversationTurn{
		ID:        d.ID.Hex(),
		UserID:    d.User,
		TripID:    d.Trip,
		Query:     d.Query,
		Response:  d.Response,
		AgentUsed: d.AgentUsed,
		Timestamp: d.Timestamp.UTC(),
	}
}

func scopeFilter(opt repository.ScopeOptions) bson.M {
	filter := bson.M{"user": opt.UserID}
	if opt.TripID != "" {
		filter["trip"] = opt.TripID
	}
	return filter
}
