package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"travel-assistant/config"
	convrepo "travel-assistant/internal/conversation/repository"
	convMemory "travel-assistant/internal/conversation/repository/memory"
	convMongo "travel-assistant/internal/conversation/repository/mongo"
	convPostgre "travel-assistant/internal/conversation/repository/postgre"
	triprepo "travel-assistant/internal/trip/repository"
	tripMemory "travel-assistant/internal/trip/repository/memory"
	tripMongo "travel-assistant/internal/trip/repository/mongo"
	tripPostgre "travel-assistant/internal/trip/repository/postgre"
	"travel-assistant/pkg/log"
	pkgMongo "travel-assistant/pkg/mongo"
	"travel-assistant/pkg/postgre"
)

const disconnectTimeout = 5 * time.Second

type stores struct {
	conversations convrepo.Repository
	trips         triprepo.Repository
	ping          func(ctx context.Context) error
	close         func()
}

func openStores(ctx context.Context, cfg *config.Config, l log.Logger) (stores, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMongo:
		client, db, err := pkgMongo.Connect(ctx, pkgMongo.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		})
		if err != nil {
			return stores{}, err
		}
		conv := convMongo.New(db, cfg.Mongo.ConversationCollection, l)
		if err := conv.EnsureIndexes(ctx); err != nil {
			l.Warnf(ctx, "Failed to ensure conversation indexes: %v", err)
		}
		l.Infof(ctx, "✅ MongoDB connected: %s", cfg.Mongo.Database)
		return stores{
			conversations: conv,
			trips:         tripMongo.New(db, cfg.Mongo.TripCollection, l),
			ping:          func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
			close:         func() { disconnectMongo(client, l) },
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgre.Connect(ctx, postgre.Config{DSN: cfg.Postgres.DSN, MaxOpenConns: cfg.Postgres.MaxOpenConns})
		if err != nil {
			return stores{}, err
		}
		l.Info(ctx, "✅ PostgreSQL connected")
		return stores{
			conversations: convPostgre.New(db, l),
			trips:         tripPostgre.New(db, l),
			ping:          db.PingContext,
			close:         func() { closePostgres(db, l) },
		}, nil

	case config.StorageDriverMemory:
		l.Warn(ctx, "Using in-memory storage: history is lost on restart")
		return stores{
			conversations: convMemory.New(time.Now),
			trips:         tripMemory.New(),
			close:         func() {},
		}, nil
	}
	return stores{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func disconnectMongo(client *mongodriver.Client, l log.Logger) {
	if err := pkgMongo.Disconnect(client, disconnectTimeout); err != nil {
		l.Warnf(context.Background(), "MongoDB disconnect: %v", err)
	}
}

func closePostgres(db *sqlx.DB, l log.Logger) {
	if err := db.Close(); err != nil {
		l.Warnf(context.Background(), "PostgreSQL close: %v", err)
	}
}
