package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

const (
	GenreCollection  = "genres"
	AuthorCollection = "authors"
)

// DB is the process-wide store handle. It is created once at startup and
// passed explicitly to whatever needs a collection.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

// Connect opens a client for uri, verifies it with a ping and selects dbName.
func Connect(ctx context.Context, uri, dbName string, log *zap.Logger) (*DB, error) {
	connectionString := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(connectionString)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info("connected to mongodb", zap.String("database", dbName))
	return &DB{client: client, db: client.Database(dbName), log: log}, nil
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) Genres() *mongo.Collection  { return d.Collection(GenreCollection) }
func (d *DB) Authors() *mongo.Collection { return d.Collection(AuthorCollection) }

// Ping reports whether the primary is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *DB) Close(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	d.log.Info("disconnected from mongodb")
	return nil
}
