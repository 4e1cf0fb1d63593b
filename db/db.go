package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database owns the single mongo client for the process. It is connected once
// at startup, handed to the repositories, and closed on shutdown.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, name string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Database{client: client, db: client.Database(name)}, nil
}

func (d *Database) Handle() *mongo.Database {
	return d.db
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
