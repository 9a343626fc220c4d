package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database bundles the Mongo client with the collection handles the
// handlers are constructed from. Opened once in main, closed on
// shutdown.
type Database struct {
	Client *mongo.Client

	UserCollection       *mongo.Collection
	MealCollection       *mongo.Collection
	ReviewsCollection    *mongo.Collection
	CartCollection       *mongo.Collection
	PaymentCollection    *mongo.Collection
	MembershipCollection *mongo.Collection
	RequestCollection    *mongo.Collection
}

// Connect dials MongoDB and resolves the collection handles.
func Connect(ctx context.Context, uri, dbName string) (*Database, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, err
	}

	d := client.Database(dbName)
	return &Database{
		Client:               client,
		UserCollection:       d.Collection("users"),
		MealCollection:       d.Collection("meal"),
		ReviewsCollection:    d.Collection("reviews"),
		CartCollection:       d.Collection("carts"),
		PaymentCollection:    d.Collection("payments"),
		MembershipCollection: d.Collection("memberships"),
		RequestCollection:    d.Collection("requests"),
	}, nil
}

// EnsureIndexes creates the unique index backing the one-user-per-email
// invariant.
func (db *Database) EnsureIndexes(ctx context.Context) error {
	_, err := db.UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true).SetName("unique_email"),
	})
	return err
}

// Close disconnects the client.
func (db *Database) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
