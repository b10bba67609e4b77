package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Users           *mongo.Collection
	Services        *mongo.Collection
	Products        *mongo.Collection
	Appointments    *mongo.Collection
	ContactMessages *mongo.Collection
	CartItems       *mongo.Collection
	Orders          *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Users:           db.Collection("users"),
		Services:        db.Collection("services"),
		Products:        db.Collection("products"),
		Appointments:    db.Collection("appointments"),
		ContactMessages: db.Collection("contact_messages"),
		CartItems:       db.Collection("cart_items"),
		Orders:          db.Collection("orders"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Products.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "targetAge", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.CartItems.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}, {Key: "productId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	return nil
}
