package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopcore/errs"
)

// MongoStore persists keys as documents in a single collection:
// {_id: key, value: string}. It is the backend for deployments that already
// run MongoDB; it deliberately uses no transactions, matching the store
// contract of no atomicity across keys.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore returns a MongoStore over the "kv" collection of the given
// database.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{collection: client.Database(database).Collection("kv")}
}

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (m *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrap(errs.CodeStoreIO, "get "+key, err)
	}
	return doc.Value, true, nil
}

func (m *MongoStore) Set(ctx context.Context, key, value string) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, kvDocument{Key: key, Value: value}, opts)
	if err != nil {
		return errs.Wrap(errs.CodeStoreIO, "set "+key, err)
	}
	return nil
}

func (m *MongoStore) Remove(ctx context.Context, key string) error {
	if _, err := m.collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return errs.Wrap(errs.CodeStoreIO, "remove "+key, err)
	}
	return nil
}
