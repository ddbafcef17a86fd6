package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hirefusion/hirefusion-go/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names inside the job board database.
const (
	JobsCollection        = "jobsPost"
	ApplicationCollection = "AppliedCollection"
)

var (
	ErrInvalidID = errors.New("invalid document id")
)

// Connect opens a MongoDB client against uri pinned to the v1 stable API.
// The client is meant to live for the whole process.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		slog.Warn("mongodb ping failed, continuing without a verified connection", "error", err)
	} else {
		slog.Info("pinged mongodb deployment")
	}

	return client, nil
}

// parseObjectID converts a 24-hex string into an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func byID(oid primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: oid}}
}

// findOne returns (nil, nil) when no document matches.
func findOne(ctx context.Context, coll *mongo.Collection, filter any) (model.Document, error) {
	var doc model.Document
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]model.Document, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]model.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc model.Document) (model.InsertResult, error) {
	if doc == nil {
		doc = model.Document{}
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return model.InsertResult{}, err
	}
	return model.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func toUpdateResult(res *mongo.UpdateResult) model.UpdateResult {
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
