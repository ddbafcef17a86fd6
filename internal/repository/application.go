package repository

import (
	"context"

	"github.com/hirefusion/hirefusion-go/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationRepository handles application persistence in the AppliedCollection collection.
type ApplicationRepository struct {
	coll *mongo.Collection
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(coll *mongo.Collection) *ApplicationRepository {
	return &ApplicationRepository{coll: coll}
}

// Insert stores an application as sent.
func (r *ApplicationRepository) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return insertOne(ctx, r.coll, doc)
}

// ListByEmail returns every application submitted under email.
func (r *ApplicationRepository) ListByEmail(ctx context.Context, email string) ([]model.Document, error) {
	return findAll(ctx, r.coll, bson.D{{Key: model.ApplicantEmailKey, Value: email}})
}

// GetByID retrieves an application, returning (nil, nil) when it does not exist.
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (model.Document, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findOne(ctx, r.coll, byID(oid))
}
