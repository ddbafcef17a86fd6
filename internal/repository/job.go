package repository

import (
	"context"

	"github.com/hirefusion/hirefusion-go/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JobRepository handles job posting persistence in the jobsPost collection.
type JobRepository struct {
	coll *mongo.Collection
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(coll *mongo.Collection) *JobRepository {
	return &JobRepository{coll: coll}
}

// Count returns the estimated number of postings from collection metadata.
func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}

// List returns one page of postings, restricted to filter.Category when set.
func (r *JobRepository) List(ctx context.Context, filter model.JobFilter) ([]model.Document, error) {
	query := bson.D{}
	if filter.Category != "" {
		query = bson.D{{Key: model.JobCategoryKey, Value: filter.Category}}
	}

	opts := options.Find().SetSkip(filter.Skip).SetLimit(filter.Limit)
	return findAll(ctx, r.coll, query, opts)
}

// ListByPoster returns every posting created by email.
func (r *JobRepository) ListByPoster(ctx context.Context, email string) ([]model.Document, error) {
	return findAll(ctx, r.coll, bson.D{{Key: model.JobPostedEmailKey, Value: email}})
}

// GetByID retrieves a posting, returning (nil, nil) when it does not exist.
func (r *JobRepository) GetByID(ctx context.Context, id string) (model.Document, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findOne(ctx, r.coll, byID(oid))
}

// Insert stores doc as sent; the store assigns _id when absent.
func (r *JobRepository) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return insertOne(ctx, r.coll, doc)
}

// UpsertFields sets every JobUpdate field on the posting with the given id,
// creating a document keyed by that id if none matches.
func (r *JobRepository) UpsertFields(ctx context.Context, id string, update model.JobUpdate) (model.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	set := bson.D{}
	for _, f := range update.Fields() {
		set = append(set, bson.E{Key: f.Key, Value: f.Value})
	}

	res, err := r.coll.UpdateOne(ctx, byID(oid), bson.D{{Key: "$set", Value: set}}, options.Update().SetUpsert(true))
	if err != nil {
		return model.UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}

// IncrementApplied atomically adds one to AppliedCount. Like UpsertFields it
// upserts, so a missing id yields a new {_id, AppliedCount: 1} document.
func (r *JobRepository) IncrementApplied(ctx context.Context, id string) (model.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	inc := bson.D{{Key: "$inc", Value: bson.D{{Key: model.JobAppliedCountKey, Value: 1}}}}
	res, err := r.coll.UpdateOne(ctx, byID(oid), inc, options.Update().SetUpsert(true))
	if err != nil {
		return model.UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}

// Delete removes the posting with the given id. A missing id is not an error.
func (r *JobRepository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}

	res, err := r.coll.DeleteOne(ctx, byID(oid))
	if err != nil {
		return model.DeleteResult{}, err
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
