package repository

import (
	"context"
	"errors"
	"maps"
	"reflect"
	"sync"

	"github.com/hirefusion/hirefusion-go/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNonNumericCounter = errors.New("cannot increment a non-numeric field")

// memCollection is an in-process document collection that follows the
// matching, upsert and increment rules of the MongoDB operations used here.
// Documents are copied one level deep on the way in and out.
type memCollection struct {
	mu   sync.RWMutex
	docs []model.Document
}

func (c *memCollection) count() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.docs))
}

func (c *memCollection) find(match func(model.Document) bool, skip, limit int64) []model.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Document, 0)
	var seen int64
	for _, d := range c.docs {
		if !match(d) {
			continue
		}
		seen++
		if seen <= skip {
			continue
		}
		out = append(out, maps.Clone(d))
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out
}

func (c *memCollection) findByID(oid primitive.ObjectID) model.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(oid); i >= 0 {
		return maps.Clone(c.docs[i])
	}
	return nil
}

func (c *memCollection) insert(doc model.Document) model.InsertResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := maps.Clone(doc)
	if stored == nil {
		stored = model.Document{}
	}
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	c.docs = append(c.docs, stored)

	return model.InsertResult{Acknowledged: true, InsertedID: stored["_id"]}
}

// set applies fields to the document with oid, inserting {_id: oid, fields...} when absent.
func (c *memCollection) set(oid primitive.ObjectID, fields []model.Field) model.UpdateResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(oid)
	if i < 0 {
		doc := model.Document{"_id": oid}
		for _, f := range fields {
			doc[f.Key] = f.Value
		}
		c.docs = append(c.docs, doc)
		return model.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}
	}

	doc := c.docs[i]
	modified := false
	for _, f := range fields {
		if cur, ok := doc[f.Key]; ok && reflect.DeepEqual(cur, f.Value) {
			continue
		}
		doc[f.Key] = f.Value
		modified = true
	}

	res := model.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if modified {
		res.ModifiedCount = 1
	}
	return res
}

// inc adds one to key on the document with oid, inserting {_id: oid, key: 1} when absent.
func (c *memCollection) inc(oid primitive.ObjectID, key string) (model.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(oid)
	if i < 0 {
		c.docs = append(c.docs, model.Document{"_id": oid, key: int32(1)})
		return model.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
	}

	doc := c.docs[i]
	cur, ok := doc[key]
	if !ok {
		doc[key] = int32(1)
		return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}

	switch v := cur.(type) {
	case int32:
		doc[key] = v + 1
	case int64:
		doc[key] = v + 1
	case int:
		doc[key] = v + 1
	case float64:
		doc[key] = v + 1
	default:
		return model.UpdateResult{}, ErrNonNumericCounter
	}
	return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (c *memCollection) delete(oid primitive.ObjectID) model.DeleteResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(oid)
	if i < 0 {
		return model.DeleteResult{Acknowledged: true}
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return model.DeleteResult{Acknowledged: true, DeletedCount: 1}
}

// indexOf must be called with mu held.
func (c *memCollection) indexOf(oid primitive.ObjectID) int {
	for i, d := range c.docs {
		if id, ok := d["_id"].(primitive.ObjectID); ok && id == oid {
			return i
		}
	}
	return -1
}

func fieldEquals(key string, value string) func(model.Document) bool {
	return func(d model.Document) bool {
		s, ok := d[key].(string)
		return ok && s == value
	}
}

// MemoryJobRepository keeps job postings in process memory.
type MemoryJobRepository struct {
	c memCollection
}

// NewMemoryJobRepository creates an empty MemoryJobRepository.
func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{}
}

func (r *MemoryJobRepository) Count(ctx context.Context) (int64, error) {
	return r.c.count(), nil
}

func (r *MemoryJobRepository) List(ctx context.Context, filter model.JobFilter) ([]model.Document, error) {
	match := func(model.Document) bool { return true }
	if filter.Category != "" {
		match = fieldEquals(model.JobCategoryKey, filter.Category)
	}
	return r.c.find(match, filter.Skip, filter.Limit), nil
}

func (r *MemoryJobRepository) ListByPoster(ctx context.Context, email string) ([]model.Document, error) {
	return r.c.find(fieldEquals(model.JobPostedEmailKey, email), 0, 0), nil
}

func (r *MemoryJobRepository) GetByID(ctx context.Context, id string) (model.Document, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return r.c.findByID(oid), nil
}

func (r *MemoryJobRepository) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return r.c.insert(doc), nil
}

func (r *MemoryJobRepository) UpsertFields(ctx context.Context, id string, update model.JobUpdate) (model.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	return r.c.set(oid, update.Fields()), nil
}

func (r *MemoryJobRepository) IncrementApplied(ctx context.Context, id string) (model.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	return r.c.inc(oid, model.JobAppliedCountKey)
}

func (r *MemoryJobRepository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}
	return r.c.delete(oid), nil
}

// MemoryApplicationRepository keeps applications in process memory.
type MemoryApplicationRepository struct {
	c memCollection
}

// NewMemoryApplicationRepository creates an empty MemoryApplicationRepository.
func NewMemoryApplicationRepository() *MemoryApplicationRepository {
	return &MemoryApplicationRepository{}
}

func (r *MemoryApplicationRepository) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return r.c.insert(doc), nil
}

func (r *MemoryApplicationRepository) ListByEmail(ctx context.Context, email string) ([]model.Document, error) {
	return r.c.find(fieldEquals(model.ApplicantEmailKey, email), 0, 0), nil
}

func (r *MemoryApplicationRepository) GetByID(ctx context.Context, id string) (model.Document, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return r.c.findByID(oid), nil
}
