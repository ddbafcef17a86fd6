package service

import (
	"context"
	"strconv"

	"github.com/hirefusion/hirefusion-go/internal/model"
)

// JobService handles job posting business logic.
type JobService struct {
	store JobStore
}

// NewJobService creates a new JobService.
func NewJobService(store JobStore) *JobService {
	return &JobService{store: store}
}

// ParseJobFilter builds a filter from raw page and size query values.
// Missing, non-numeric or negative values count as 0, and a zero size means no limit.
func ParseJobFilter(category, page, size string) model.JobFilter {
	p := parseNonNegative(page)
	s := parseNonNegative(size)
	return model.JobFilter{
		Category: category,
		Skip:     p * s,
		Limit:    s,
	}
}

func parseNonNegative(v string) int64 {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Count returns the estimated number of postings.
func (s *JobService) Count(ctx context.Context) (model.CountResponse, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return model.CountResponse{}, translate("count jobs", err)
	}
	return model.CountResponse{Count: n}, nil
}

// List returns a page of postings.
func (s *JobService) List(ctx context.Context, filter model.JobFilter) ([]model.Document, error) {
	docs, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, translate("list jobs", err)
	}
	return nonNil(docs), nil
}

// ListMine returns the postings created by email, which must be the caller's own email.
func (s *JobService) ListMine(ctx context.Context, identity model.Identity, email string) ([]model.Document, error) {
	if err := authorizeEmail(identity, email); err != nil {
		return nil, err
	}

	docs, err := s.store.ListByPoster(ctx, email)
	if err != nil {
		return nil, translate("list own jobs", err)
	}
	return nonNil(docs), nil
}

// Get returns a posting by id, or nil if it does not exist.
func (s *JobService) Get(ctx context.Context, id string) (model.Document, error) {
	doc, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, translate("get job", err)
	}
	return doc, nil
}

// Create stores a new posting without validating its fields.
func (s *JobService) Create(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	res, err := s.store.Insert(ctx, doc)
	if err != nil {
		return model.InsertResult{}, translate("create job", err)
	}
	return res, nil
}

// Replace overwrites the fixed posting fields, creating the posting if id is unknown.
func (s *JobService) Replace(ctx context.Context, id string, update model.JobUpdate) (model.UpdateResult, error) {
	res, err := s.store.UpsertFields(ctx, id, update)
	if err != nil {
		return model.UpdateResult{}, translate("replace job", err)
	}
	return res, nil
}

// RecordApplication adds one to the posting's applied count.
func (s *JobService) RecordApplication(ctx context.Context, id string) (model.UpdateResult, error) {
	res, err := s.store.IncrementApplied(ctx, id)
	if err != nil {
		return model.UpdateResult{}, translate("increment applied count", err)
	}
	return res, nil
}

// Delete removes a posting. Applications referencing it are left untouched.
func (s *JobService) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	res, err := s.store.Delete(ctx, id)
	if err != nil {
		return model.DeleteResult{}, translate("delete job", err)
	}
	return res, nil
}

func nonNil(docs []model.Document) []model.Document {
	if docs == nil {
		return []model.Document{}
	}
	return docs
}
