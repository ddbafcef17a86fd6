package service

import (
	"context"

	"github.com/hirefusion/hirefusion-go/internal/model"
)

// ApplicationService handles job application business logic.
type ApplicationService struct {
	store ApplicationStore
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(store ApplicationStore) *ApplicationService {
	return &ApplicationService{store: store}
}

// Submit stores an application as sent. The applicant email is not checked
// against the caller and duplicates are allowed.
func (s *ApplicationService) Submit(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	res, err := s.store.Insert(ctx, doc)
	if err != nil {
		return model.InsertResult{}, translate("submit application", err)
	}
	return res, nil
}

// ListMine returns applications submitted under email, which must be the caller's own email.
func (s *ApplicationService) ListMine(ctx context.Context, identity model.Identity, email string) ([]model.Document, error) {
	if err := authorizeEmail(identity, email); err != nil {
		return nil, err
	}

	docs, err := s.store.ListByEmail(ctx, email)
	if err != nil {
		return nil, translate("list applications", err)
	}
	return nonNil(docs), nil
}

// Get returns an application by id, or nil if it does not exist.
func (s *ApplicationService) Get(ctx context.Context, id string) (model.Document, error) {
	doc, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, translate("get application", err)
	}
	return doc, nil
}
