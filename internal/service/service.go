package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirefusion/hirefusion-go/internal/model"
	"github.com/hirefusion/hirefusion-go/internal/repository"
)

var (
	ErrForbidden = errors.New("forbidden access")
	ErrInvalidID = errors.New("invalid id")
)

// JobStore is the persistence contract for job postings.
type JobStore interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filter model.JobFilter) ([]model.Document, error)
	ListByPoster(ctx context.Context, email string) ([]model.Document, error)
	GetByID(ctx context.Context, id string) (model.Document, error)
	Insert(ctx context.Context, doc model.Document) (model.InsertResult, error)
	UpsertFields(ctx context.Context, id string, update model.JobUpdate) (model.UpdateResult, error)
	IncrementApplied(ctx context.Context, id string) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
}

// ApplicationStore is the persistence contract for job applications.
type ApplicationStore interface {
	Insert(ctx context.Context, doc model.Document) (model.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]model.Document, error)
	GetByID(ctx context.Context, id string) (model.Document, error)
}

// authorizeEmail allows a query for email only if it is the caller's own.
// An empty email never matches, even when the token carries no email claim.
func authorizeEmail(identity model.Identity, email string) error {
	if email == "" || email != identity.Email() {
		return ErrForbidden
	}
	return nil
}

func translate(op string, err error) error {
	if errors.Is(err, repository.ErrInvalidID) {
		return ErrInvalidID
	}
	return fmt.Errorf("%s: %w", op, err)
}
