package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hirefusion/hirefusion-go/internal/model"
	"github.com/hirefusion/hirefusion-go/internal/repository"
)

var errStore = errors.New("connection reset")

// failingJobStore fails every call with errStore.
type failingJobStore struct{ JobStore }

func (failingJobStore) List(context.Context, model.JobFilter) ([]model.Document, error) {
	return nil, errStore
}

func (failingJobStore) GetByID(context.Context, string) (model.Document, error) {
	return nil, errStore
}

func newTestJobService() *JobService {
	return NewJobService(repository.NewMemoryJobRepository())
}

func TestParseJobFilter(t *testing.T) {
	f := ParseJobFilter("Engineering", "2", "10")
	if f.Category != "Engineering" || f.Skip != 20 || f.Limit != 10 {
		t.Errorf("unexpected filter: %+v", f)
	}
}

func TestParseJobFilter_InvalidValues(t *testing.T) {
	cases := [][2]string{{"", ""}, {"abc", "10"}, {"1", "xyz"}, {"-1", "10"}, {"1", "-5"}}
	for _, c := range cases {
		f := ParseJobFilter("", c[0], c[1])
		if f.Skip < 0 || f.Limit < 0 {
			t.Errorf("ParseJobFilter(%q, %q) produced negative values: %+v", c[0], c[1], f)
		}
	}

	f := ParseJobFilter("", "", "")
	if f.Skip != 0 || f.Limit != 0 {
		t.Errorf("expected zero filter for missing values, got %+v", f)
	}
	f = ParseJobFilter("", "abc", "10")
	if f.Skip != 0 || f.Limit != 10 {
		t.Errorf("expected skip 0 limit 10, got %+v", f)
	}
}

func TestListMine_EmailMismatch(t *testing.T) {
	svc := newTestJobService()

	_, err := svc.ListMine(context.Background(), model.Identity{"email": "b@x.com"}, "a@x.com")
	if err != ErrForbidden {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestListMine_EmptyEmail(t *testing.T) {
	svc := newTestJobService()

	_, err := svc.ListMine(context.Background(), model.Identity{}, "")
	if err != ErrForbidden {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestListMine_OwnPostingsOnly(t *testing.T) {
	svc := newTestJobService()
	ctx := context.Background()
	svc.Create(ctx, model.Document{"postedEmail": "a@x.com", "JobTitle": "One"})
	svc.Create(ctx, model.Document{"postedEmail": "b@x.com", "JobTitle": "Two"})

	docs, err := svc.ListMine(ctx, model.Identity{"email": "a@x.com"}, "a@x.com")
	if err != nil {
		t.Fatalf("ListMine() unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0]["JobTitle"] != "One" {
		t.Errorf("unexpected postings: %v", docs)
	}
}

func TestGet_InvalidID(t *testing.T) {
	_, err := newTestJobService().Get(context.Background(), "not-hex")
	if err != ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	svc := NewJobService(failingJobStore{})

	_, err := svc.List(context.Background(), model.JobFilter{})
	if !errors.Is(err, errStore) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
	if err == errStore {
		t.Error("expected store error to carry operation context")
	}

	_, err = svc.Get(context.Background(), "anything")
	if !errors.Is(err, errStore) || errors.Is(err, ErrInvalidID) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestRecordApplication_Twice(t *testing.T) {
	svc := newTestJobService()
	ctx := context.Background()

	res, err := svc.Create(ctx, model.Document{"AppliedCount": 0.0})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	id := hexID(t, res.InsertedID)

	for i := 0; i < 2; i++ {
		if _, err := svc.RecordApplication(ctx, id); err != nil {
			t.Fatalf("RecordApplication() unexpected error: %v", err)
		}
	}

	doc, _ := svc.Get(ctx, id)
	if doc["AppliedCount"] != 2.0 {
		t.Errorf("AppliedCount = %v, want 2", doc["AppliedCount"])
	}
}
