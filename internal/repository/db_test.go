package repository

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewJobRepository(t *testing.T) {
	repo := NewJobRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil JobRepository")
	}
	if repo.coll != nil {
		t.Fatal("expected nil collection when constructed with nil")
	}
}

func TestNewApplicationRepository(t *testing.T) {
	repo := NewApplicationRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil ApplicationRepository")
	}
	if repo.coll != nil {
		t.Fatal("expected nil collection when constructed with nil")
	}
}

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := parseObjectID(oid.Hex())
	if err != nil {
		t.Fatalf("parseObjectID() unexpected error: %v", err)
	}
	if got != oid {
		t.Errorf("parseObjectID() = %s, want %s", got.Hex(), oid.Hex())
	}
}

func TestParseObjectIDInvalid(t *testing.T) {
	for _, id := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", "not-an-object-id"} {
		if _, err := parseObjectID(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("parseObjectID(%q) error = %v, want ErrInvalidID", id, err)
		}
	}
}

func TestInvalidIDRejectedBeforeStore(t *testing.T) {
	// A nil collection would panic if the query were ever sent.
	jobs := NewJobRepository((*mongo.Collection)(nil))

	if _, err := jobs.GetByID(t.Context(), "bad"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("GetByID() error = %v, want ErrInvalidID", err)
	}
	if _, err := jobs.Delete(t.Context(), "bad"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Delete() error = %v, want ErrInvalidID", err)
	}
	if _, err := jobs.IncrementApplied(t.Context(), "bad"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("IncrementApplied() error = %v, want ErrInvalidID", err)
	}

	apps := NewApplicationRepository(nil)
	if _, err := apps.GetByID(t.Context(), "bad"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("GetByID() error = %v, want ErrInvalidID", err)
	}
}
