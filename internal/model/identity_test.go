package model

import "testing"

func TestIdentityEmail(t *testing.T) {
	id := Identity{"email": "a@x.com", "name": "A"}
	if got := id.Email(); got != "a@x.com" {
		t.Errorf("Email() = %q, want %q", got, "a@x.com")
	}
}

func TestIdentityEmailMissingOrWrongType(t *testing.T) {
	if got := (Identity{}).Email(); got != "" {
		t.Errorf("Email() on empty identity = %q, want empty", got)
	}
	if got := (Identity{"email": 42}).Email(); got != "" {
		t.Errorf("Email() on numeric claim = %q, want empty", got)
	}
}

func TestJobUpdateFieldsOrder(t *testing.T) {
	fields := JobUpdate{JobTitle: "Go Dev", Salary: 100}.Fields()
	if len(fields) != 11 {
		t.Fatalf("expected 11 fields, got %d", len(fields))
	}
	if fields[0].Key != "JobTitle" || fields[0].Value != "Go Dev" {
		t.Errorf("unexpected first field: %+v", fields[0])
	}
	if fields[1].Key != JobCategoryKey || fields[1].Value != nil {
		t.Errorf("expected nil Category, got %+v", fields[1])
	}
}
