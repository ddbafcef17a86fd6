package service

import (
	"testing"
	"time"

	"github.com/hirefusion/hirefusion-go/internal/crypto"
)

func TestStartSession_RoundTrip(t *testing.T) {
	issuer := crypto.NewTokenIssuer("test-secret", time.Hour)
	svc := NewAuthService(issuer)

	token, err := svc.StartSession(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("StartSession() unexpected error: %v", err)
	}

	identity, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if identity.Email() != "a@x.com" {
		t.Errorf("expected email a@x.com, got %q", identity.Email())
	}
}
