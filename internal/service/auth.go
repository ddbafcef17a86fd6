package service

import (
	"github.com/hirefusion/hirefusion-go/internal/crypto"
)

// AuthService issues session tokens for caller-supplied identities.
type AuthService struct {
	issuer *crypto.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(issuer *crypto.TokenIssuer) *AuthService {
	return &AuthService{issuer: issuer}
}

// StartSession signs the claims the client sent. No credentials are checked.
func (s *AuthService) StartSession(claims map[string]any) (string, error) {
	return s.issuer.Issue(claims)
}
