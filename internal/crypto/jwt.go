package crypto

import (
	"errors"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hirefusion/hirefusion-go/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TokenIssuer signs and verifies HS256 session tokens carrying caller-supplied claims.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer that signs with secret and expires tokens after ttl.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs payload as the token's claims, adding iat and exp.
// The payload is not inspected, so a token without an email claim is valid.
func (t *TokenIssuer) Issue(payload map[string]any) (string, error) {
	now := t.now()

	claims := make(jwt.MapClaims, len(payload)+2)
	maps.Copy(claims, payload)
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(t.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token string, returning its claims if valid.
func (t *TokenIssuer) Verify(tokenString string) (model.Identity, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return model.Identity(claims), nil
}
