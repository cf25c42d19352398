// Package identity resolves the current session from a presented credential.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cv-amplify/internal/domain"
	"cv-amplify/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the signed-in user.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// JWTProvider validates HS256 session tokens.
type JWTProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTProvider(secret string, ttl time.Duration) *JWTProvider {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTProvider{secret: []byte(secret), ttl: ttl}
}

// NewProvider returns the JWT provider when a secret is configured and the
// demo provider otherwise.
func NewProvider(secret string, ttl time.Duration) domain.SessionProvider {
	if secret == "" {
		return DemoProvider{}
	}
	return NewJWTProvider(secret, ttl)
}

// GenerateToken signs a token for id.
func (p *JWTProvider) GenerateToken(id domain.Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: id.ID,
		Email:  id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return s, nil
}

// ValidateToken parses and verifies a token.
func (p *JWTProvider) ValidateToken(token string) (*Claims, error) {
	if token == "" {
		return nil, errors.New("token string is empty")
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// Session never reports Loading: tokens are verified locally.
func (p *JWTProvider) Session(_ context.Context, credential string) domain.Session {
	s := domain.Session{AuthEnabled: true}
	if credential == "" {
		return s
	}
	claims, err := p.ValidateToken(credential)
	if err != nil {
		log := logger.Component("identity")
		log.Debug().Err(err).Msg("rejected session token")
		return s
	}
	s.User = &domain.Identity{ID: claims.UserID, Email: claims.Email}
	return s
}

// DemoProvider is used when authentication is not configured.
type DemoProvider struct{}

func (DemoProvider) Session(context.Context, string) domain.Session {
	return domain.DemoSession()
}
