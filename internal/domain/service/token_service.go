// Package service defines the domain-facing interfaces for infrastructure
// services (tokens, hashing, events, media, QR codes).
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the JWT pair the auth boundary uses to
// resolve caller identity.
type TokenService interface {
	// GenerateTokens creates an access/refresh token pair for a user and role.
	GenerateTokens(userID uuid.UUID, role string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
