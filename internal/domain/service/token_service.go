package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims carries the verified identity extracted from a bearer token.
type TokenClaims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string // "access" or "refresh"
}

// TokenService defines the contract for issuing and validating bearer tokens.
// Account management itself belongs to the external authentication provider;
// this service only covers what the API surface needs.
type TokenService interface {
	// GenerateTokens creates an access and refresh token pair for a user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies a token string and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
