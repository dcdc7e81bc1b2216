package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken issues a signed, time-limited token whose subject is the user ID.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks signature, algorithm and expiry, and returns the decoded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
