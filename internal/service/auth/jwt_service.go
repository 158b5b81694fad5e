package auth

import (
	"context"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
)

// JWTService issues and verifies access tokens.
type JWTService interface {
	// GenerateToken signs an access token for the user.
	GenerateToken(ctx context.Context, userID domain.UserID, email domain.Email) (*Token, error)

	// ValidateToken verifies tokenString and returns its claims. It fails with
	// ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Token is a signed access token and the moment it stops being accepted.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Claims are the verified contents of an access token.
type Claims struct {
	UserID    domain.UserID
	Email     string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
