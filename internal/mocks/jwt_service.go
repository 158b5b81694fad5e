package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/auth"
)

// JWTService implements auth.JWTService with overridable functions and
// fixed defaults.
type JWTService struct {
	GenerateTokenFn func(ctx context.Context, userID domain.UserID, email domain.Email) (*auth.Token, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Defaults used when the functions are nil.
	Token       string
	ExpiresAt   time.Time
	Err         error
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.JWTService = (*JWTService)(nil)

// GenerateToken implements auth.JWTService.
func (m *JWTService) GenerateToken(
	ctx context.Context,
	userID domain.UserID,
	email domain.Email,
) (*auth.Token, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &auth.Token{AccessToken: m.Token, ExpiresAt: m.ExpiresAt}, nil
}

// ValidateToken implements auth.JWTService.
func (m *JWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
