package auth

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// SignInInput carries the credentials presented by the client.
type SignInInput struct {
	Email    domain.Email
	Password domain.Password
}

// SignIn checks credentials against the stored identity.
type SignIn struct {
	users      store.UserStore
	identities store.IdentityStore
	logger     *slog.Logger
}

// NewSignIn creates the use case.
func NewSignIn(users store.UserStore, identities store.IdentityStore, logger *slog.Logger) *SignIn {
	if logger == nil {
		logger = slog.Default()
	}
	return &SignIn{
		users:      users,
		identities: identities,
		logger:     logger.With(slog.String("component", "sign_in")),
	}
}

// Execute resolves the identity by email, verifies the password and then
// resolves the user the identity belongs to.
func (uc *SignIn) Execute(ctx context.Context, input SignInInput) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, uc.logger)

	identity, err := uc.identities.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, service.FromStoreError(err, "Identity", input.Email.String())
	}

	if !identity.ValidatePassword(input.Password) {
		log.Debug("sign in rejected: wrong password", slog.String("user_id", identity.UserID.String()))
		return nil, service.WrongPassword()
	}

	user, err := uc.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, service.FromStoreError(err, "User", identity.UserID.String())
	}

	return &Result{UserID: user.ID, Email: identity.Email}, nil
}
