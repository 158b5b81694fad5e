package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/users"
	"github.com/phrazzld/todo-api/internal/store"
)

const codeCredentials domain.Code = "credential_error"

// SignUpInput carries validated registration details.
type SignUpInput struct {
	Email    domain.Email
	Password domain.Password
	Name     domain.Name
}

// Result identifies the authenticated user.
type Result struct {
	UserID domain.UserID
	Email  domain.Email
}

// SignUp registers a user and the identity they sign in with.
type SignUp struct {
	db         store.TxBeginner
	users      store.UserStore
	identities store.IdentityStore
	logger     *slog.Logger
}

// NewSignUp creates the use case. db starts the transaction that holds both
// the user and identity inserts.
func NewSignUp(
	db store.TxBeginner,
	users store.UserStore,
	identities store.IdentityStore,
	logger *slog.Logger,
) *SignUp {
	if logger == nil {
		logger = slog.Default()
	}
	return &SignUp{
		db:         db,
		users:      users,
		identities: identities,
		logger:     logger.With(slog.String("component", "sign_up")),
	}
}

// Execute fails with EmailAlreadyExists, without writing anything, when the
// email is already registered.
func (uc *SignUp) Execute(ctx context.Context, input SignUpInput) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, uc.logger)

	_, err := uc.identities.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, service.EmailAlreadyExists(input.Email.String())
	case !store.IsNotFoundError(err):
		return nil, service.FromStoreError(err, "Identity", input.Email.String())
	}

	var userID domain.UserID
	err = store.RunInTransaction(ctx, uc.db, func(ctx context.Context, tx *sql.Tx) error {
		user, err := users.NewCreateUser(uc.users.WithTx(tx), uc.logger).Execute(ctx, input.Name)
		if err != nil {
			return err
		}

		identity, err := domain.NewIdentity(user.ID, input.Email, input.Password)
		if err != nil {
			return domain.NewError(domain.KindInfrastructure, codeCredentials,
				"Failed to secure credentials", err)
		}
		if err := uc.identities.WithTx(tx).Create(ctx, identity); err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				return service.EmailAlreadyExists(input.Email.String())
			}
			return service.FromStoreError(err, "Identity", input.Email.String())
		}

		userID = user.ID
		return nil
	})
	if err != nil {
		if _, ok := domain.KindOf(err); ok {
			return nil, err
		}
		return nil, service.FromStoreError(fmt.Errorf("sign up: %w", err), "User", "")
	}

	log.Info("user signed up", slog.String("user_id", userID.String()))
	return &Result{UserID: userID, Email: input.Email}, nil
}
