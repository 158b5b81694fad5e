package users

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// GetUserByID looks up a single user.
type GetUserByID struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewGetUserByID creates the use case.
func NewGetUserByID(users store.UserStore, logger *slog.Logger) *GetUserByID {
	return &GetUserByID{users: users, logger: componentLogger(logger, "get_user")}
}

// Execute fails with ResourceNotFound when id is unknown.
func (uc *GetUserByID) Execute(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, service.FromStoreError(err, resourceUser, id.String())
	}
	return user, nil
}
