package users

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// UpdateUserInput names the user and, optionally, a replacement name.
type UpdateUserInput struct {
	ID   domain.UserID
	Name *domain.Name
}

// UpdateUser renames a user.
type UpdateUser struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUpdateUser creates the use case.
func NewUpdateUser(users store.UserStore, logger *slog.Logger) *UpdateUser {
	return &UpdateUser{users: users, logger: componentLogger(logger, "update_user")}
}

// Execute keeps the current name when input.Name is nil.
func (uc *UpdateUser) Execute(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	existing, err := uc.users.GetByID(ctx, input.ID)
	if err != nil {
		return nil, service.FromStoreError(err, resourceUser, input.ID.String())
	}
	if input.Name == nil {
		return existing, nil
	}

	updated := existing.WithName(*input.Name)
	if err := uc.users.Update(ctx, updated); err != nil {
		return nil, service.FromStoreError(err, resourceUser, input.ID.String())
	}
	return &updated, nil
}
