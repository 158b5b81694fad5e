package users

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// DeleteUser removes a user. Tasks and identity go with it through the
// schema's cascading foreign keys.
type DeleteUser struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewDeleteUser creates the use case.
func NewDeleteUser(users store.UserStore, logger *slog.Logger) *DeleteUser {
	return &DeleteUser{users: users, logger: componentLogger(logger, "delete_user")}
}

// Execute fails with ResourceNotFound when id is unknown.
func (uc *DeleteUser) Execute(ctx context.Context, id domain.UserID) error {
	if _, err := uc.users.GetByID(ctx, id); err != nil {
		return service.FromStoreError(err, resourceUser, id.String())
	}
	if err := uc.users.Delete(ctx, id); err != nil {
		return service.FromStoreError(err, resourceUser, id.String())
	}

	logger.FromContextOrDefault(ctx, uc.logger).Info("user deleted",
		slog.String("user_id", id.String()))
	return nil
}
