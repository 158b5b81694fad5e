package users

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

const resourceUser = "User"

// CreateUser persists a new user.
type CreateUser struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewCreateUser creates the use case. Pass a transactional store obtained
// from WithTx to make the insert part of a larger unit of work.
func NewCreateUser(users store.UserStore, logger *slog.Logger) *CreateUser {
	return &CreateUser{users: users, logger: componentLogger(logger, "create_user")}
}

// Execute returns the stored user with its assigned ID.
func (uc *CreateUser) Execute(ctx context.Context, name domain.Name) (*domain.User, error) {
	created, err := uc.users.Create(ctx, domain.NewUser(name))
	if err != nil {
		return nil, service.FromStoreError(err, resourceUser, "")
	}

	logger.FromContextOrDefault(ctx, uc.logger).Debug("user created",
		slog.String("user_id", created.ID.String()))
	return created, nil
}

func componentLogger(log *slog.Logger, name string) *slog.Logger {
	if log == nil {
		log = slog.Default()
	}
	return log.With(slog.String("component", name))
}
