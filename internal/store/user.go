package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/todo-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create inserts a user and returns it with the identifier assigned by
	// the database.
	Create(ctx context.Context, user domain.User) (*domain.User, error)

	// GetByID returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)

	// Update persists the user's name.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user domain.User) error

	// Delete removes the user together with their identity and tasks.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id domain.UserID) error

	// WithTx returns a UserStore that runs against tx.
	WithTx(tx *sql.Tx) UserStore
}
