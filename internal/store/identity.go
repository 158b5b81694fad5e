package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/todo-api/internal/domain"
)

// IdentityStore defines the interface for credential persistence.
type IdentityStore interface {
	// Create returns ErrEmailExists if the email is already registered.
	Create(ctx context.Context, identity *domain.Identity) error

	// GetByEmail returns ErrIdentityNotFound if no identity uses email.
	GetByEmail(ctx context.Context, email domain.Email) (*domain.Identity, error)

	// Update persists the password hash and updated_at of the identity
	// registered under identity.Email.
	// Returns ErrIdentityNotFound if it does not exist.
	Update(ctx context.Context, identity *domain.Identity) error

	// Delete returns ErrIdentityNotFound if no identity uses email.
	Delete(ctx context.Context, email domain.Email) error

	// WithTx returns an IdentityStore that runs against tx.
	WithTx(tx *sql.Tx) IdentityStore
}
