package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TaskFilter narrows a task listing. Nil pointer fields are not applied and
// all applied predicates are combined with AND.
type TaskFilter struct {
	// UserID is required; listings never span users.
	UserID domain.UserID

	// Title matches tasks whose title contains it, ignoring case.
	Title *string

	Completed *bool

	// CreatedFrom and CreatedTo bound created_at, both inclusive.
	CreatedFrom *time.Time
	CreatedTo   *time.Time

	Offset int
	Limit  int
}

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// List returns one page of tasks matching filter, newest first, together
	// with the total number of matching tasks across all pages.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, int, error)

	// Create inserts a task and returns it with the identifier assigned by
	// the database.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// GetByID returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id domain.TaskID) (*domain.Task, error)

	// GetByUserID returns every task owned by userID.
	GetByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Task, error)

	// Update persists title, description, completion state and timestamps.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id domain.TaskID) error

	// WithTx returns a TaskStore that runs against tx.
	WithTx(tx *sql.Tx) TaskStore
}
