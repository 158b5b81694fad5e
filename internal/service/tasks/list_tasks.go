package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListTasksInput filters a user's tasks. Nil filters are not applied.
type ListTasksInput struct {
	UserID      domain.UserID
	Title       *string
	Completed   *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	Limit       int
}

// ListTasksOutput is one page of tasks and the total across all pages.
type ListTasksOutput struct {
	Tasks []*domain.Task
	Total int
	Page  int
	Limit int
}

// ListTasks returns a filtered, paginated view of a user's tasks.
type ListTasks struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewListTasks creates the use case.
func NewListTasks(tasks store.TaskStore, logger *slog.Logger) *ListTasks {
	return &ListTasks{tasks: tasks, logger: componentLogger(logger, "list_tasks")}
}

// Execute skips (page-1)*limit matching tasks and returns at most limit.
// A page below 1 is treated as 1, a limit below 1 as DefaultLimit and a
// limit above MaxLimit as MaxLimit. An empty UserID fails with an invalid ID
// error; listings are always scoped to one user.
func (uc *ListTasks) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	if input.UserID.IsEmpty() {
		_, err := domain.NewUserID(input.UserID.String())
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := input.Limit
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	tasks, total, err := uc.tasks.List(ctx, store.TaskFilter{
		UserID:      input.UserID,
		Title:       input.Title,
		Completed:   input.Completed,
		CreatedFrom: input.CreatedFrom,
		CreatedTo:   input.CreatedTo,
		Offset:      (page - 1) * limit,
		Limit:       limit,
	})
	if err != nil {
		return nil, service.FromStoreError(err, resourceTask, "")
	}

	return &ListTasksOutput{Tasks: tasks, Total: total, Page: page, Limit: limit}, nil
}
