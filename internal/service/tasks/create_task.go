package tasks

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// CreateTaskInput carries an already validated task.
type CreateTaskInput struct {
	UserID      domain.UserID
	Title       domain.TaskTitle
	Description domain.TaskDescription
}

// CreateTask creates a pending task for a user.
type CreateTask struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewCreateTask creates the use case.
func NewCreateTask(tasks store.TaskStore, logger *slog.Logger) *CreateTask {
	return &CreateTask{tasks: tasks, logger: componentLogger(logger, "create_task")}
}

// Execute persists the task and returns it with its assigned ID.
func (uc *CreateTask) Execute(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, uc.logger)

	task := domain.NewTask(input.UserID, input.Title, input.Description)
	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, service.ResourceNotFound("User", input.UserID.String())
		}
		return nil, service.FromStoreError(err, resourceTask, "")
	}

	log.Debug("task created",
		slog.String("task_id", created.ID.String()),
		slog.String("user_id", input.UserID.String()))
	return created, nil
}
