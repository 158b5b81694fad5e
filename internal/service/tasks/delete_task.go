package tasks

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// DeleteTask removes a task.
type DeleteTask struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewDeleteTask creates the use case.
func NewDeleteTask(tasks store.TaskStore, logger *slog.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, logger: componentLogger(logger, "delete_task")}
}

// Execute fails with ResourceNotFound when the task does not exist.
func (uc *DeleteTask) Execute(ctx context.Context, input TaskRef) error {
	if _, err := loadTask(ctx, uc.tasks, uc.logger, input.ID, input.UserID); err != nil {
		return err
	}

	if err := uc.tasks.Delete(ctx, input.ID); err != nil {
		return service.FromStoreError(err, resourceTask, input.ID.String())
	}

	logger.FromContextOrDefault(ctx, uc.logger).Debug("task deleted",
		slog.String("task_id", input.ID.String()))
	return nil
}
