package tasks

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// UpdateTaskInput names the task and the fields to replace. Nil fields are
// left untouched; a non-nil empty Description clears the description.
type UpdateTaskInput struct {
	ID          domain.TaskID
	UserID      domain.UserID
	Title       *domain.TaskTitle
	Description *domain.TaskDescription
}

// UpdateTask changes a task's title and/or description.
type UpdateTask struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewUpdateTask creates the use case.
func NewUpdateTask(tasks store.TaskStore, logger *slog.Logger) *UpdateTask {
	return &UpdateTask{tasks: tasks, logger: componentLogger(logger, "update_task")}
}

// Execute applies the provided fields and persists the task.
func (uc *UpdateTask) Execute(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	task, err := loadTask(ctx, uc.tasks, uc.logger, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title == nil && input.Description == nil {
		return task, nil
	}
	if input.Title != nil {
		task.UpdateTitle(*input.Title)
	}
	if input.Description != nil {
		task.UpdateDescription(*input.Description)
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, service.FromStoreError(err, resourceTask, input.ID.String())
	}
	return task, nil
}
