package tasks

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskRef identifies a task on behalf of a requesting user.
type TaskRef struct {
	ID     domain.TaskID
	UserID domain.UserID
}

// CompleteTask marks a task as completed.
type CompleteTask struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewCompleteTask creates the use case.
func NewCompleteTask(tasks store.TaskStore, logger *slog.Logger) *CompleteTask {
	return &CompleteTask{tasks: tasks, logger: componentLogger(logger, "complete_task")}
}

// Execute completes the task. Completing a completed task refreshes its
// completion time.
func (uc *CompleteTask) Execute(ctx context.Context, input TaskRef) (*domain.Task, error) {
	task, err := loadTask(ctx, uc.tasks, uc.logger, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	task.MarkAsCompleted()
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, service.FromStoreError(err, resourceTask, input.ID.String())
	}
	return task, nil
}

// UncompleteTask moves a task back to pending.
type UncompleteTask struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewUncompleteTask creates the use case.
func NewUncompleteTask(tasks store.TaskStore, logger *slog.Logger) *UncompleteTask {
	return &UncompleteTask{tasks: tasks, logger: componentLogger(logger, "uncomplete_task")}
}

// Execute clears the task's completion.
func (uc *UncompleteTask) Execute(ctx context.Context, input TaskRef) (*domain.Task, error) {
	task, err := loadTask(ctx, uc.tasks, uc.logger, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	task.MarkAsIncomplete()
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, service.FromStoreError(err, resourceTask, input.ID.String())
	}
	return task, nil
}
