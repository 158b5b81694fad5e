package tasks

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

const resourceTask = "Task"

// loadTask fetches id and enforces ownership when requester is set.
func loadTask(
	ctx context.Context,
	tasks store.TaskStore,
	log *slog.Logger,
	id domain.TaskID,
	requester domain.UserID,
) (*domain.Task, error) {
	log = logger.FromContextOrDefault(ctx, log)

	task, err := tasks.GetByID(ctx, id)
	if err != nil {
		return nil, service.FromStoreError(err, resourceTask, id.String())
	}
	if !requester.IsEmpty() && !task.IsOwnedBy(requester) {
		log.Warn("task requested by non-owner",
			slog.String("task_id", id.String()),
			slog.String("requester_id", requester.String()))
		return nil, service.ResourceNotFound(resourceTask, id.String())
	}
	return task, nil
}

func componentLogger(log *slog.Logger, name string) *slog.Logger {
	if log == nil {
		log = slog.Default()
	}
	return log.With(slog.String("component", name))
}
