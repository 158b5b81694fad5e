package tasks_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/tasks"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	ownerID    = "6f1c2d2e-8a4b-4c3d-9e5f-0a1b2c3d4e5f"
	strangerID = "0b7e6a1c-3d2f-4e8a-b9c0-1d2e3f4a5b6c"
	taskID     = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustUserID(t *testing.T, raw string) domain.UserID {
	t.Helper()
	id, err := domain.NewUserID(raw)
	require.NoError(t, err)
	return id
}

func mustTaskID(t *testing.T, raw string) domain.TaskID {
	t.Helper()
	id, err := domain.NewTaskID(raw)
	require.NoError(t, err)
	return id
}

func mustTitle(t *testing.T, raw string) domain.TaskTitle {
	t.Helper()
	title, err := domain.NewTaskTitle(raw)
	require.NoError(t, err)
	return title
}

func mustDescription(t *testing.T, raw string) domain.TaskDescription {
	t.Helper()
	d, err := domain.NewTaskDescription(raw)
	require.NoError(t, err)
	return d
}

func storedTask(t *testing.T) *domain.Task {
	t.Helper()
	task := domain.NewTask(mustUserID(t, ownerID), mustTitle(t, "Buy milk"), mustDescription(t, "Two litres"))
	task.ID = mustTaskID(t, taskID)
	return task
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	t.Run("assigns id from store", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("Create", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
			return task.ID.IsEmpty() && !task.Completed && task.Title.String() == "Buy milk"
		})).Return(storedTask(t), nil)

		uc := tasks.NewCreateTask(ts, testLogger())
		got, err := uc.Execute(context.Background(), tasks.CreateTaskInput{
			UserID:      mustUserID(t, ownerID),
			Title:       mustTitle(t, "Buy milk"),
			Description: mustDescription(t, "Two litres"),
		})

		require.NoError(t, err)
		assert.Equal(t, taskID, got.ID.String())
		ts.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("Create", mock.Anything, mock.Anything).Return(nil, store.ErrInvalidEntity)

		uc := tasks.NewCreateTask(ts, testLogger())
		_, err := uc.Execute(context.Background(), tasks.CreateTaskInput{
			UserID: mustUserID(t, ownerID),
			Title:  mustTitle(t, "Buy milk"),
		})

		assert.ErrorIs(t, err, service.ErrResourceNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		uc := tasks.NewCreateTask(ts, testLogger())
		_, err := uc.Execute(context.Background(), tasks.CreateTaskInput{
			UserID: mustUserID(t, ownerID),
			Title:  mustTitle(t, "Buy milk"),
		})

		assert.ErrorIs(t, err, store.ErrDatabase)
		kind, ok := domain.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindInfrastructure, kind)
	})
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	t.Run("applies only provided fields", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("GetByID", mock.Anything, mustTaskID(t, taskID)).Return(storedTask(t), nil)
		ts.On("Update", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
			return task.Title.String() == "Buy oat milk" && task.Description.String() == "Two litres"
		})).Return(nil)

		title := mustTitle(t, "Buy oat milk")
		uc := tasks.NewUpdateTask(ts, testLogger())
		got, err := uc.Execute(context.Background(), tasks.UpdateTaskInput{
			ID:     mustTaskID(t, taskID),
			UserID: mustUserID(t, ownerID),
			Title:  &title,
		})

		require.NoError(t, err)
		assert.NotNil(t, got.UpdatedAt)
		ts.AssertExpectations(t)
	})

	t.Run("empty description clears it", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("GetByID", mock.Anything, mustTaskID(t, taskID)).Return(storedTask(t), nil)
		ts.On("Update", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
			return task.Description.String() == "" && task.Title.String() == "Buy milk"
		})).Return(nil)

		cleared := mustDescription(t, "")
		uc := tasks.NewUpdateTask(ts, testLogger())
		got, err := uc.Execute(context.Background(), tasks.UpdateTaskInput{
			ID:          mustTaskID(t, taskID),
			UserID:      mustUserID(t, ownerID),
			Description: &cleared,
		})

		require.NoError(t, err)
		assert.Empty(t, got.Description.String())
		ts.AssertExpectations(t)
	})

	t.Run("no fields skips write", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("GetByID", mock.Anything, mock.Anything).Return(storedTask(t), nil)

		uc := tasks.NewUpdateTask(ts, testLogger())
		_, err := uc.Execute(context.Background(), tasks.UpdateTaskInput{ID: mustTaskID(t, taskID)})

		require.NoError(t, err)
		ts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing task", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("GetByID", mock.Anything, mock.Anything).Return(nil, store.ErrTaskNotFound)

		uc := tasks.NewUpdateTask(ts, testLogger())
		_, err := uc.Execute(context.Background(), tasks.UpdateTaskInput{ID: mustTaskID(t, taskID)})

		assert.ErrorIs(t, err, service.ErrResourceNotFound)
		assert.Contains(t, err.Error(), "Resource Task with ID "+taskID+" not found")
	})

	t.Run("other owner", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("GetByID", mock.Anything, mock.Anything).Return(storedTask(t), nil)

		title := mustTitle(t, "Hijacked")
		uc := tasks.NewUpdateTask(ts, testLogger())
		_, err := uc.Execute(context.Background(), tasks.UpdateTaskInput{
			ID:     mustTaskID(t, taskID),
			UserID: mustUserID(t, strangerID),
			Title:  &title,
		})

		assert.ErrorIs(t, err, service.ErrResourceNotFound)
		ts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCompleteAndUncompleteTask(t *testing.T) {
	t.Parallel()

	ts := &mocks.TaskStore{}
	task := storedTask(t)
	ts.On("GetByID", mock.Anything, task.ID).Return(task, nil)
	ts.On("Update", mock.Anything, task).Return(nil)

	ref := tasks.TaskRef{ID: task.ID, UserID: task.UserID}

	completed, err := tasks.NewCompleteTask(ts, testLogger()).Execute(context.Background(), ref)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	assert.NotNil(t, completed.CompletedAt)

	pending, err := tasks.NewUncompleteTask(ts, testLogger()).Execute(context.Background(), ref)
	require.NoError(t, err)
	assert.False(t, pending.Completed)
	assert.Nil(t, pending.CompletedAt)

	ts.AssertNumberOfCalls(t, "Update", 2)
}

func TestCompleteTaskNotFound(t *testing.T) {
	t.Parallel()

	ts := &mocks.TaskStore{}
	ts.On("GetByID", mock.Anything, mock.Anything).Return(nil, store.ErrTaskNotFound)

	_, err := tasks.NewCompleteTask(ts, testLogger()).Execute(context.Background(),
		tasks.TaskRef{ID: mustTaskID(t, taskID)})

	assert.ErrorIs(t, err, service.ErrResourceNotFound)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing task", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("GetByID", mock.Anything, mock.Anything).Return(storedTask(t), nil)
		ts.On("Delete", mock.Anything, mustTaskID(t, taskID)).Return(nil)

		err := tasks.NewDeleteTask(ts, testLogger()).Execute(context.Background(),
			tasks.TaskRef{ID: mustTaskID(t, taskID), UserID: mustUserID(t, ownerID)})

		require.NoError(t, err)
		ts.AssertExpectations(t)
	})

	t.Run("missing task", func(t *testing.T) {
		t.Parallel()
		ts := &mocks.TaskStore{}
		ts.On("GetByID", mock.Anything, mock.Anything).Return(nil, store.ErrTaskNotFound)

		err := tasks.NewDeleteTask(ts, testLogger()).Execute(context.Background(),
			tasks.TaskRef{ID: mustTaskID(t, taskID)})

		assert.ErrorIs(t, err, service.ErrResourceNotFound)
		ts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	completed := true
	title := "milk"

	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantLimit  int
		wantPage   int
	}{
		{name: "defaults", page: 0, limit: 0, wantOffset: 0, wantLimit: 10, wantPage: 1},
		{name: "third page", page: 3, limit: 20, wantOffset: 40, wantLimit: 20, wantPage: 3},
		{name: "limit capped", page: 2, limit: 500, wantOffset: 100, wantLimit: 100, wantPage: 2},
		{name: "negative page", page: -4, limit: 5, wantOffset: 0, wantLimit: 5, wantPage: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ts := &mocks.TaskStore{}
			ts.On("List", mock.Anything, mock.MatchedBy(func(f store.TaskFilter) bool {
				return f.Offset == tc.wantOffset &&
					f.Limit == tc.wantLimit &&
					f.UserID.String() == ownerID &&
					f.Completed != nil && *f.Completed &&
					f.Title != nil && *f.Title == title
			})).Return([]*domain.Task{storedTask(t)}, 41, nil)

			out, err := tasks.NewListTasks(ts, testLogger()).Execute(context.Background(), tasks.ListTasksInput{
				UserID:    mustUserID(t, ownerID),
				Title:     &title,
				Completed: &completed,
				Page:      tc.page,
				Limit:     tc.limit,
			})

			require.NoError(t, err)
			assert.Equal(t, 41, out.Total)
			assert.Equal(t, tc.wantPage, out.Page)
			assert.Equal(t, tc.wantLimit, out.Limit)
			assert.Len(t, out.Tasks, 1)
			ts.AssertExpectations(t)
		})
	}
}

func TestListTasksStoreFailure(t *testing.T) {
	t.Parallel()

	ts := &mocks.TaskStore{}
	ts.On("List", mock.Anything, mock.Anything).Return(nil, 0, errors.New("timeout"))

	_, err := tasks.NewListTasks(ts, testLogger()).Execute(context.Background(),
		tasks.ListTasksInput{UserID: mustUserID(t, ownerID)})

	assert.ErrorIs(t, err, store.ErrDatabase)
}

func TestListTasksRequiresUser(t *testing.T) {
	t.Parallel()

	ts := &mocks.TaskStore{}

	_, err := tasks.NewListTasks(ts, testLogger()).Execute(context.Background(),
		tasks.ListTasksInput{UserID: domain.EmptyUserID()})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindDomain, kind)
	ts.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
