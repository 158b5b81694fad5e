package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskColumnNames = []string{
	"id", "user_id", "title", "description", "completed", "created_at", "updated_at", "completed_at",
}

func newTestTask(t *testing.T, userID domain.UserID) *domain.Task {
	t.Helper()
	title, err := domain.NewTaskTitle("Buy milk")
	require.NoError(t, err)
	desc, err := domain.NewTaskDescription("")
	require.NoError(t, err)
	return domain.NewTask(userID, title, desc)
}

func TestNewPostgresTaskStorePanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() { NewPostgresTaskStore(nil, nil) })
}

func TestPostgresTaskStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("returns task with database id", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)
		userID := mustUserID(t)
		task := newTestTask(t, userID)
		newID := mustTaskID(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tasks")).
			WithArgs("Buy milk", "", userID.String(), false, task.CreatedAt, nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID.String()))

		created, err := s.Create(ctx, task)
		require.NoError(t, err)
		assert.Equal(t, newID, created.ID)
		assert.True(t, task.ID.IsEmpty(), "input task must not be modified")
		assert.Equal(t, task.Title, created.Title)
	})

	t.Run("missing owner", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tasks")).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "tasks_user_id_fkey"})

		_, err := s.Create(ctx, newTestTask(t, mustUserID(t)))
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("connection failure is an infrastructure error", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tasks")).
			WillReturnError(errors.New("connection refused"))

		_, err := s.Create(ctx, newTestTask(t, mustUserID(t)))
		assert.ErrorIs(t, err, store.ErrDatabase)
		kind, ok := domain.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindInfrastructure, kind)
	})
}

func TestPostgresTaskStore_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)
		id, userID := mustTaskID(t), mustUserID(t)
		done := created.Add(time.Hour)

		mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1")).
			WithArgs(id.String()).
			WillReturnRows(sqlmock.NewRows(taskColumnNames).
				AddRow(id.String(), userID.String(), "Buy milk", "Two litres", true, created, done, done))

		task, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, task.ID)
		assert.Equal(t, userID, task.UserID)
		assert.Equal(t, "Two litres", task.Description.String())
		assert.True(t, task.Completed)
		require.NotNil(t, task.CompletedAt)
		assert.Equal(t, done, *task.CompletedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)

		mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1")).
			WillReturnRows(sqlmock.NewRows(taskColumnNames))

		_, err := s.GetByID(ctx, mustTaskID(t))
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("stored row failing validation", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)
		id := mustTaskID(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1")).
			WillReturnRows(sqlmock.NewRows(taskColumnNames).
				AddRow(id.String(), mustUserID(t).String(), "ab", "", false, created, nil, nil))

		_, err := s.GetByID(ctx, id)
		assert.ErrorIs(t, err, store.ErrDatabase)
		assert.NotErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresTaskStore_List(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	s := NewPostgresTaskStore(db, testLogger)

	userID := mustUserID(t)
	title := "50%_off"
	completed := true
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	taskID := mustTaskID(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND title ILIKE $2 AND completed = $3 " +
			"AND created_at >= $4 AND created_at <= $5")).
		WithArgs(userID.String(), `%50\%\_off%`, true, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id LIMIT $6 OFFSET $7")).
		WithArgs(userID.String(), `%50\%\_off%`, true, from, to, 10, 10).
		WillReturnRows(sqlmock.NewRows(taskColumnNames).
			AddRow(taskID.String(), userID.String(), "50%_off sale", "", true, created, created, created))

	tasks, total, err := s.List(ctx, store.TaskFilter{
		UserID:      userID,
		Title:       &title,
		Completed:   &completed,
		CreatedFrom: &from,
		CreatedTo:   &to,
		Offset:      10,
		Limit:       10,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, total)
	require.Len(t, tasks, 1)
	assert.Equal(t, taskID, tasks[0].ID)
}

func TestPostgresTaskStore_ListWithoutOptionalFilters(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresTaskStore(db, testLogger)
	userID := mustUserID(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tasks WHERE user_id = $1")).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 ORDER BY created_at DESC, id LIMIT $2")).
		WithArgs(userID.String(), 10).
		WillReturnRows(sqlmock.NewRows(taskColumnNames))

	tasks, total, err := s.List(context.Background(), store.TaskFilter{UserID: userID, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestPostgresTaskStore_GetByUserID(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresTaskStore(db, testLogger)
	userID := mustUserID(t)
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE user_id = $1")).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows(taskColumnNames).
			AddRow(mustTaskID(t).String(), userID.String(), "First", "", false, created, nil, nil).
			AddRow(mustTaskID(t).String(), userID.String(), "Second", "", false, created, nil, nil))

	tasks, err := s.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestPostgresTaskStore_Update(t *testing.T) {
	ctx := context.Background()
	task := newTestTask(t, mustUserID(t))
	task.ID = mustTaskID(t)
	task.MarkAsCompleted()

	t.Run("updates row", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks")).
			WithArgs("Buy milk", "", true, *task.UpdatedAt, *task.CompletedAt, task.ID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Update(ctx, task))
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Update(ctx, task), store.ErrTaskNotFound)
	})
}

func TestPostgresTaskStore_Delete(t *testing.T) {
	ctx := context.Background()
	id := mustTaskID(t)

	t.Run("deletes row", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks WHERE id = $1")).
			WithArgs(id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Delete(ctx, id))
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresTaskStore(db, testLogger)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks WHERE id = $1")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Delete(ctx, id), store.ErrTaskNotFound)
	})
}

func TestPostgresTaskStore_WithTx(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresTaskStore(db, testLogger)
	id := mustTaskID(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, s.WithTx(tx).Delete(context.Background(), id))
	require.NoError(t, tx.Commit())
}

func TestBuildTaskFilter(t *testing.T) {
	userID := mustUserID(t)

	where, args := buildTaskFilter(store.TaskFilter{UserID: userID})
	assert.Equal(t, " WHERE user_id = $1", where)
	assert.Equal(t, []any{userID.String()}, args)

	empty := ""
	where, args = buildTaskFilter(store.TaskFilter{UserID: userID, Title: &empty})
	assert.Equal(t, " WHERE user_id = $1", where, "an empty title does not filter")
	assert.Equal(t, []any{userID.String()}, args)

	incomplete := false
	where, args = buildTaskFilter(store.TaskFilter{UserID: userID, Completed: &incomplete})
	assert.Equal(t, " WHERE user_id = $1 AND completed = $2", where)
	assert.Equal(t, []any{userID.String(), false}, args)
}

func TestPostgresTaskStore_ListRequiresUser(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresTaskStore(db, testLogger)

	tasks, total, err := s.List(context.Background(), store.TaskFilter{Limit: 10})

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.Nil(t, tasks)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query may run without a user")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
