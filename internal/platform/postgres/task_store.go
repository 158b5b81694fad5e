package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

const taskColumns = `id, user_id, title, description, completed, created_at, updated_at, completed_at`

// PostgresTaskStore implements store.TaskStore.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a task store on db, which may be a pool or a
// transaction. A nil logger falls back to slog.Default().
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx implements store.TaskStore.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx, logger: s.logger}
}

// List implements store.TaskStore.
func (s *PostgresTaskStore) List(
	ctx context.Context,
	filter store.TaskFilter,
) ([]*domain.Task, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if filter.UserID.IsEmpty() {
		return nil, 0, fmt.Errorf("%w: task listing requires a user id", store.ErrInvalidEntity)
	}
	where, args := buildTaskFilter(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM tasks" + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", filter.UserID.String()))
		return nil, 0, store.NewDatabaseError("task", "list", MapError(err))
	}

	query := "SELECT " + taskColumns + " FROM tasks" + where + " ORDER BY created_at DESC, id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	tasks, err := s.queryTasks(ctx, query, args...)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", filter.UserID.String()))
		return nil, 0, store.NewDatabaseError("task", "list", err)
	}

	log.Debug("tasks listed",
		slog.String("user_id", filter.UserID.String()),
		slog.Int("count", len(tasks)),
		slog.Int("total", total))
	return tasks, total, nil
}

// Create implements store.TaskStore.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tasks (title, description, user_id, completed, created_at, updated_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var rawID string
	err := s.db.QueryRowContext(ctx, query,
		task.Title.String(),
		task.Description.String(),
		task.UserID.String(),
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
		task.CompletedAt,
	).Scan(&rawID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("task owner does not exist", slog.String("user_id", task.UserID.String()))
			return nil, fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, task.UserID)
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("user_id", task.UserID.String()))
		return nil, store.NewDatabaseError("task", "create", MapError(err))
	}

	id, err := domain.NewTaskID(rawID)
	if err != nil {
		return nil, store.NewDatabaseError("task", "create", corruptRow("task", err))
	}

	created := *task
	created.ID = id

	log.Info("task created",
		slog.String("task_id", rawID),
		slog.String("user_id", task.UserID.String()))
	return &created, nil
}

// GetByID implements store.TaskStore.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "SELECT " + taskColumns + " FROM tasks WHERE id = $1"
	task, err := scanTask(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, store.NewDatabaseError("task", "get", MapError(err))
	}
	return task, nil
}

// GetByUserID implements store.TaskStore.
func (s *PostgresTaskStore) GetByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "SELECT " + taskColumns + " FROM tasks WHERE user_id = $1 ORDER BY created_at DESC, id"
	tasks, err := s.queryTasks(ctx, query, userID.String())
	if err != nil {
		log.Error("failed to get tasks by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewDatabaseError("task", "get_by_user", err)
	}
	return tasks, nil
}

// Update implements store.TaskStore.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, updated_at = $4, completed_at = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(ctx, query,
		task.Title.String(),
		task.Description.String(),
		task.Completed,
		task.UpdatedAt,
		task.CompletedAt,
		task.ID.String(),
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return store.NewDatabaseError("task", "update", MapError(err))
	}

	if err := checkRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return store.NewDatabaseError("task", "update", err)
	}

	log.Debug("task updated",
		slog.String("task_id", task.ID.String()),
		slog.Bool("completed", task.Completed))
	return nil
}

// Delete implements store.TaskStore.
func (s *PostgresTaskStore) Delete(ctx context.Context, id domain.TaskID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id.String())
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return store.NewDatabaseError("task", "delete", MapError(err))
	}

	if err := checkRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return store.NewDatabaseError("task", "delete", err)
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}

func (s *PostgresTaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return tasks, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		rawID, rawUserID, rawTitle, rawDescription string
		completed                                  bool
		createdAt                                  time.Time
		updatedAt, completedAt                     sql.NullTime
	)
	if err := row.Scan(
		&rawID,
		&rawUserID,
		&rawTitle,
		&rawDescription,
		&completed,
		&createdAt,
		&updatedAt,
		&completedAt,
	); err != nil {
		return nil, err
	}

	id, err := domain.NewTaskID(rawID)
	if err != nil {
		return nil, corruptRow("task", err)
	}
	userID, err := domain.NewUserID(rawUserID)
	if err != nil {
		return nil, corruptRow("task", err)
	}
	title, err := domain.NewTaskTitle(rawTitle)
	if err != nil {
		return nil, corruptRow("task", err)
	}
	description, err := domain.NewTaskDescription(rawDescription)
	if err != nil {
		return nil, corruptRow("task", err)
	}

	return &domain.Task{
		ID:          id,
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   createdAt,
		UpdatedAt:   nullTimePtr(updatedAt),
		CompletedAt: nullTimePtr(completedAt),
	}, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// buildTaskFilter renders the WHERE clause for filter. The user_id
// predicate is always $1; further placeholders follow in the order the
// returned args are listed.
func buildTaskFilter(filter store.TaskFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	add("user_id = $%d", filter.UserID.String())
	if filter.Title != nil && *filter.Title != "" {
		add("title ILIKE $%d", "%"+escapeLike(*filter.Title)+"%")
	}
	if filter.Completed != nil {
		add("completed = $%d", *filter.Completed)
	}
	if filter.CreatedFrom != nil {
		add("created_at >= $%d", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		add("created_at <= $%d", *filter.CreatedTo)
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
