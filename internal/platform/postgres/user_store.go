package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// PostgresUserStore implements store.UserStore.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a user store on db.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx, logger: s.logger}
}

// Create implements store.UserStore.
func (s *PostgresUserStore) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rawID string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		user.Name.First(),
		user.Name.Last(),
	).Scan(&rawID)
	if err != nil {
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, store.NewDatabaseError("user", "create", MapError(err))
	}

	id, err := domain.NewUserID(rawID)
	if err != nil {
		return nil, store.NewDatabaseError("user", "create", corruptRow("user", err))
	}

	created := user
	created.ID = id
	log.Info("user created", slog.String("user_id", rawID))
	return &created, nil
}

// GetByID implements store.UserStore.
func (s *PostgresUserStore) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rawID, first, last string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name FROM users WHERE id = $1`,
		id.String(),
	).Scan(&rawID, &first, &last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, store.NewDatabaseError("user", "get", MapError(err))
	}

	userID, err := domain.NewUserID(rawID)
	if err != nil {
		return nil, store.NewDatabaseError("user", "get", corruptRow("user", err))
	}
	name, err := domain.NewName(first, last)
	if err != nil {
		return nil, store.NewDatabaseError("user", "get", corruptRow("user", err))
	}

	return &domain.User{ID: userID, Name: name}, nil
}

// Update implements store.UserStore.
func (s *PostgresUserStore) Update(ctx context.Context, user domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET first_name = $1, last_name = $2 WHERE id = $3`,
		user.Name.First(),
		user.Name.Last(),
		user.ID.String(),
	)
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.NewDatabaseError("user", "update", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		return store.NewDatabaseError("user", "update", err)
	}

	log.Debug("user updated", slog.String("user_id", user.ID.String()))
	return nil
}

// Delete implements store.UserStore. Tasks and identities owned by the
// user are removed by ON DELETE CASCADE.
func (s *PostgresUserStore) Delete(ctx context.Context, id domain.UserID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id.String())
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return store.NewDatabaseError("user", "delete", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		return store.NewDatabaseError("user", "delete", err)
	}

	log.Info("user deleted", slog.String("user_id", id.String()))
	return nil
}
