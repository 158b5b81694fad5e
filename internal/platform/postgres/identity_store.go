package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// PostgresIdentityStore implements store.IdentityStore.
type PostgresIdentityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresIdentityStore creates an identity store on db.
func NewPostgresIdentityStore(db store.DBTX, logger *slog.Logger) *PostgresIdentityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresIdentityStore{
		db:     db,
		logger: logger.With(slog.String("component", "identity_store")),
	}
}

var _ store.IdentityStore = (*PostgresIdentityStore)(nil)

// WithTx implements store.IdentityStore.
func (s *PostgresIdentityStore) WithTx(tx *sql.Tx) store.IdentityStore {
	return &PostgresIdentityStore{db: tx, logger: s.logger}
}

// Create implements store.IdentityStore.
func (s *PostgresIdentityStore) Create(ctx context.Context, identity *domain.Identity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO identities (email, password_hash, created_at, updated_at, user_id)
		VALUES ($1, $2, $3, $4, $5)
	`,
		identity.Email.String(),
		identity.PasswordHash,
		identity.CreatedAt,
		identity.UpdatedAt,
		identity.UserID.String(),
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already registered")
			return store.ErrEmailExists
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, identity.UserID)
		}
		log.Error("failed to create identity",
			slog.String("error", err.Error()),
			slog.String("user_id", identity.UserID.String()))
		return store.NewDatabaseError("identity", "create", MapError(err))
	}

	log.Info("identity created", slog.String("user_id", identity.UserID.String()))
	return nil
}

// GetByEmail implements store.IdentityStore.
func (s *PostgresIdentityStore) GetByEmail(ctx context.Context, email domain.Email) (*domain.Identity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		rawUserID, rawEmail, hash string
		createdAt                 time.Time
		updatedAt                 sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, email, password_hash, created_at, updated_at
		FROM identities
		WHERE email = $1
	`, email.String()).Scan(&rawUserID, &rawEmail, &hash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("identity not found")
			return nil, store.ErrIdentityNotFound
		}
		log.Error("failed to get identity", slog.String("error", err.Error()))
		return nil, store.NewDatabaseError("identity", "get", MapError(err))
	}

	userID, err := domain.NewUserID(rawUserID)
	if err != nil {
		return nil, store.NewDatabaseError("identity", "get", corruptRow("identity", err))
	}
	storedEmail, err := domain.NewEmail(rawEmail)
	if err != nil {
		return nil, store.NewDatabaseError("identity", "get", corruptRow("identity", err))
	}

	return &domain.Identity{
		UserID:       userID,
		Email:        storedEmail,
		PasswordHash: hash,
		CreatedAt:    createdAt,
		UpdatedAt:    nullTimePtr(updatedAt),
	}, nil
}

// Update implements store.IdentityStore.
func (s *PostgresIdentityStore) Update(ctx context.Context, identity *domain.Identity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE identities SET password_hash = $1, updated_at = $2 WHERE email = $3`,
		identity.PasswordHash,
		identity.UpdatedAt,
		identity.Email.String(),
	)
	if err != nil {
		log.Error("failed to update identity",
			slog.String("error", err.Error()),
			slog.String("user_id", identity.UserID.String()))
		return store.NewDatabaseError("identity", "update", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrIdentityNotFound); err != nil {
		return store.NewDatabaseError("identity", "update", err)
	}
	return nil
}

// Delete implements store.IdentityStore.
func (s *PostgresIdentityStore) Delete(ctx context.Context, email domain.Email) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM identities WHERE email = $1`, email.String())
	if err != nil {
		log.Error("failed to delete identity", slog.String("error", err.Error()))
		return store.NewDatabaseError("identity", "delete", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrIdentityNotFound); err != nil {
		return store.NewDatabaseError("identity", "delete", err)
	}
	return nil
}
