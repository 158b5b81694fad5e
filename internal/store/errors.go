package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/todo-api/internal/domain"
)

// CodeDatabase marks storage failures that callers cannot act on.
const CodeDatabase domain.Code = "database_error"

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the database rejects a row, for
	// example because a referenced user does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTaskNotFound indicates that the requested task does not exist.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrIdentityNotFound indicates that no identity is registered for an email.
	ErrIdentityNotFound = fmt.Errorf("%w: identity", ErrNotFound)

	// ErrEmailExists indicates that another identity already uses the email.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrDatabase matches every error built by NewDatabaseError.
	ErrDatabase = &domain.Error{Kind: domain.KindInfrastructure, Code: CodeDatabase, Message: "Database operation failed"}
)

// StoreError records which operation on which entity failed.
type StoreError struct {
	Entity    string // The entity type (e.g., "task", "identity")
	Operation string // The operation that failed (e.g., "create", "list")
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewDatabaseError wraps an unexpected storage failure into an
// infrastructure-kind domain error. Not-found, duplicate and invalid-entity
// sentinels are returned unchanged so callers can still branch on them.
func NewDatabaseError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}
	if IsNotFoundError(err) || IsDuplicateError(err) || errors.Is(err, ErrInvalidEntity) {
		return err
	}
	if errors.Is(err, ErrDatabase) {
		return err
	}
	return domain.NewError(
		domain.KindInfrastructure,
		CodeDatabase,
		ErrDatabase.Message,
		&StoreError{Entity: entity, Operation: operation, Err: err},
	)
}

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
