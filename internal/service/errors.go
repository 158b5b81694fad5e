package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// Application error codes.
const (
	CodeResourceNotFound   domain.Code = "resource_not_found"
	CodeEmailAlreadyExists domain.Code = "email_already_exists"
	CodeWrongPassword      domain.Code = "wrong_password"
)

// Sentinels for errors.Is checks against application failures.
var (
	ErrResourceNotFound = &domain.Error{
		Kind: domain.KindApplication, Code: CodeResourceNotFound, Message: "resource not found",
	}
	ErrEmailAlreadyExists = &domain.Error{
		Kind: domain.KindApplication, Code: CodeEmailAlreadyExists, Message: "email already exists",
	}
	ErrWrongPassword = &domain.Error{
		Kind: domain.KindApplication, Code: CodeWrongPassword, Message: "wrong password",
	}
)

// ResourceNotFound reports that no resource of the named kind exists with id.
func ResourceNotFound(resource, id string) error {
	return domain.NewError(domain.KindApplication, CodeResourceNotFound,
		fmt.Sprintf("Resource %s with ID %s not found", resource, id), nil)
}

// EmailAlreadyExists reports a sign-up attempt with a registered email.
func EmailAlreadyExists(email string) error {
	return domain.NewError(domain.KindApplication, CodeEmailAlreadyExists,
		fmt.Sprintf("Email already exists: %q. Please use a different email address.", email), nil)
}

// WrongPassword reports a sign-in attempt with a password that does not
// match the stored hash.
func WrongPassword() error {
	return domain.NewError(domain.KindApplication, CodeWrongPassword,
		"Invalid password provided. Please ensure your password meets the required criteria.", nil)
}

// FromStoreError converts an error returned by a store into the error a use
// case reports. Not-found becomes ResourceNotFound for resource/id; errors
// that already carry a kind are returned as they are; anything else is
// wrapped as an infrastructure error.
func FromStoreError(err error, resource, id string) error {
	if err == nil {
		return nil
	}
	if store.IsNotFoundError(err) {
		return ResourceNotFound(resource, id)
	}
	var derr *domain.Error
	if errors.As(err, &derr) {
		return err
	}
	return domain.NewError(domain.KindInfrastructure, store.CodeDatabase, store.ErrDatabase.Message,
		&store.StoreError{Entity: resource, Operation: "execute", Err: err})
}
