package domain

import (
	"errors"
	"fmt"
)

// Kind identifies the layer that raised an Error.
type Kind int

const (
	// KindDomain marks value-object and entity invariant violations.
	KindDomain Kind = iota + 1
	// KindApplication marks business-rule violations detected by use cases.
	KindApplication
	// KindInfrastructure marks storage and other external failures.
	KindInfrastructure
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "Domain Error"
	case KindApplication:
		return "Application Error"
	case KindInfrastructure:
		return "Infrastructure Error"
	default:
		return "Unknown Error"
	}
}

// Code identifies a specific error condition within a Kind.
type Code string

// Domain error codes.
const (
	CodeInvalidEmail       Code = "invalid_email"
	CodeInvalidPassword    Code = "invalid_password"
	CodeInvalidName        Code = "invalid_name"
	CodeInvalidTitle       Code = "invalid_title"
	CodeInvalidDescription Code = "invalid_description"
	CodeInvalidID          Code = "invalid_id"
)

// Error is the single error type shared by every layer. Kind is the
// discriminant used by the transport layer to pick a status code, Code names
// the exact condition and Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Err     error
}

// NewError creates an Error of the given kind and code.
func NewError(kind Kind, code Code, message string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, so that
// constructed errors match their package-level sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Kind == 0 || t.Kind == e.Kind)
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Sentinels for errors.Is checks against domain failures.
var (
	ErrInvalidEmail       = &Error{Kind: KindDomain, Code: CodeInvalidEmail, Message: "invalid email"}
	ErrInvalidPassword    = &Error{Kind: KindDomain, Code: CodeInvalidPassword, Message: "invalid password"}
	ErrInvalidName        = &Error{Kind: KindDomain, Code: CodeInvalidName, Message: "invalid name"}
	ErrInvalidTitle       = &Error{Kind: KindDomain, Code: CodeInvalidTitle, Message: "invalid title"}
	ErrInvalidDescription = &Error{Kind: KindDomain, Code: CodeInvalidDescription, Message: "invalid description"}
	ErrInvalidID          = &Error{Kind: KindDomain, Code: CodeInvalidID, Message: "invalid ID"}
)

func invalidEmail(raw string) error {
	return NewError(KindDomain, CodeInvalidEmail, fmt.Sprintf(
		"Invalid email address provided: %q. Please ensure it is correctly formatted.", raw), nil)
}

func invalidPassword() error {
	return NewError(KindDomain, CodeInvalidPassword,
		"Invalid password provided. Please ensure your password meets the required criteria.", nil)
}

func invalidName(first, last string) error {
	return NewError(KindDomain, CodeInvalidName, fmt.Sprintf(
		"Invalid name: \"%s %s\". Name must contain both first and last names.", first, last), nil)
}

func invalidTitle(raw string) error {
	return NewError(KindDomain, CodeInvalidTitle, fmt.Sprintf(
		"Invalid title: %q. Title must be at least 3 characters long and not exceed 100 characters.", raw), nil)
}

func invalidDescription(raw string) error {
	return NewError(KindDomain, CodeInvalidDescription, fmt.Sprintf(
		"Invalid description: %q. When provided, description must be at least 5 characters long and not exceed 500 characters.",
		raw), nil)
}

func invalidID(raw string) error {
	return NewError(KindDomain, CodeInvalidID, fmt.Sprintf("Invalid ID: %q. ID must be a valid UUID.", raw), nil)
}
