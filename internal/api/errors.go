package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/auth"
)

// internalErrorMessage is the only message clients see for server faults.
const internalErrorMessage = "Internal server error occurred"

// MapErrorToStatusCode maps an error to its HTTP status. Domain errors are
// 400, application errors 400 except ResourceNotFound (404), and anything
// else 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	}

	kind, ok := domain.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case domain.KindDomain:
		return http.StatusBadRequest
	case domain.KindApplication:
		if errors.Is(err, service.ErrResourceNotFound) {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message a client may see for err.
// Infrastructure and unclassified errors get a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}
	if MapErrorToStatusCode(err) == http.StatusUnauthorized {
		return "Invalid token"
	}

	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Kind == domain.KindInfrastructure {
		return internalErrorMessage
	}
	return derr.Message
}

// errorLabel is the "error" field of the envelope: the error family, or the
// status text when err has none.
func errorLabel(err error, status int) string {
	if kind, ok := domain.KindOf(err); ok {
		return kind.String()
	}
	return http.StatusText(status)
}

// HandleAPIError writes the envelope for err and logs it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, errorLabel(err, status), GetSafeErrorMessage(err), err)
}

// HandleValidationError writes a 400 for a malformed or invalid request.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "", SanitizeValidationError(err), err)
}

// SanitizeValidationError turns a validator or decoding error into a short
// message that names the offending field but not its value.
func SanitizeValidationError(err error) string {
	var perr paramError
	if errors.As(err, &perr) {
		return "Invalid query: " + perr.Error()
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		if errors.Is(err, shared.ErrEmptyBody) {
			return "Request body is required"
		}
		return "Invalid request format"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("Invalid %s: %s", jsonFieldName(fe), validationTagMessage(fe)))
	}
	return strings.Join(msgs, "; ")
}

func jsonFieldName(fe validator.FieldError) string {
	if name, ok := fieldNames[fe.Field()]; ok {
		return name
	}
	return strings.ToLower(fe.Field())
}

// fieldNames maps struct field names to the names clients send.
var fieldNames = map[string]string{
	"FirstName": "first_name",
	"LastName":  "last_name",
}

func validationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "validation failed"
	}
}
