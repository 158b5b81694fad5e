package api

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service/auth"
)

// requireUserID returns the authenticated user or writes a 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Warn("user ID not found in request context")
		HandleAPIError(w, r, auth.ErrMissingToken)
		return domain.UserID{}, false
	}
	return userID, true
}

// pathTaskID parses the {id} URL parameter. An invalid value is reported
// as a domain error.
func pathTaskID(r *http.Request) (domain.TaskID, error) {
	return domain.NewTaskID(chi.URLParam(r, "id"))
}

func pathUserID(r *http.Request) (domain.UserID, error) {
	return domain.NewUserID(chi.URLParam(r, "id"))
}

// decodeAndValidate reads the JSON body into v and runs its validate tags,
// writing a 400 and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		HandleValidationError(w, r, err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleValidationError(w, r, err)
		return false
	}
	return true
}

// paramError is a malformed query parameter. Its text is safe to return.
type paramError string

func (e paramError) Error() string { return string(e) }

// parseListTasksQuery reads the list filters from the query string.
func parseListTasksQuery(values url.Values) (ListTasksQuery, error) {
	q := ListTasksQuery{Title: values.Get("title")}

	if raw := values.Get("completed"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return q, paramError("completed must be true or false")
		}
		q.Completed = &b
	}

	var err error
	if q.CreatedFrom, err = parseTimeParam(values, "created_from"); err != nil {
		return q, err
	}
	if q.CreatedTo, err = parseTimeParam(values, "created_to"); err != nil {
		return q, err
	}
	if q.CreatedFrom != nil && q.CreatedTo != nil && q.CreatedTo.Before(*q.CreatedFrom) {
		return q, paramError("created_to must not be before created_from")
	}

	if q.Page, err = parseIntParam(values, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = parseIntParam(values, "limit"); err != nil {
		return q, err
	}

	return q, shared.ValidateRequest(q)
}

func parseTimeParam(values url.Values, name string) (*time.Time, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, paramError(name + " must be an RFC 3339 timestamp")
	}
	return &ts, nil
}

func parseIntParam(values url.Values, name string) (*int, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, paramError(name + " must be an integer")
	}
	return &n, nil
}
