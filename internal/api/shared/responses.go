package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/redact"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Timestamp  string `json:"timestamp"`
	TraceID    string `json:"trace_id,omitempty"`
}

// now is swapped in tests.
var now = time.Now

// RespondWithJSON writes data as JSON with the given status.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// RespondWithError writes the error envelope. label is the error family
// shown to clients; an empty label falls back to the HTTP status text.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, label, message string) {
	if label == "" {
		label = http.StatusText(status)
	}
	RespondWithJSON(w, r, status, ErrorResponse{
		StatusCode: status,
		Error:      label,
		Message:    message,
		Path:       r.URL.Path,
		Method:     r.Method,
		Timestamp:  now().UTC().Format(time.RFC3339),
		TraceID:    GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog logs err, redacted, and writes the envelope with
// the client-safe message. 5xx log at Error, 401 and 429 at Warn, the rest
// at Debug.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	label, message string,
	err error,
) {
	attrs := []slog.Attr{
		slog.Int("status_code", status),
		slog.String("user_message", message),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status == http.StatusUnauthorized, status == http.StatusTooManyRequests:
		level = slog.LevelWarn
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).
		LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithError(w, r, status, label, message)
}
