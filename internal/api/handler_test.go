package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/api"
	"github.com/phrazzld/todo-api/internal/api/middleware"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

const (
	validToken = "valid-token"
	ownerID    = "8c7b6a59-4d3e-4f21-8a0b-9c8d7e6f5a4b"
	taskID     = "4a5b6c7d-8e9f-4a0b-9c1d-2e3f4a5b6c7d"
)

type fixture struct {
	tasks      *mocks.TaskStore
	users      *mocks.UserStore
	identities *mocks.IdentityStore
	jwt        *mocks.JWTService
	db         *sql.DB
	router     http.Handler
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustUserID(t *testing.T, raw string) domain.UserID {
	t.Helper()
	id, err := domain.NewUserID(raw)
	require.NoError(t, err)
	return id
}

// newFixture mounts the handlers the way the server does, with a JWT mock
// that accepts validToken for ownerID.
func newFixture(t *testing.T, db *sql.DB) *fixture {
	t.Helper()

	f := &fixture{
		tasks:      &mocks.TaskStore{},
		users:      &mocks.UserStore{},
		identities: &mocks.IdentityStore{},
		db:         db,
	}
	owner := mustUserID(t, ownerID)
	f.jwt = &mocks.JWTService{
		Token: "signed.jwt.token",
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			if token != validToken {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: owner, Subject: ownerID}, nil
		},
	}

	logger := testLogger()
	authHandler := api.NewAuthHandler(db, f.users, f.identities, f.jwt, logger)
	taskHandler := api.NewTaskHandler(f.tasks, logger)
	userHandler := api.NewUserHandler(f.users, logger)
	authMW := middleware.NewAuthMiddleware(f.jwt)

	r := chi.NewRouter()
	r.Use(middleware.Trace(logger))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authHandler.SignUp)
		r.Post("/auth/signin", authHandler.SignIn)
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Post("/tasks", taskHandler.CreateTask)
			r.Get("/tasks", taskHandler.ListTasks)
			r.Put("/tasks/{id}", taskHandler.UpdateTask)
			r.Patch("/tasks/{id}/complete", taskHandler.CompleteTask)
			r.Patch("/tasks/{id}/uncomplete", taskHandler.UncompleteTask)
			r.Delete("/tasks/{id}", taskHandler.DeleteTask)
			r.Get("/users/{id}", userHandler.GetUser)
			r.Patch("/users", userHandler.UpdateCurrentUser)
			r.Delete("/users", userHandler.DeleteCurrentUser)
		})
	})
	f.router = r
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}
