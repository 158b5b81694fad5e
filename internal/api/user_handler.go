package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/users"
	"github.com/phrazzld/todo-api/internal/store"
)

// UserHandler serves /api/users.
type UserHandler struct {
	get    *users.GetUserByID
	update *users.UpdateUser
	remove *users.DeleteUser
}

// NewUserHandler wires the user use cases to userStore.
func NewUserHandler(userStore store.UserStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		get:    users.NewGetUserByID(userStore, logger),
		update: users.NewUpdateUser(userStore, logger),
		remove: users.NewDeleteUser(userStore, logger),
	}
}

// GetUser handles GET /api/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}
	id, err := pathUserID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.get.Execute(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}

// UpdateCurrentUser handles PATCH /api/users.
func (h *UserHandler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	name, err := domain.NewName(req.FirstName, req.LastName)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if _, err := h.update.Execute(r.Context(), users.UpdateUserInput{ID: userID, Name: &name}); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCurrentUser handles DELETE /api/users.
func (h *UserHandler) DeleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	if err := h.remove.Execute(r.Context(), userID); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
