package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/tasks"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskHandler serves /api/tasks. Every route acts on the authenticated
// user's tasks only.
type TaskHandler struct {
	create     *tasks.CreateTask
	update     *tasks.UpdateTask
	complete   *tasks.CompleteTask
	uncomplete *tasks.UncompleteTask
	remove     *tasks.DeleteTask
	list       *tasks.ListTasks
}

// NewTaskHandler wires the task use cases to taskStore.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		create:     tasks.NewCreateTask(taskStore, logger),
		update:     tasks.NewUpdateTask(taskStore, logger),
		complete:   tasks.NewCompleteTask(taskStore, logger),
		uncomplete: tasks.NewUncompleteTask(taskStore, logger),
		remove:     tasks.NewDeleteTask(taskStore, logger),
		list:       tasks.NewListTasks(taskStore, logger),
	}
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	title, err := domain.NewTaskTitle(req.Title)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	description, err := domain.NewTaskDescription(req.Description)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.create.Execute(r.Context(), tasks.CreateTaskInput{
		UserID:      userID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newTaskResponse(task))
}

// ListTasks handles GET /api/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	q, err := parseListTasksQuery(r.URL.Query())
	if err != nil {
		HandleValidationError(w, r, err)
		return
	}

	input := tasks.ListTasksInput{
		UserID:      userID,
		Completed:   q.Completed,
		CreatedFrom: q.CreatedFrom,
		CreatedTo:   q.CreatedTo,
	}
	if q.Title != "" {
		input.Title = &q.Title
	}
	if q.Page != nil {
		input.Page = *q.Page
	}
	if q.Limit != nil {
		input.Limit = *q.Limit
	}

	out, err := h.list.Execute(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(out.Tasks)),
		Total: out.Total,
		Page:  out.Page,
		Limit: out.Limit,
	}
	for _, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, newTaskResponse(t))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// UpdateTask handles PUT /api/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ref, ok := taskRef(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	input := tasks.UpdateTaskInput{ID: ref.ID, UserID: ref.UserID}
	if req.Title != nil {
		title, err := domain.NewTaskTitle(*req.Title)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		input.Title = &title
	}
	if req.Description != nil {
		description, err := domain.NewTaskDescription(*req.Description)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		input.Description = &description
	}

	if _, err := h.update.Execute(r.Context(), input); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteTask handles PATCH /api/tasks/{id}/complete.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	ref, ok := taskRef(w, r)
	if !ok {
		return
	}
	if _, err := h.complete.Execute(r.Context(), ref); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UncompleteTask handles PATCH /api/tasks/{id}/uncomplete.
func (h *TaskHandler) UncompleteTask(w http.ResponseWriter, r *http.Request) {
	ref, ok := taskRef(w, r)
	if !ok {
		return
	}
	if _, err := h.uncomplete.Execute(r.Context(), ref); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ref, ok := taskRef(w, r)
	if !ok {
		return
	}
	if err := h.remove.Execute(r.Context(), ref); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// taskRef combines the authenticated user with the {id} path parameter,
// writing the error response when either is missing or invalid.
func taskRef(w http.ResponseWriter, r *http.Request) (tasks.TaskRef, bool) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return tasks.TaskRef{}, false
	}
	id, err := pathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return tasks.TaskRef{}, false
	}
	return tasks.TaskRef{ID: id, UserID: userID}, true
}
