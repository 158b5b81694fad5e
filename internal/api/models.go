package api

import (
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
)

// SignUpRequest is the payload of POST /api/auth/signup. Format rules are
// enforced by the domain value objects.
type SignUpRequest struct {
	Email     string `json:"email"      validate:"required,max=255"`
	Password  string `json:"password"   validate:"required,max=72"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

// SignInRequest is the payload of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// AuthResponse is returned by both auth endpoints.
type AuthResponse struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CreateTaskRequest is the payload of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
}

// UpdateTaskRequest is the payload of PUT /api/tasks/{id}. Absent fields
// are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ListTasksQuery holds the parsed query string of GET /api/tasks.
type ListTasksQuery struct {
	Title       string     `validate:"max=50"`
	Completed   *bool      `validate:"omitnil"`
	CreatedFrom *time.Time `validate:"omitnil"`
	CreatedTo   *time.Time `validate:"omitnil"`
	Page        *int       `validate:"omitnil,min=1"`
	Limit       *int       `validate:"omitnil,min=1,max=100"`
}

// TaskResponse is the JSON form of a task.
type TaskResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ListTasksResponse is one page of tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// UpdateUserRequest is the payload of PATCH /api/users.
type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

// UserResponse is the JSON form of a user.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func newTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Title:       t.Title.String(),
		Description: t.Description.String(),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FirstName: u.Name.First(),
		LastName:  u.Name.Last(),
	}
}
