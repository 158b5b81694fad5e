package domain

import "time"

// now is the clock used for entity timestamps.
var now = func() time.Time { return time.Now().UTC() }

// Task is a to-do item owned by exactly one user.
//
// CompletedAt is non-nil exactly when Completed is true; MarkAsCompleted and
// MarkAsIncomplete are the only methods that change either field.
type Task struct {
	ID          TaskID
	UserID      UserID
	Title       TaskTitle
	Description TaskDescription
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	CompletedAt *time.Time
}

// NewTask creates a pending task that has not been persisted yet.
func NewTask(userID UserID, title TaskTitle, description TaskDescription) *Task {
	return &Task{
		ID:          EmptyTaskID(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now(),
	}
}

// MarkAsCompleted moves the task to the completed state. Calling it on a
// completed task refreshes CompletedAt and UpdatedAt.
func (t *Task) MarkAsCompleted() {
	ts := now()
	t.Completed = true
	t.CompletedAt = &ts
	t.UpdatedAt = &ts
}

// MarkAsIncomplete moves the task back to pending and clears CompletedAt.
func (t *Task) MarkAsIncomplete() {
	ts := now()
	t.Completed = false
	t.CompletedAt = nil
	t.UpdatedAt = &ts
}

// UpdateTitle replaces the title.
func (t *Task) UpdateTitle(title TaskTitle) {
	ts := now()
	t.Title = title
	t.UpdatedAt = &ts
}

// UpdateDescription replaces the description.
func (t *Task) UpdateDescription(description TaskDescription) {
	ts := now()
	t.Description = description
	t.UpdatedAt = &ts
}

// IsOwnedBy reports whether the task belongs to userID.
func (t *Task) IsOwnedBy(userID UserID) bool {
	return t.UserID == userID
}
