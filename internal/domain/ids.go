package domain

import "github.com/google/uuid"

// canonicalUUIDLen is the length of the 8-4-4-4-12 textual form.
const canonicalUUIDLen = 36

func isUUIDv4(raw string) bool {
	// uuid.Parse also accepts urn: and braced forms; only the canonical form is an ID.
	if len(raw) != canonicalUUIDLen {
		return false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}

// TaskID identifies a Task. The zero value is the empty sentinel used
// before storage assigns an identifier.
type TaskID struct {
	id string
}

// NewTaskID validates raw as a version-4 UUID.
func NewTaskID(raw string) (TaskID, error) {
	if !isUUIDv4(raw) {
		return TaskID{}, invalidID(raw)
	}
	return TaskID{id: raw}, nil
}

// EmptyTaskID returns the sentinel for a task that has not been persisted.
func EmptyTaskID() TaskID {
	return TaskID{}
}

// IsEmpty reports whether the ID is the unpersisted sentinel.
func (t TaskID) IsEmpty() bool {
	return t.id == ""
}

// String returns the identifier exactly as it was given.
func (t TaskID) String() string {
	return t.id
}

// UserID identifies a User. The zero value is the empty sentinel.
type UserID struct {
	id string
}

// NewUserID validates raw as a version-4 UUID.
func NewUserID(raw string) (UserID, error) {
	if !isUUIDv4(raw) {
		return UserID{}, invalidID(raw)
	}
	return UserID{id: raw}, nil
}

// EmptyUserID returns the sentinel for a user that has not been persisted.
func EmptyUserID() UserID {
	return UserID{}
}

// IsEmpty reports whether the ID is the unpersisted sentinel.
func (u UserID) IsEmpty() bool {
	return u.id == ""
}

// String returns the identifier exactly as it was given.
func (u UserID) String() string {
	return u.id
}
