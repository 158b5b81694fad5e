package domain

// User is a registered person. Credentials live in Identity.
type User struct {
	ID   UserID
	Name Name
}

// NewUser creates a user that has not been persisted yet.
func NewUser(name Name) User {
	return User{ID: EmptyUserID(), Name: name}
}

// WithName returns a copy of the user carrying the new name.
func (u User) WithName(name Name) User {
	u.Name = name
	return u
}
