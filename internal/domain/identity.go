package domain

import (
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	minHashRounds = 3
	maxHashRounds = 5
)

// Identity holds the credentials a user signs in with. Each email belongs
// to at most one identity.
type Identity struct {
	UserID       UserID
	Email        Email
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// NewIdentity hashes password and returns a new identity for userID.
func NewIdentity(userID UserID, email Email, password Password) (*Identity, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Identity{
		UserID:       userID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now(),
	}, nil
}

// ValidatePassword reports whether password matches the stored hash.
func (i *Identity) ValidatePassword(password Password) bool {
	return bcrypt.CompareHashAndPassword([]byte(i.PasswordHash), []byte(password.String())) == nil
}

// HashPassword derives a salted bcrypt hash with a cost drawn at random
// between 3 and 5, raised to bcrypt.MinCost where the library requires it.
func HashPassword(password Password) (string, error) {
	cost := max(minHashRounds+rand.IntN(maxHashRounds-minHashRounds+1), bcrypt.MinCost)
	hash, err := bcrypt.GenerateFromPassword([]byte(password.String()), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
