package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewIdentity(t *testing.T) {
	userID, err := NewUserID(uuid.NewString())
	require.NoError(t, err)
	email, err := NewEmail("grace@example.com")
	require.NoError(t, err)
	password, err := NewPassword("Secr3tPw")
	require.NoError(t, err)

	identity, err := NewIdentity(userID, email, password)
	require.NoError(t, err)

	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, email, identity.Email)
	assert.False(t, identity.CreatedAt.IsZero())
	assert.Nil(t, identity.UpdatedAt)
	assert.NotEqual(t, "Secr3tPw", identity.PasswordHash)
	assert.True(t, strings.HasPrefix(identity.PasswordHash, "$2"))

	cost, err := bcrypt.Cost([]byte(identity.PasswordHash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, bcrypt.MinCost)
	assert.LessOrEqual(t, cost, maxHashRounds)

	t.Run("validates the right password", func(t *testing.T) {
		assert.True(t, identity.ValidatePassword(password))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		wrong, err := NewPassword("Wr0ngPw")
		require.NoError(t, err)
		assert.False(t, identity.ValidatePassword(wrong))
	})

	t.Run("rejects a corrupt hash without panicking", func(t *testing.T) {
		broken := &Identity{PasswordHash: "not-a-hash"}
		assert.False(t, broken.ValidatePassword(password))
	})
}

func TestHashPasswordSalts(t *testing.T) {
	password, err := NewPassword("Secr3tPw")
	require.NoError(t, err)

	first, err := HashPassword(password)
	require.NoError(t, err)
	second, err := HashPassword(password)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
