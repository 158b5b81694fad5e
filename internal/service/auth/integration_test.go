//go:build integration

package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpSignInAgainstPostgres(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	users := postgres.NewPostgresUserStore(db, nil)
	identities := postgres.NewPostgresIdentityStore(db, nil)

	email, err := domain.NewEmail("signup-" + uuid.NewString()[:8] + "@example.com")
	require.NoError(t, err)
	password, err := domain.NewPassword("Secr3tPw")
	require.NoError(t, err)
	name, err := domain.NewName("Ada", "Lovelace")
	require.NoError(t, err)

	signUp := auth.NewSignUp(db, users, identities, nil)
	registered, err := signUp.Execute(ctx, auth.SignUpInput{Email: email, Password: password, Name: name})
	require.NoError(t, err)
	t.Cleanup(func() { _ = users.Delete(context.Background(), registered.UserID) })

	_, err = signUp.Execute(ctx, auth.SignUpInput{Email: email, Password: password, Name: name})
	assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)

	signIn := auth.NewSignIn(users, identities, nil)
	result, err := signIn.Execute(ctx, auth.SignInInput{Email: email, Password: password})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, result.UserID)

	wrong, err := domain.NewPassword("Wr0ngPw")
	require.NoError(t, err)
	_, err = signIn.Execute(ctx, auth.SignInInput{Email: email, Password: wrong})
	assert.ErrorIs(t, err, service.ErrWrongPassword)
}
