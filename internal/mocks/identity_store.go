package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// IdentityStore is a testify mock of store.IdentityStore.
type IdentityStore struct {
	mock.Mock
}

var _ store.IdentityStore = (*IdentityStore)(nil)

func (m *IdentityStore) Create(ctx context.Context, identity *domain.Identity) error {
	return m.Called(ctx, identity).Error(0)
}

func (m *IdentityStore) GetByEmail(ctx context.Context, email domain.Email) (*domain.Identity, error) {
	args := m.Called(ctx, email)
	identity, _ := args.Get(0).(*domain.Identity)
	return identity, args.Error(1)
}

func (m *IdentityStore) Update(ctx context.Context, identity *domain.Identity) error {
	return m.Called(ctx, identity).Error(0)
}

func (m *IdentityStore) Delete(ctx context.Context, email domain.Email) error {
	return m.Called(ctx, email).Error(0)
}

// WithTx returns the configured store, or the mock itself when none is set.
func (m *IdentityStore) WithTx(tx *sql.Tx) store.IdentityStore {
	args := m.Called(tx)
	if ret, ok := args.Get(0).(store.IdentityStore); ok {
		return ret
	}
	return m
}
