package postgres

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, name := range files {
		content, err := fs.ReadFile(migrationFS, name)
		require.NoError(t, err)
		assert.Contains(t, string(content), "-- +goose Up", name)
		assert.Contains(t, string(content), "-- +goose Down", name)
	}

	tasks, err := fs.ReadFile(migrationFS, "migrations/00002_create_tasks.sql")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(tasks), "ON DELETE CASCADE"))
}

func TestMigrateRejectsUnknownCommand(t *testing.T) {
	err := Migrate(context.Background(), nil, "drop-everything", testLogger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported migration command")
}
